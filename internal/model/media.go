package model

// Media 临时媒体对象。整体 JSON 存在一个带 TTL 的键下，到期由存储自己清除。
type Media struct {
	Data      string `json:"data"`               // base64 负载
	Type      string `json:"type"`               // "image" 或 "audio"
	Duration  int    `json:"duration,omitempty"` // 语音时长（秒）
	Timestamp int64  `json:"timestamp"`
}
