package model

// Message 私信。双方读写同一个会话集合，read 标记由对端批量改写。
type Message struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Content   string `json:"content"`
	MediaID   string `json:"mediaId,omitempty"` // 指向临时媒体对象，数据层不解引用
	Timestamp int64  `json:"timestamp"`         // 毫秒
	Read      bool   `json:"read"`
	Rev       int64  `json:"rev"`
}

func (m Message) DocID() string { return m.ID }

func (m *Message) BumpRev() { m.Rev++ }

// ConversationSummary 会话列表里的一项：联系人加未读数
type ConversationSummary struct {
	Contact string `json:"contact"`
	Unread  int64  `json:"unread"`
}
