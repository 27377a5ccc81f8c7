package model

// Channel 频道。ID 是由名字归一化出来的 slug，在频道表内唯一。
type Channel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"createdAt"` // 毫秒
}

func (c Channel) DocID() string { return c.ID }
