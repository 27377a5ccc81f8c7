package model

// Post 帖子。点赞集合和评论列表嵌在文档内部，随帖子整体读写。
type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Avatar    string    `json:"avatar"`
	Content   string    `json:"content"`
	ChannelID string    `json:"channelId"`
	Timestamp int64     `json:"timestamp"` // 毫秒
	Likes     []string  `json:"likes"`     // 点赞者身份，不允许重复
	Comments  []Comment `json:"comments"`
	Rev       int64     `json:"rev"` // 每次改写自增，用于发现丢失更新
}

// Comment 评论，创建后不可变，只属于一个帖子
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Avatar    string `json:"avatar"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

func (p Post) DocID() string { return p.ID }

func (p *Post) BumpRev() { p.Rev++ }

// Liked 该身份是否已点赞
func (p *Post) Liked(identity string) bool {
	for _, u := range p.Likes {
		if u == identity {
			return true
		}
	}
	return false
}

// ToggleLike 点赞/取消点赞，返回切换后的点赞状态
func (p *Post) ToggleLike(identity string) bool {
	for i, u := range p.Likes {
		if u == identity {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return false
		}
	}
	p.Likes = append(p.Likes, identity)
	return true
}
