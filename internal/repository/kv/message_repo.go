package kv

import (
	"context"
	"fmt"
	"sort"

	"Pulse_Feed/internal/model"
	"Pulse_Feed/internal/store"
)

const (
	ConvKeyPrefix     = "conv" // conv:<a>:<b>，a/b 排序后拼接
	DefaultMessageCap = 200
)

// ConvKey 两个身份之间会话的确定性键。先排序再拼接，
// 保证双方无论参数顺序如何都落在同一个集合上——整个私信模块靠这个不变量成立。
func ConvKey(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return fmt.Sprintf("%s:%s:%s", ConvKeyPrefix, pair[0], pair[1])
}

// MessageRepository 私信仓库，每个会话一个有界集合
type MessageRepository struct {
	kv  store.KV
	cap int64
}

func NewMessageRepository(kv store.KV, cap int64) *MessageRepository {
	if cap <= 0 {
		cap = DefaultMessageCap
	}
	return &MessageRepository{kv: kv, cap: cap}
}

func (r *MessageRepository) collection(a, b string) *store.Collection[model.Message] {
	return store.NewCollection[model.Message](r.kv, ConvKey(a, b), r.cap)
}

// Append 消息写入会话集合，新消息在头部
func (r *MessageRepository) Append(ctx context.Context, msg *model.Message) error {
	return r.collection(msg.From, msg.To).Append(ctx, *msg)
}

// ListBetween 取最新 limit 条，按存储顺序（新在前）返回，由上层翻转成时间顺序
func (r *MessageRepository) ListBetween(ctx context.Context, a, b string, limit int64) ([]model.Message, error) {
	if limit <= 0 || limit > r.cap {
		limit = r.cap
	}
	return r.collection(a, b).Range(ctx, 0, limit-1)
}

// MarkRead 把 sender 发给 reader 的消息全部标记为已读。
// 没有按 id 批量更新的原语，只能走整表重写。
func (r *MessageRepository) MarkRead(ctx context.Context, reader, sender string) error {
	_, err := r.collection(reader, sender).Rewrite(ctx, nil, func(m *model.Message) {
		if m.From == sender && !m.Read {
			m.Read = true
		}
	})
	return err
}
