package kv

import (
	"context"
	"fmt"
	"sort"

	"Pulse_Feed/internal/model"
	"Pulse_Feed/internal/store"
)

const (
	ContactSetPrefix = "convs"  // convs:<user> 有过往来的联系人集合
	UnreadKeyPrefix  = "unread" // unread:<reader>:<sender> 方向性未读计数
)

// ConversationRepository 会话索引：联系人集合加未读计数。
// 缺失的计数按 0、缺失的集合按空处理，从不报错。
type ConversationRepository struct {
	kv store.KV
}

func NewConversationRepository(kv store.KV) *ConversationRepository {
	return &ConversationRepository{kv: kv}
}

func contactKey(user string) string {
	return fmt.Sprintf("%s:%s", ContactSetPrefix, user)
}

func unreadKey(reader, sender string) string {
	return fmt.Sprintf("%s:%s:%s", UnreadKeyPrefix, reader, sender)
}

// Link 双向登记联系人，重复登记是幂等空操作
func (r *ConversationRepository) Link(ctx context.Context, a, b string) error {
	if err := r.kv.SAdd(ctx, contactKey(a), b); err != nil {
		return err
	}
	return r.kv.SAdd(ctx, contactKey(b), a)
}

// IncrUnread sender → reader 的消息使 (reader, sender) 计数加一
func (r *ConversationRepository) IncrUnread(ctx context.Context, reader, sender string) error {
	_, err := r.kv.Incr(ctx, unreadKey(reader, sender))
	return err
}

// ResetUnread reader 打开与 sender 的会话时清零
func (r *ConversationRepository) ResetUnread(ctx context.Context, reader, sender string) error {
	return r.kv.SetInt(ctx, unreadKey(reader, sender), 0)
}

// ListForUser 枚举联系人并逐个读未读计数。
// 这是对存储的 N+1 扇出，是本系统约定的扩展上限。
func (r *ConversationRepository) ListForUser(ctx context.Context, user string) ([]model.ConversationSummary, error) {
	contacts, err := r.kv.SMembers(ctx, contactKey(user))
	if err != nil {
		return nil, err
	}
	sort.Strings(contacts)
	out := make([]model.ConversationSummary, 0, len(contacts))
	for _, contact := range contacts {
		unread, err := r.kv.GetInt(ctx, unreadKey(user, contact))
		if err != nil {
			return nil, err
		}
		out = append(out, model.ConversationSummary{Contact: contact, Unread: unread})
	}
	return out, nil
}
