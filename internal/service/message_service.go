package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Pulse_Feed/internal/model"
	"Pulse_Feed/internal/repository/kv"
	"Pulse_Feed/internal/store"

	"github.com/google/uuid"
)

type MessageService struct {
	messages *kv.MessageRepository
	convs    *kv.ConversationRepository
	mod      *kv.ModerationRepository
}

func NewMessageService(kvs store.KV, cap int64) *MessageService {
	return &MessageService{
		messages: kv.NewMessageRepository(kvs, cap),
		convs:    kv.NewConversationRepository(kvs),
		mod:      kv.NewModerationRepository(kvs),
	}
}

// Send 发私信。消息追加、双向联系人登记、未读计数加一是三次独立的存储调用，
// 中途失败可能留下部分状态（比如消息已写入但未读没加上）——各键缺省值
// 都按空/零处理，所以残留状态只表现为计数少一，不会让读路径出错。
func (s *MessageService) Send(ctx context.Context, from, to, content, mediaID string) (*model.Message, error) {
	content = strings.TrimSpace(content)
	if from == "" || to == "" || content == "" {
		return nil, fmt.Errorf("%w: from, to and content required", ErrInvalidInput)
	}

	banned, err := s.mod.IsBanned(ctx, from)
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, ErrBanned
	}

	msg := &model.Message{
		ID:        uuid.NewString(),
		From:      from,
		To:        to,
		Content:   content,
		MediaID:   mediaID,
		Timestamp: time.Now().UnixMilli(),
		Read:      false,
	}
	if err := s.messages.Append(ctx, msg); err != nil {
		return nil, err
	}
	if err := s.convs.Link(ctx, from, to); err != nil {
		return nil, err
	}
	if err := s.convs.IncrUnread(ctx, to, from); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListBetween 取最新 limit 条并翻转成时间顺序，供界面按先后展示
func (s *MessageService) ListBetween(ctx context.Context, user1, user2 string, limit int64) ([]model.Message, error) {
	if user1 == "" || user2 == "" {
		return nil, fmt.Errorf("%w: user1 and user2 required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	msgs, err := s.messages.ListBetween(ctx, user1, user2, limit)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// Conversations 某身份的会话列表（联系人 + 未读数）
func (s *MessageService) Conversations(ctx context.Context, user string) ([]model.ConversationSummary, error) {
	if user == "" {
		return nil, fmt.Errorf("%w: user required", ErrInvalidInput)
	}
	return s.convs.ListForUser(ctx, user)
}

// MarkRead reader 打开与 sender 的会话：未读清零，再把对方的消息批量标记已读
func (s *MessageService) MarkRead(ctx context.Context, reader, sender string) error {
	if reader == "" || sender == "" {
		return fmt.Errorf("%w: user and from required", ErrInvalidInput)
	}
	if err := s.convs.ResetUnread(ctx, reader, sender); err != nil {
		return err
	}
	return s.messages.MarkRead(ctx, reader, sender)
}
