package service

import (
	"context"
	"fmt"
	"time"

	"Pulse_Feed/internal/pkg"
	"Pulse_Feed/internal/repository/kv"
	"Pulse_Feed/internal/store"
)

type ModerationService struct {
	mod      *kv.ModerationRepository
	users    *kv.UserRepository
	producer *pkg.KafkaProducer
}

func NewModerationService(kvs store.KV, producer *pkg.KafkaProducer) *ModerationService {
	return &ModerationService{
		mod:      kv.NewModerationRepository(kvs),
		users:    kv.NewUserRepository(kvs),
		producer: producer,
	}
}

func (s *ModerationService) Ban(ctx context.Context, identity string) error {
	if identity == "" {
		return fmt.Errorf("%w: username required", ErrInvalidInput)
	}
	if err := s.mod.Ban(ctx, identity); err != nil {
		return err
	}
	s.producer.Emit(ctx, pkg.FeedEvent{
		Type:      pkg.EventUserBanned,
		Identity:  identity,
		Timestamp: time.Now().UnixMilli(),
	})
	return nil
}

func (s *ModerationService) Unban(ctx context.Context, identity string) error {
	if identity == "" {
		return fmt.Errorf("%w: username required", ErrInvalidInput)
	}
	if err := s.mod.Unban(ctx, identity); err != nil {
		return err
	}
	s.producer.Emit(ctx, pkg.FeedEvent{
		Type:      pkg.EventUserUnbanned,
		Identity:  identity,
		Timestamp: time.Now().UnixMilli(),
	})
	return nil
}

func (s *ModerationService) Banned(ctx context.Context) ([]string, error) {
	return s.mod.Banned(ctx)
}

// RegisterUser 登记一个见过的身份，供前缀搜索使用
func (s *ModerationService) RegisterUser(ctx context.Context, identity string) error {
	if identity == "" {
		return fmt.Errorf("%w: username required", ErrInvalidInput)
	}
	return s.users.Register(ctx, identity)
}

// SearchUsers 前缀搜索已知身份，最多返回 kv.DefaultSearchLimit 条
func (s *ModerationService) SearchUsers(ctx context.Context, prefix string) ([]string, error) {
	return s.users.Search(ctx, prefix, kv.DefaultSearchLimit)
}
