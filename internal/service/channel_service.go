package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Pulse_Feed/internal/model"
	"Pulse_Feed/internal/pkg"
	"Pulse_Feed/internal/repository/kv"
	"Pulse_Feed/internal/store"
)

type ChannelService struct {
	channels *kv.ChannelRepository
	posts    *kv.PostRepository
	producer *pkg.KafkaProducer
}

func NewChannelService(kvs store.KV, postCap int64, producer *pkg.KafkaProducer) *ChannelService {
	return &ChannelService{
		channels: kv.NewChannelRepository(kvs),
		posts:    kv.NewPostRepository(kvs, postCap),
		producer: producer,
	}
}

func (s *ChannelService) ListChannels(ctx context.Context) ([]model.Channel, error) {
	return s.channels.List(ctx)
}

// CreateChannel 名字归一化成 slug 作为 id，slug 重复返回 ErrChannelExists
func (s *ChannelService) CreateChannel(ctx context.Context, name, description string) (*model.Channel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	ch := &model.Channel{
		ID:          pkg.Slugify(name),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UnixMilli(),
	}
	if err := s.channels.Create(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

// DeleteChannel 删频道并级联删除它的整个帖子集合。
// 两步跨 key，无法原子；先移出频道表再删帖子，失败时最坏留下一个孤儿帖子集合。
func (s *ChannelService) DeleteChannel(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id required", ErrInvalidInput)
	}
	if err := s.channels.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.posts.DropChannel(ctx, id); err != nil {
		return err
	}
	s.producer.Emit(ctx, pkg.FeedEvent{
		Type:      pkg.EventChannelDeleted,
		Channel:   id,
		Timestamp: time.Now().UnixMilli(),
	})
	return nil
}
