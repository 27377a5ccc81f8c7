package service

import (
	"context"
	"fmt"
	"time"

	"Pulse_Feed/internal/model"
	"Pulse_Feed/internal/repository/kv"
	"Pulse_Feed/internal/store"
)

type MediaService struct {
	media *kv.MediaRepository
}

func NewMediaService(kvs store.KV, ttl time.Duration) *MediaService {
	return &MediaService{
		media: kv.NewMediaRepository(kvs, ttl),
	}
}

// Put 存临时媒体。id 由客户端生成，重复写覆盖旧值并重置 TTL。
func (s *MediaService) Put(ctx context.Context, id, data, kind string, duration int) error {
	if id == "" || data == "" {
		return fmt.Errorf("%w: id and data required", ErrInvalidInput)
	}
	return s.media.Put(ctx, id, &model.Media{
		Data:      data,
		Type:      kind,
		Duration:  duration,
		Timestamp: time.Now().UnixMilli(),
	})
}

// Get 取媒体，过期与不存在统一返回 kv.ErrMediaNotFound
func (s *MediaService) Get(ctx context.Context, id string) (*model.Media, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id required", ErrInvalidInput)
	}
	return s.media.Get(ctx, id)
}
