package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Pulse_Feed/internal/model"
	"Pulse_Feed/internal/store"
)

const (
	MediaKeyPrefix  = "media"
	DefaultMediaTTL = 10 * time.Minute
)

// ErrMediaNotFound 未写入和已过期对调用方不可区分
var ErrMediaNotFound = errors.New("media not found or expired")

// MediaRepository 临时媒体仓库。TTL 由存储自己强制执行，
// 进程重启也不影响到期清除；覆盖写会重置 TTL（last write wins）。
type MediaRepository struct {
	kv  store.KV
	ttl time.Duration
}

func NewMediaRepository(kv store.KV, ttl time.Duration) *MediaRepository {
	if ttl <= 0 {
		ttl = DefaultMediaTTL
	}
	return &MediaRepository{kv: kv, ttl: ttl}
}

func mediaKey(id string) string {
	return fmt.Sprintf("%s:%s", MediaKeyPrefix, id)
}

func (r *MediaRepository) Put(ctx context.Context, id string, media *model.Media) error {
	raw, err := json.Marshal(media)
	if err != nil {
		return err
	}
	return r.kv.SetEx(ctx, mediaKey(id), string(raw), r.ttl)
}

func (r *MediaRepository) Get(ctx context.Context, id string) (*model.Media, error) {
	raw, err := r.kv.Get(ctx, mediaKey(id))
	if errors.Is(err, store.ErrKeyMiss) {
		return nil, ErrMediaNotFound
	}
	if err != nil {
		return nil, err
	}
	var media model.Media
	if err := json.Unmarshal([]byte(raw), &media); err != nil {
		return nil, err
	}
	return &media, nil
}
