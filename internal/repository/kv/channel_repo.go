package kv

import (
	"context"
	"errors"

	"Pulse_Feed/internal/model"
	"Pulse_Feed/internal/store"
)

const ChannelsKey = "channels"

var (
	ErrChannelExists   = errors.New("channel already exists")
	ErrChannelNotFound = errors.New("channel not found")
)

// ChannelRepository 频道表。频道由管理员创建、数量很少，
// 所以不设保留上限，按创建顺序追加在尾部。
type ChannelRepository struct {
	kv store.KV
}

func NewChannelRepository(kv store.KV) *ChannelRepository {
	return &ChannelRepository{kv: kv}
}

func (r *ChannelRepository) collection() *store.Collection[model.Channel] {
	return store.NewCollection[model.Channel](r.kv, ChannelsKey, 0)
}

func (r *ChannelRepository) List(ctx context.Context) ([]model.Channel, error) {
	return r.collection().All(ctx)
}

// Create 查重后追加。查重和追加是两次存储调用，并发创建同名频道
// 可能都成功——频道创建是管理员低频操作，接受这个窗口。
func (r *ChannelRepository) Create(ctx context.Context, ch *model.Channel) error {
	existing, err := r.collection().All(ctx)
	if err != nil {
		return err
	}
	for _, c := range existing {
		if c.ID == ch.ID {
			return ErrChannelExists
		}
	}
	return r.collection().AppendTail(ctx, *ch)
}

// Delete 从频道表移除该频道，帖子集合的级联删除由上层调用 DropChannel 完成
func (r *ChannelRepository) Delete(ctx context.Context, id string) error {
	found := false
	_, err := r.collection().Rewrite(ctx, func(c model.Channel) bool {
		if c.ID == id {
			found = true
			return false
		}
		return true
	}, nil)
	if err != nil {
		return err
	}
	if !found {
		return ErrChannelNotFound
	}
	return nil
}
