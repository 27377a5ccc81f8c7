package kv

import (
	"context"
	"sort"

	"Pulse_Feed/internal/store"
)

const BannedSetKey = "banned"

// ModerationRepository 全局封禁名单，一个无序集合。
// 其余组件只需要成员判定这一个读操作。
type ModerationRepository struct {
	kv store.KV
}

func NewModerationRepository(kv store.KV) *ModerationRepository {
	return &ModerationRepository{kv: kv}
}

// Ban 幂等加入封禁名单
func (r *ModerationRepository) Ban(ctx context.Context, identity string) error {
	return r.kv.SAdd(ctx, BannedSetKey, identity)
}

// Unban 幂等移出封禁名单
func (r *ModerationRepository) Unban(ctx context.Context, identity string) error {
	return r.kv.SRem(ctx, BannedSetKey, identity)
}

func (r *ModerationRepository) IsBanned(ctx context.Context, identity string) (bool, error) {
	return r.kv.SIsMember(ctx, BannedSetKey, identity)
}

func (r *ModerationRepository) Banned(ctx context.Context) ([]string, error) {
	banned, err := r.kv.SMembers(ctx, BannedSetKey)
	if err != nil {
		return nil, err
	}
	sort.Strings(banned)
	return banned, nil
}
