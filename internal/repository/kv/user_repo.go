package kv

import (
	"context"
	"sort"
	"strings"

	"Pulse_Feed/internal/store"
)

const (
	UsersSetKey        = "users"
	DefaultSearchLimit = 6
)

// UserRepository 已知身份注册表，用于查找和自动补全。
// 身份本身由客户端自报，这里只登记见过谁。
type UserRepository struct {
	kv store.KV
}

func NewUserRepository(kv store.KV) *UserRepository {
	return &UserRepository{kv: kv}
}

// Register 幂等登记一个身份
func (r *UserRepository) Register(ctx context.Context, identity string) error {
	return r.kv.SAdd(ctx, UsersSetKey, identity)
}

// Search 大小写不敏感的前缀过滤，结果排序后截断到 limit 条
func (r *UserRepository) Search(ctx context.Context, prefix string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	all, err := r.kv.SMembers(ctx, UsersSetKey)
	if err != nil {
		return nil, err
	}
	sort.Strings(all)
	lower := strings.ToLower(prefix)
	out := make([]string, 0, limit)
	for _, u := range all {
		if lower != "" && !strings.HasPrefix(strings.ToLower(u), lower) {
			continue
		}
		out = append(out, u)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}
