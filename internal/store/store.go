package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrKeyMiss 键不存在或已过期（两者对调用方不可区分）
	ErrKeyMiss = errors.New("key miss")
	// ErrDocNotFound 集合中不存在该 id 的文档（含因超出保留上限被淘汰的情况）
	ErrDocNotFound = errors.New("document not found")
	// ErrStoreUnavailable 底层存储调用失败，调用方可整体重试
	ErrStoreUnavailable = errors.New("store unavailable")
)

// KV 底层存储的四类原语：列表、集合、计数器、带过期的标量。
// 所有操作在单 key 上原子，跨 key 没有任何原子性保证——
// 上层的一切设计（读改写协议、会话索引）都建立在这个约束之上。
type KV interface {
	// 列表
	LPush(ctx context.Context, key string, vals ...string) error
	RPush(ctx context.Context, key string, vals ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LTrim(ctx context.Context, key string, start, stop int64) error
	LSet(ctx context.Context, key string, index int64, val string) error
	Del(ctx context.Context, key string) error

	// 集合
	SAdd(ctx context.Context, key, member string) error
	SRem(ctx context.Context, key, member string) error
	SIsMember(ctx context.Context, key, member string) (bool, error)
	SMembers(ctx context.Context, key string) ([]string, error)

	// 计数器（缺省为 0）
	GetInt(ctx context.Context, key string) (int64, error)
	Incr(ctx context.Context, key string) (int64, error)
	SetInt(ctx context.Context, key string, v int64) error

	// 带过期的标量
	SetEx(ctx context.Context, key, val string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}
