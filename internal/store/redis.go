package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis 基于 go-redis 的 KV 实现
type Redis struct {
	client *redis.Client
}

// NewRedis 初始化 Redis 客户端并做一次 Ping 健康检查。
func NewRedis(addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,     // 例如 "127.0.0.1:6379"
		Password:     password, // 无密码则留空
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &Redis{client: client}, nil
}

// NewRedisFromClient 测试或复用连接时直接包一个现成客户端
func NewRedisFromClient(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Close 关闭客户端（程序退出时调用）
func (r *Redis) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

// wrap 把驱动错误统一映射为 ErrStoreUnavailable，保持错误可判别
func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func (r *Redis) LPush(ctx context.Context, key string, vals ...string) error {
	args := make([]interface{}, len(vals))
	for i, v := range vals {
		args[i] = v
	}
	return wrap(r.client.LPush(ctx, key, args...).Err())
}

func (r *Redis) RPush(ctx context.Context, key string, vals ...string) error {
	args := make([]interface{}, len(vals))
	for i, v := range vals {
		args[i] = v
	}
	return wrap(r.client.RPush(ctx, key, args...).Err())
}

func (r *Redis) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	vals, err := r.client.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, wrap(err)
	}
	return vals, nil
}

func (r *Redis) LTrim(ctx context.Context, key string, start, stop int64) error {
	return wrap(r.client.LTrim(ctx, key, start, stop).Err())
}

func (r *Redis) LSet(ctx context.Context, key string, index int64, val string) error {
	return wrap(r.client.LSet(ctx, key, index, val).Err())
}

func (r *Redis) Del(ctx context.Context, key string) error {
	return wrap(r.client.Del(ctx, key).Err())
}

func (r *Redis) SAdd(ctx context.Context, key, member string) error {
	return wrap(r.client.SAdd(ctx, key, member).Err())
}

func (r *Redis) SRem(ctx context.Context, key, member string) error {
	return wrap(r.client.SRem(ctx, key, member).Err())
}

func (r *Redis) SIsMember(ctx context.Context, key, member string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, key, member).Result()
	if err != nil {
		return false, wrap(err)
	}
	return ok, nil
}

func (r *Redis) SMembers(ctx context.Context, key string) ([]string, error) {
	members, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, wrap(err)
	}
	return members, nil
}

// GetInt 读计数器，key 不存在按 0 处理
func (r *Redis) GetInt(ctx context.Context, key string) (int64, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, wrap(err)
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Redis) Incr(ctx context.Context, key string) (int64, error) {
	n, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, wrap(err)
	}
	return n, nil
}

func (r *Redis) SetInt(ctx context.Context, key string, v int64) error {
	return wrap(r.client.Set(ctx, key, v, 0).Err())
}

func (r *Redis) SetEx(ctx context.Context, key, val string, ttl time.Duration) error {
	return wrap(r.client.Set(ctx, key, val, ttl).Err())
}

// Get 读带过期的标量，过期与从未写入都返回 ErrKeyMiss
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyMiss
	}
	if err != nil {
		return "", wrap(err)
	}
	return val, nil
}
