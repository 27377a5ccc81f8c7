package kv

import (
	"testing"

	"Pulse_Feed/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*store.Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return store.NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}
