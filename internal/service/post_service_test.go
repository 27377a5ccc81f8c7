package service

import (
	"context"
	"testing"

	"Pulse_Feed/internal/repository/kv"
	"Pulse_Feed/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*store.Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return store.NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

// TestCreatePostDefaults 空作者/头像用缺省值，内容去掉首尾空白
func TestCreatePostDefaults(t *testing.T) {
	kvs, _ := newTestStore(t)
	svc := NewPostService(kvs, 500, nil)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "", "", "  hello  ", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultAuthor, post.Author)
	assert.Equal(t, DefaultAvatar, post.Avatar)
	assert.Equal(t, "hello", post.Content)
	assert.Equal(t, DefaultChannel, post.ChannelID)
	assert.NotEmpty(t, post.ID)
	assert.NotNil(t, post.Likes)
	assert.NotNil(t, post.Comments)
}

func TestCreatePostEmptyContent(t *testing.T) {
	kvs, _ := newTestStore(t)
	svc := NewPostService(kvs, 500, nil)

	_, err := svc.CreatePost(context.Background(), "alice", "", "   ", "general")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestCreatePostBannedGate 封禁身份在入口被拒，不产生任何写入
func TestCreatePostBannedGate(t *testing.T) {
	kvs, _ := newTestStore(t)
	svc := NewPostService(kvs, 500, nil)
	ctx := context.Background()

	mod := kv.NewModerationRepository(kvs)
	require.NoError(t, mod.Ban(ctx, "troll1"))

	_, err := svc.CreatePost(ctx, "troll1", "", "spam", "general")
	assert.ErrorIs(t, err, ErrBanned)

	posts, err := svc.ListPosts(ctx, "general", 0)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestCommentBannedGate(t *testing.T) {
	kvs, _ := newTestStore(t)
	svc := NewPostService(kvs, 500, nil)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "alice", "", "hello", "general")
	require.NoError(t, err)

	mod := kv.NewModerationRepository(kvs)
	require.NoError(t, mod.Ban(ctx, "troll1"))

	_, err = svc.AddComment(ctx, "general", post.ID, "troll1", "", "spam")
	assert.ErrorIs(t, err, ErrBanned)
}

// TestToggleLikeTwice 无并发干扰时连续切换两次回到原点赞集合
func TestToggleLikeTwice(t *testing.T) {
	kvs, _ := newTestStore(t)
	svc := NewPostService(kvs, 500, nil)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "alice", "", "hello", "general")
	require.NoError(t, err)

	likes, liked, err := svc.ToggleLike(ctx, "general", post.ID, "bob")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, likes)

	likes, liked, err = svc.ToggleLike(ctx, "general", post.ID, "bob")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, likes)
}

// TestPostIDsUnique 同一频道内帖子 id 不重复
func TestPostIDsUnique(t *testing.T) {
	kvs, _ := newTestStore(t)
	svc := NewPostService(kvs, 500, nil)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := svc.CreatePost(ctx, "alice", "", "hello", "general")
		require.NoError(t, err)
	}

	posts, err := svc.ListPosts(ctx, "general", 0)
	require.NoError(t, err)
	seen := make(map[string]bool)
	for _, p := range posts {
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestDeletePost(t *testing.T) {
	kvs, _ := newTestStore(t)
	svc := NewPostService(kvs, 500, nil)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "alice", "", "hello", "general")
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(ctx, "general", post.ID))
	assert.ErrorIs(t, svc.DeletePost(ctx, "general", post.ID), kv.ErrPostNotFound)
}
