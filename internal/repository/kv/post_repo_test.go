package kv

import (
	"context"
	"fmt"
	"testing"

	"Pulse_Feed/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPost(id, channel string) *model.Post {
	return &model.Post{
		ID:        id,
		Author:    "alice",
		Avatar:    "👤",
		Content:   "hello",
		ChannelID: channel,
		Likes:     []string{},
		Comments:  []model.Comment{},
	}
}

// TestPostCreateAndList 新帖在前，频道之间互不影响
func TestPostCreateAndList(t *testing.T) {
	kvs, _ := newTestStore(t)
	repo := NewPostRepository(kvs, 500)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPost("p1", "general")))
	require.NoError(t, repo.Create(ctx, newPost("p2", "general")))
	require.NoError(t, repo.Create(ctx, newPost("p3", "random")))

	posts, err := repo.ListByChannel(ctx, "general", 100)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p2", posts[0].ID)
	assert.Equal(t, "p1", posts[1].ID)

	other, err := repo.ListByChannel(ctx, "random", 100)
	require.NoError(t, err)
	require.Len(t, other, 1)
}

// TestPostCap 超出上限后最旧的帖子被淘汰
func TestPostCap(t *testing.T) {
	kvs, _ := newTestStore(t)
	repo := NewPostRepository(kvs, 3)
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		require.NoError(t, repo.Create(ctx, newPost(fmt.Sprintf("p%d", i), "general")))
	}

	posts, err := repo.ListByChannel(ctx, "general", 100)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for _, p := range posts {
		assert.NotEqual(t, "p1", p.ID)
	}
}

// TestToggleLike 同一身份点两次回到原状态，集合内无重复
func TestToggleLike(t *testing.T) {
	kvs, _ := newTestStore(t)
	repo := NewPostRepository(kvs, 500)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newPost("p1", "general")))

	post, liked, err := repo.ToggleLike(ctx, "general", "p1", "bob")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, []string{"bob"}, post.Likes)

	post, liked, err = repo.ToggleLike(ctx, "general", "p1", "bob")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Empty(t, post.Likes)
}

func TestToggleLikeNotFound(t *testing.T) {
	kvs, _ := newTestStore(t)
	repo := NewPostRepository(kvs, 500)

	_, _, err := repo.ToggleLike(context.Background(), "general", "ghost", "bob")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

// TestAddComment 评论追加到文档内部，版本号随之自增
func TestAddComment(t *testing.T) {
	kvs, _ := newTestStore(t)
	repo := NewPostRepository(kvs, 500)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newPost("p1", "general")))

	post, err := repo.AddComment(ctx, "general", "p1", model.Comment{ID: "c1", Author: "bob", Content: "hi"})
	require.NoError(t, err)
	require.Len(t, post.Comments, 1)
	assert.Equal(t, "c1", post.Comments[0].ID)
	assert.Equal(t, int64(1), post.Rev)

	_, err = repo.AddComment(ctx, "general", "ghost", model.Comment{ID: "c2"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

// TestPostDelete 删帖走整表重写，其余帖子顺序不变
func TestPostDelete(t *testing.T) {
	kvs, _ := newTestStore(t)
	repo := NewPostRepository(kvs, 500)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2", "p3"} {
		require.NoError(t, repo.Create(ctx, newPost(id, "general")))
	}

	require.NoError(t, repo.Delete(ctx, "general", "p2"))

	posts, err := repo.ListByChannel(ctx, "general", 100)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p3", posts[0].ID)
	assert.Equal(t, "p1", posts[1].ID)

	assert.ErrorIs(t, repo.Delete(ctx, "general", "p2"), ErrPostNotFound)
}

func TestDropChannel(t *testing.T) {
	kvs, _ := newTestStore(t)
	repo := NewPostRepository(kvs, 500)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newPost("p1", "general")))

	require.NoError(t, repo.DropChannel(ctx, "general"))

	posts, err := repo.ListByChannel(ctx, "general", 100)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
