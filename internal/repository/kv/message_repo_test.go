package kv

import (
	"context"
	"testing"

	"Pulse_Feed/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConvKeySymmetric 会话键与参数顺序无关
func TestConvKeySymmetric(t *testing.T) {
	assert.Equal(t, ConvKey("alice", "bob"), ConvKey("bob", "alice"))
	assert.Equal(t, "conv:alice:bob", ConvKey("bob", "alice"))
}

// TestMessageAppendSymmetric 双方的写都落在同一个集合
func TestMessageAppendSymmetric(t *testing.T) {
	kvs, _ := newTestStore(t)
	repo := NewMessageRepository(kvs, 200)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &model.Message{ID: "m1", From: "alice", To: "bob", Content: "hi"}))
	require.NoError(t, repo.Append(ctx, &model.Message{ID: "m2", From: "bob", To: "alice", Content: "yo"}))

	msgs, err := repo.ListBetween(ctx, "bob", "alice", 100)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	// 存储是新消息在前
	assert.Equal(t, "m2", msgs[0].ID)
	assert.Equal(t, "m1", msgs[1].ID)
}

// TestMarkRead 只有对方发来的消息被标记已读
func TestMarkRead(t *testing.T) {
	kvs, _ := newTestStore(t)
	repo := NewMessageRepository(kvs, 200)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &model.Message{ID: "m1", From: "alice", To: "bob"}))
	require.NoError(t, repo.Append(ctx, &model.Message{ID: "m2", From: "bob", To: "alice"}))

	// bob 打开与 alice 的会话
	require.NoError(t, repo.MarkRead(ctx, "bob", "alice"))

	msgs, err := repo.ListBetween(ctx, "alice", "bob", 100)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	for _, m := range msgs {
		if m.From == "alice" {
			assert.True(t, m.Read)
		} else {
			assert.False(t, m.Read)
		}
	}
}

func TestConversationLinkAndUnread(t *testing.T) {
	kvs, _ := newTestStore(t)
	repo := NewConversationRepository(kvs)
	ctx := context.Background()

	require.NoError(t, repo.Link(ctx, "alice", "bob"))
	require.NoError(t, repo.Link(ctx, "alice", "bob")) // 重复登记幂等

	require.NoError(t, repo.IncrUnread(ctx, "bob", "alice"))
	require.NoError(t, repo.IncrUnread(ctx, "bob", "alice"))

	// bob 的会话列表：与 alice 的会话有 2 条未读
	convs, err := repo.ListForUser(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, model.ConversationSummary{Contact: "alice", Unread: 2}, convs[0])

	// 反方向计数不受影响
	convs, err = repo.ListForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, int64(0), convs[0].Unread)

	require.NoError(t, repo.ResetUnread(ctx, "bob", "alice"))
	convs, err = repo.ListForUser(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(0), convs[0].Unread)
}

// TestConversationDefaultsEmpty 没有往来的身份会话列表为空，不报错
func TestConversationDefaultsEmpty(t *testing.T) {
	kvs, _ := newTestStore(t)
	repo := NewConversationRepository(kvs)

	convs, err := repo.ListForUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, convs)
}
