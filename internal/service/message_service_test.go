package service

import (
	"context"
	"testing"
	"time"

	"Pulse_Feed/internal/model"
	"Pulse_Feed/internal/repository/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findConv(convs []model.ConversationSummary, contact string) *model.ConversationSummary {
	for i := range convs {
		if convs[i].Contact == contact {
			return &convs[i]
		}
	}
	return nil
}

// TestSendIncrementsUnread A 发给 B 只加 (B,A) 的未读，(A,B) 不动
func TestSendIncrementsUnread(t *testing.T) {
	kvs, _ := newTestStore(t)
	svc := NewMessageService(kvs, 200)
	ctx := context.Background()

	_, err := svc.Send(ctx, "alice", "bob", "hi", "")
	require.NoError(t, err)

	bobConvs, err := svc.Conversations(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, findConv(bobConvs, "alice"))
	assert.Equal(t, int64(1), findConv(bobConvs, "alice").Unread)

	aliceConvs, err := svc.Conversations(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, findConv(aliceConvs, "bob"))
	assert.Equal(t, int64(0), findConv(aliceConvs, "bob").Unread)
}

// TestMarkReadResets B 打开会话后 (B,A) 清零，消息标记已读
func TestMarkReadResets(t *testing.T) {
	kvs, _ := newTestStore(t)
	svc := NewMessageService(kvs, 200)
	ctx := context.Background()

	_, err := svc.Send(ctx, "alice", "bob", "hi", "")
	require.NoError(t, err)
	_, err = svc.Send(ctx, "alice", "bob", "again", "")
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(ctx, "bob", "alice"))

	convs, err := svc.Conversations(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(0), findConv(convs, "alice").Unread)

	msgs, err := svc.ListBetween(ctx, "bob", "alice", 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	for _, m := range msgs {
		assert.True(t, m.Read)
	}
}

// TestListChronological 列表按时间顺序返回，最早的在前
func TestListChronological(t *testing.T) {
	kvs, _ := newTestStore(t)
	svc := NewMessageService(kvs, 200)
	ctx := context.Background()

	first, err := svc.Send(ctx, "alice", "bob", "first", "")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.Send(ctx, "bob", "alice", "second", "")
	require.NoError(t, err)

	msgs, err := svc.ListBetween(ctx, "alice", "bob", 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, first.ID, msgs[0].ID)
	assert.Equal(t, second.ID, msgs[1].ID)
}

func TestSendValidation(t *testing.T) {
	kvs, _ := newTestStore(t)
	svc := NewMessageService(kvs, 200)
	ctx := context.Background()

	_, err := svc.Send(ctx, "", "bob", "hi", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Send(ctx, "alice", "bob", "   ", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestSendBannedGate 封禁身份不能发私信
func TestSendBannedGate(t *testing.T) {
	kvs, _ := newTestStore(t)
	svc := NewMessageService(kvs, 200)
	ctx := context.Background()

	require.NoError(t, kv.NewModerationRepository(kvs).Ban(ctx, "troll1"))

	_, err := svc.Send(ctx, "troll1", "bob", "spam", "")
	assert.ErrorIs(t, err, ErrBanned)
}

// TestSendWithMedia 消息携带媒体 id，数据层原样保存不解引用
func TestSendWithMedia(t *testing.T) {
	kvs, _ := newTestStore(t)
	svc := NewMessageService(kvs, 200)
	ctx := context.Background()

	msg, err := svc.Send(ctx, "alice", "bob", "look", "media-42")
	require.NoError(t, err)
	assert.Equal(t, "media-42", msg.MediaID)
}
