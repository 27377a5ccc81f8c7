package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Pulse_Feed/internal/model"
	"Pulse_Feed/internal/pkg"
	"Pulse_Feed/internal/repository/kv"
	"Pulse_Feed/internal/store"

	"github.com/google/uuid"
)

const (
	DefaultChannel   = "general"
	DefaultAuthor    = "Anonyme"
	DefaultAvatar    = "👤"
	DefaultListLimit = 100
)

type PostService struct {
	posts    *kv.PostRepository
	mod      *kv.ModerationRepository
	producer *pkg.KafkaProducer
}

func NewPostService(kvs store.KV, cap int64, producer *pkg.KafkaProducer) *PostService {
	return &PostService{
		posts:    kv.NewPostRepository(kvs, cap),
		mod:      kv.NewModerationRepository(kvs),
		producer: producer,
	}
}

// CreatePost 发帖。封禁校验在任何存储写入之前完成。
func (s *PostService) CreatePost(ctx context.Context, author, avatar, content, channel string) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content required", ErrInvalidInput)
	}
	if channel == "" {
		channel = DefaultChannel
	}
	if author == "" {
		author = DefaultAuthor
	}
	if avatar == "" {
		avatar = DefaultAvatar
	}

	banned, err := s.mod.IsBanned(ctx, author)
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, ErrBanned
	}

	post := &model.Post{
		ID:        uuid.NewString(),
		Author:    author,
		Avatar:    avatar,
		Content:   content,
		ChannelID: channel,
		Timestamp: time.Now().UnixMilli(),
		Likes:     []string{},
		Comments:  []model.Comment{},
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.producer.Emit(ctx, pkg.FeedEvent{
		Type:      pkg.EventPostCreated,
		Channel:   channel,
		Identity:  author,
		DocID:     post.ID,
		Timestamp: post.Timestamp,
	})
	return post, nil
}

// ListPosts 某频道最新的帖子，新帖在前
func (s *PostService) ListPosts(ctx context.Context, channel string, limit int64) ([]model.Post, error) {
	if channel == "" {
		channel = DefaultChannel
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.posts.ListByChannel(ctx, channel, limit)
}

// DeletePost 管理动作：按 id 删帖，嵌在帖子里的评论和点赞随之消失
func (s *PostService) DeletePost(ctx context.Context, channel, postID string) error {
	if channel == "" {
		channel = DefaultChannel
	}
	if postID == "" {
		return fmt.Errorf("%w: postId required", ErrInvalidInput)
	}
	if err := s.posts.Delete(ctx, channel, postID); err != nil {
		return err
	}
	s.producer.Emit(ctx, pkg.FeedEvent{
		Type:      pkg.EventPostDeleted,
		Channel:   channel,
		DocID:     postID,
		Timestamp: time.Now().UnixMilli(),
	})
	return nil
}

// ToggleLike 切换点赞，返回最新点赞数和切换后的状态。
// 并发的两次切换之间没有串行化保证，可能丢一次——集合粒度 last-writer-wins。
func (s *PostService) ToggleLike(ctx context.Context, channel, postID, identity string) (int, bool, error) {
	if postID == "" || identity == "" {
		return 0, false, fmt.Errorf("%w: postId and userId required", ErrInvalidInput)
	}
	if channel == "" {
		channel = DefaultChannel
	}
	post, liked, err := s.posts.ToggleLike(ctx, channel, postID, identity)
	if err != nil {
		return 0, false, err
	}
	return len(post.Likes), liked, nil
}

// AddComment 评论追加到帖子文档内部，同样有封禁校验
func (s *PostService) AddComment(ctx context.Context, channel, postID, author, avatar, content string) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" || postID == "" {
		return nil, fmt.Errorf("%w: postId and content required", ErrInvalidInput)
	}
	if channel == "" {
		channel = DefaultChannel
	}
	if author == "" {
		author = DefaultAuthor
	}
	if avatar == "" {
		avatar = DefaultAvatar
	}

	banned, err := s.mod.IsBanned(ctx, author)
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, ErrBanned
	}

	comment := model.Comment{
		ID:        uuid.NewString(),
		Author:    author,
		Avatar:    avatar,
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	}
	post, err := s.posts.AddComment(ctx, channel, postID, comment)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
