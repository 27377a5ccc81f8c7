package kv

import (
	"context"
	"errors"
	"fmt"

	"Pulse_Feed/internal/model"
	"Pulse_Feed/internal/store"
)

const (
	PostKeyPrefix  = "posts" // posts:<channel> 每个频道一个集合
	DefaultPostCap = 500
)

var ErrPostNotFound = errors.New("post not found")

// PostRepository 帖子仓库。一个频道的全部帖子放在同一个有界集合里，
// 点赞、评论都走读改写协议。
type PostRepository struct {
	kv  store.KV
	cap int64
}

func NewPostRepository(kv store.KV, cap int64) *PostRepository {
	if cap <= 0 {
		cap = DefaultPostCap
	}
	return &PostRepository{kv: kv, cap: cap}
}

func (r *PostRepository) collection(channel string) *store.Collection[model.Post] {
	return store.NewCollection[model.Post](r.kv, fmt.Sprintf("%s:%s", PostKeyPrefix, channel), r.cap)
}

// Create 新帖插入集合头部，超出上限的旧帖被淘汰
func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	return r.collection(post.ChannelID).Append(ctx, *post)
}

// ListByChannel 取最新的 limit 条，存储就是新帖在前，直接按序返回
func (r *PostRepository) ListByChannel(ctx context.Context, channel string, limit int64) ([]model.Post, error) {
	if limit <= 0 || limit > r.cap {
		limit = r.cap
	}
	return r.collection(channel).Range(ctx, 0, limit-1)
}

// ToggleLike 切换点赞，返回更新后的帖子和切换后的点赞状态
func (r *PostRepository) ToggleLike(ctx context.Context, channel, postID, identity string) (model.Post, bool, error) {
	liked := false
	post, err := r.collection(channel).Mutate(ctx, postID, func(p *model.Post) {
		liked = p.ToggleLike(identity)
	})
	if errors.Is(err, store.ErrDocNotFound) {
		return model.Post{}, false, ErrPostNotFound
	}
	return post, liked, err
}

// AddComment 往帖子里追加一条评论
func (r *PostRepository) AddComment(ctx context.Context, channel, postID string, comment model.Comment) (model.Post, error) {
	post, err := r.collection(channel).Mutate(ctx, postID, func(p *model.Post) {
		p.Comments = append(p.Comments, comment)
	})
	if errors.Is(err, store.ErrDocNotFound) {
		return model.Post{}, ErrPostNotFound
	}
	return post, err
}

// Delete 按 id 删帖，走整表重写的回退路径
func (r *PostRepository) Delete(ctx context.Context, channel, postID string) error {
	found := false
	_, err := r.collection(channel).Rewrite(ctx, func(p model.Post) bool {
		if p.ID == postID {
			found = true
			return false
		}
		return true
	}, nil)
	if err != nil {
		return err
	}
	if !found {
		return ErrPostNotFound
	}
	return nil
}

// DropChannel 删除整个频道的帖子集合（删频道时的级联）
func (r *PostRepository) DropChannel(ctx context.Context, channel string) error {
	return r.kv.Del(ctx, fmt.Sprintf("%s:%s", PostKeyPrefix, channel))
}
