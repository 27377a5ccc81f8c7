package handler

import (
	"net/http"

	"Pulse_Feed/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

type CreatePostReq struct {
	Author  string `json:"author"`
	Avatar  string `json:"avatar"`
	Content string `json:"content"`
	Channel string `json:"channel"`
}

type LikeReq struct {
	PostID  string `json:"postId"`
	UserID  string `json:"userId"`
	Channel string `json:"channel"`
}

type CommentReq struct {
	PostID  string `json:"postId"`
	Author  string `json:"author"`
	Avatar  string `json:"avatar"`
	Content string `json:"content"`
	Channel string `json:"channel"`
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// List 某频道最新帖子，新帖在前
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.svc.ListPosts(c.Request.Context(), c.Query("channel"), 0)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Create 发帖接口
func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	post, err := h.svc.CreatePost(c.Request.Context(), req.Author, req.Avatar, req.Content, req.Channel)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// Delete 管理删帖接口
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.svc.DeletePost(c.Request.Context(), c.Query("channel"), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Like 点赞切换接口
func (h *PostHandler) Like(c *gin.Context) {
	var req LikeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	likes, liked, err := h.svc.ToggleLike(c.Request.Context(), req.Channel, req.PostID, req.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes, "liked": liked})
}

// Comment 评论接口
func (h *PostHandler) Comment(c *gin.Context) {
	var req CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if _, err := h.svc.AddComment(c.Request.Context(), req.Channel, req.PostID, req.Author, req.Avatar, req.Content); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}
