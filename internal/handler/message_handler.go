package handler

import (
	"net/http"

	"Pulse_Feed/internal/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	svc *service.MessageService
}

type SendMessageReq struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Content string `json:"content"`
	MediaID string `json:"mediaId"`
}

type MarkReadReq struct {
	User string `json:"user"`
	From string `json:"from"`
}

func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// List 两人之间最新的消息，按时间顺序返回
func (h *MessageHandler) List(c *gin.Context) {
	msgs, err := h.svc.ListBetween(c.Request.Context(), c.Query("user1"), c.Query("user2"), 0)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// Send 发私信接口
func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	msg, err := h.svc.Send(c.Request.Context(), req.From, req.To, req.Content, req.MediaID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// Conversations 某身份的会话列表（联系人 + 未读数）
func (h *MessageHandler) Conversations(c *gin.Context) {
	convs, err := h.svc.Conversations(c.Request.Context(), c.Query("user"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, convs)
}

// MarkRead 打开会话：未读清零并把对方消息标记已读
func (h *MessageHandler) MarkRead(c *gin.Context) {
	var req MarkReadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.MarkRead(c.Request.Context(), req.User, req.From); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
