package handler

import (
	"net/http"

	"Pulse_Feed/internal/service"

	"github.com/gin-gonic/gin"
)

type ChannelHandler struct {
	svc *service.ChannelService
}

type CreateChannelReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewChannelHandler(svc *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

func (h *ChannelHandler) List(c *gin.Context) {
	channels, err := h.svc.ListChannels(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, channels)
}

// Create 建频道，slug 重复返回 409
func (h *ChannelHandler) Create(c *gin.Context) {
	var req CreateChannelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	ch, err := h.svc.CreateChannel(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, ch)
}

// Delete 删频道并级联删它的帖子集合
func (h *ChannelHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteChannel(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
