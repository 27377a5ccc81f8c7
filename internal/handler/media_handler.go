package handler

import (
	"net/http"

	"Pulse_Feed/internal/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	svc *service.MediaService
}

type PutMediaReq struct {
	ID       string `json:"id"`
	Data     string `json:"data"`
	Type     string `json:"type"`
	Duration int    `json:"duration"`
}

func NewMediaHandler(svc *service.MediaService) *MediaHandler {
	return &MediaHandler{svc: svc}
}

// Put 存临时媒体，TTL 到期后自动消失
func (h *MediaHandler) Put(c *gin.Context) {
	var req PutMediaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Put(c.Request.Context(), req.ID, req.Data, req.Type, req.Duration); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// Get 取媒体，过期与不存在同样返回 404
func (h *MediaHandler) Get(c *gin.Context) {
	media, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}
