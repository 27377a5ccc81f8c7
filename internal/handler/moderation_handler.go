package handler

import (
	"net/http"

	"Pulse_Feed/internal/service"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	svc *service.ModerationService
}

type BanReq struct {
	Username string `json:"username"`
}

func NewModerationHandler(svc *service.ModerationService) *ModerationHandler {
	return &ModerationHandler{svc: svc}
}

func (h *ModerationHandler) Banned(c *gin.Context) {
	banned, err := h.svc.Banned(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"banned": banned})
}

func (h *ModerationHandler) Ban(c *gin.Context) {
	var req BanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Ban(c.Request.Context(), req.Username); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ModerationHandler) Unban(c *gin.Context) {
	var req BanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Unban(c.Request.Context(), req.Username); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
