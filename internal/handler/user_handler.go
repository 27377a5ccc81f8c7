package handler

import (
	"net/http"

	"Pulse_Feed/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.ModerationService
}

type RegisterUserReq struct {
	Username string `json:"username"`
}

func NewUserHandler(svc *service.ModerationService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Search 按前缀搜索已知身份，用于自动补全
func (h *UserHandler) Search(c *gin.Context) {
	users, err := h.svc.SearchUsers(c.Request.Context(), c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Register 登记一个身份
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.RegisterUser(c.Request.Context(), req.Username); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
