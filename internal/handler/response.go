package handler

import (
	"errors"
	"net/http"

	"Pulse_Feed/internal/repository/kv"
	"Pulse_Feed/internal/service"
	"Pulse_Feed/internal/store"

	"github.com/gin-gonic/gin"
)

// fail 按错误类别映射状态码，保证对外的错误是可判别的
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrBanned):
		c.JSON(http.StatusForbidden, gin.H{"msg": "banned"})
	case errors.Is(err, kv.ErrChannelExists):
		c.JSON(http.StatusConflict, gin.H{"msg": "channel already exists"})
	case errors.Is(err, kv.ErrPostNotFound),
		errors.Is(err, kv.ErrChannelNotFound),
		errors.Is(err, kv.ErrMediaNotFound),
		errors.Is(err, store.ErrDocNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
	case errors.Is(err, store.ErrStoreUnavailable):
		// 瞬时故障，调用方可整体重试（幂等操作安全，整表重写类不安全）
		c.JSON(http.StatusServiceUnavailable, gin.H{"msg": "store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
	}
}
