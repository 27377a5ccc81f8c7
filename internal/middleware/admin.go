package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminAuth 唯一的共享管理员口令校验。口令未配置时管理接口整体关闭。
func AdminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.JSON(http.StatusForbidden, gin.H{"msg": "admin disabled"})
			c.Abort()
			return
		}
		got := c.GetHeader("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.JSON(http.StatusForbidden, gin.H{"msg": "admin token required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
