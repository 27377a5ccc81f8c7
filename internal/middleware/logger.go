package middleware

import (
	"time"

	"Pulse_Feed/internal/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger 每个请求一条结构化日志
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		pkg.Logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
