package pkg

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger 全局日志器
var Logger *zap.Logger = zap.NewNop()

func InitLogger(logLevel string) {
	config := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	config.Level.SetLevel(level)
	Logger, _ = config.Build()
}
