package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用配置，全部来自环境变量
type Config struct {
	ListenAddr    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	AdminToken    string // 共享的管理员口令，为空则关闭管理接口
	KafkaBrokers  []string
	KafkaTopic    string // 为空则不发事件
	MediaTTL      time.Duration
	PostCap       int64 // 每个频道保留的帖子数上限
	MessageCap    int64 // 每个会话保留的消息数上限
	LogLevel      string
}

// AppConfig 全局配置变量
var AppConfig Config

// Init 加载 .env 并读取环境变量
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("警告：无法加载 .env 文件: %v", err)
	}

	AppConfig = Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		AdminToken:    getEnv("ADMIN_TOKEN", ""),
		KafkaBrokers:  getEnvAsSlice("KAFKA_BROKERS"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", ""),
		MediaTTL:      getEnvAsDuration("MEDIA_TTL", 10*time.Minute),
		PostCap:       int64(getEnvAsInt("POST_CAP", 500)),
		MessageCap:    int64(getEnvAsInt("MESSAGE_CAP", 200)),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvAsSlice 逗号分隔列表，例如 "kafka1:9092,kafka2:9092"
func getEnvAsSlice(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
