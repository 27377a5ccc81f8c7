package router

import (
	"Pulse_Feed/config"
	"Pulse_Feed/internal/handler"
	"Pulse_Feed/internal/middleware"
	"Pulse_Feed/internal/pkg"
	"Pulse_Feed/internal/service"
	"Pulse_Feed/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRouter(kvs store.KV, producer *pkg.KafkaProducer, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.Default())

	post := handler.NewPostHandler(service.NewPostService(kvs, cfg.PostCap, producer))
	channel := handler.NewChannelHandler(service.NewChannelService(kvs, cfg.PostCap, producer))
	message := handler.NewMessageHandler(service.NewMessageService(kvs, cfg.MessageCap))
	media := handler.NewMediaHandler(service.NewMediaService(kvs, cfg.MediaTTL))
	moderation := handler.NewModerationHandler(service.NewModerationService(kvs, producer))
	user := handler.NewUserHandler(service.NewModerationService(kvs, producer))

	// 帖子相关接口
	postGroup := r.Group("/api/posts")
	{
		postGroup.GET("", post.List)
		postGroup.POST("", post.Create)
		postGroup.POST("/like", post.Like)
		postGroup.POST("/comment", post.Comment)
	}

	// 频道相关接口
	channelGroup := r.Group("/api/channels")
	{
		channelGroup.GET("", channel.List)
		channelGroup.POST("", channel.Create)
	}

	// 私信相关接口
	messageGroup := r.Group("/api/messages")
	{
		messageGroup.GET("", message.List)
		messageGroup.POST("", message.Send)
	}

	// 会话列表相关接口
	convGroup := r.Group("/api/conversations")
	{
		convGroup.GET("", message.Conversations)
		convGroup.POST("/read", message.MarkRead)
	}

	// 临时媒体相关接口
	mediaGroup := r.Group("/api/media")
	{
		mediaGroup.POST("", media.Put)
		mediaGroup.GET("/:id", media.Get)
	}

	// 身份注册与搜索接口
	userGroup := r.Group("/api/users")
	{
		userGroup.GET("", user.Search)
		userGroup.POST("", user.Register)
	}

	// 管理接口，共享口令保护
	adminGroup := r.Group("/api")
	adminGroup.Use(middleware.AdminAuth(cfg.AdminToken))
	{
		adminGroup.DELETE("/posts/:id", post.Delete)
		adminGroup.DELETE("/channels/:id", channel.Delete)
		adminGroup.GET("/moderation/banned", moderation.Banned)
		adminGroup.POST("/moderation/ban", moderation.Ban)
		adminGroup.DELETE("/moderation/ban", moderation.Unban)
	}

	return r
}
