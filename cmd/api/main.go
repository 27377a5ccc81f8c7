package main

import (
	"Pulse_Feed/config"
	"Pulse_Feed/internal/pkg"
	"Pulse_Feed/internal/router"
	"Pulse_Feed/internal/store"

	"go.uber.org/zap"
)

func main() {
	config.Init()

	pkg.InitLogger(config.AppConfig.LogLevel)
	defer pkg.Logger.Sync()

	// 连接redis
	kvs, err := store.NewRedis(
		config.AppConfig.RedisAddr,
		config.AppConfig.RedisPassword,
		config.AppConfig.RedisDB,
	)
	if err != nil {
		pkg.Logger.Fatal("redis 初始化失败", zap.Error(err))
	}
	defer kvs.Close()

	// Kafka 事件流，未配置则不启用
	var producer *pkg.KafkaProducer
	if config.AppConfig.KafkaTopic != "" && len(config.AppConfig.KafkaBrokers) > 0 {
		producer, err = pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: config.AppConfig.KafkaBrokers,
			Topic:   config.AppConfig.KafkaTopic,
		})
		if err != nil {
			pkg.Logger.Fatal("kafka 初始化失败", zap.Error(err))
		}
		defer producer.Close()
	}

	// Gin
	r := router.InitRouter(kvs, producer, config.AppConfig)
	if err := r.Run(config.AppConfig.ListenAddr); err != nil {
		pkg.Logger.Fatal("服务启动失败", zap.Error(err))
	}
}
