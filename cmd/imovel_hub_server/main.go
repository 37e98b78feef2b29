package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"imovel_hub_server/internal/config"
	dao "imovel_hub_server/internal/dao/mysql"
	myredis "imovel_hub_server/internal/dao/redis"
	"imovel_hub_server/internal/handler"
	"imovel_hub_server/internal/https_server"
	"imovel_hub_server/internal/infrastructure/logger"
	"imovel_hub_server/internal/infrastructure/mq"
	"imovel_hub_server/internal/service"
	"imovel_hub_server/pkg/util/jwt"

	"go.uber.org/zap"
)

func main() {
	conf := config.GetConfig()

	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("logger initialized")

	repos := dao.Init()
	zap.L().Info("database initialized")

	myredis.Init()
	zap.L().Info("redis initialized")

	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	zap.L().Info("jwt initialized")

	if err := handler.InitTrans("en"); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	// lifecycle events go to kafka when enabled, otherwise nowhere
	var publisher mq.EventPublisher = mq.NoopPublisher{}
	var kafkaPublisher *mq.KafkaPublisher
	if conf.KafkaConfig.EventMode == "kafka" {
		kafkaPublisher = mq.NewKafkaPublisher()
		publisher = kafkaPublisher
		zap.L().Info("kafka event publisher initialized",
			zap.String("topic", conf.KafkaConfig.EventTopic))
	}

	services := service.NewServices(repos, publisher)
	handlers := handler.NewHandlers(services)
	engine := https_server.Init(handlers)

	go func() {
		addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
		if err := engine.Run(addr); err != nil {
			zap.L().Fatal("server stopped", zap.Error(err))
		}
	}()
	zap.L().Info("server started",
		zap.String("host", conf.MainConfig.Host),
		zap.Int("port", conf.MainConfig.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down")

	if kafkaPublisher != nil {
		kafkaPublisher.Close()
	}
	if err := myredis.Close(); err != nil {
		zap.L().Error("close redis", zap.Error(err))
	}

	zap.L().Info("server stopped")
}
