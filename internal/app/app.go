package app

import (
	"log"

	"github.com/JuanDavidBarr/TalentoPlus/internal/config"
	"github.com/JuanDavidBarr/TalentoPlus/internal/messaging/kafka"
	"github.com/JuanDavidBarr/TalentoPlus/internal/shared/connection"

	"github.com/gin-gonic/gin"
)

// BuildApp connects every backing service, migrates the schema and wires
// all modules onto the router. The returned closer releases the Kafka
// producer; database and Redis handles live for the process lifetime.
func BuildApp(router *gin.Engine, cfg *config.Config) (func() error, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return nil, err
	}
	log.Println("✅ Database connection established")

	if err := Migrate(gormDB); err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
	if err != nil {
		return nil, err
	}
	log.Println("✅ Redis connection established")

	publisher := kafka.NewPublisher(cfg.Kafka.Broker)

	if err := registerModules(router, cfg, sqlDB, gormDB, redisClient, publisher); err != nil {
		return nil, err
	}

	return publisher.Close, nil
}
