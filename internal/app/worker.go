package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/JuanDavidBarr/TalentoPlus/internal/config"
	"github.com/JuanDavidBarr/TalentoPlus/internal/notify"

	"go.uber.org/zap"
)

// RunWorker consumes employee_registered events and sends welcome emails.
// It blocks until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	mailer := notify.NewSMTPMailer(cfg.SMTP)
	consumer := notify.NewRegisteredConsumer(cfg.Kafka.Broker, cfg.Kafka.GroupID, mailer)
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer.Start(ctx)
	logger.Info("welcome mail worker running",
		zap.String("broker", cfg.Kafka.Broker),
		zap.String("group_id", cfg.Kafka.GroupID),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
