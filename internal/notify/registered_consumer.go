package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/JuanDavidBarr/TalentoPlus/internal/events"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RegisteredConsumer turns employee_registered events into welcome emails.
// A failed send is logged and the message is committed anyway: the mail is
// a courtesy, not part of the registration contract.
type RegisteredConsumer struct {
	reader *kafka.Reader
	mailer Mailer
	logger *zap.Logger
}

func NewRegisteredConsumer(
	broker string,
	groupID string,
	mailer Mailer,
	logger ...*zap.Logger,
) *RegisteredConsumer {
	l := zap.L().Named("notify.consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notify.consumer")
	}

	return &RegisteredConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        []string{broker},
			Topic:          events.EmployeeRegisteredTopic,
			GroupID:        groupID,
			CommitInterval: time.Second,
			StartOffset:    kafka.FirstOffset,
		}),
		mailer: mailer,
		logger: l,
	}
}

func (c *RegisteredConsumer) Start(ctx context.Context) {
	go func() {
		for {
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.logger.Error("consume employee_registered failed", zap.Error(err))
				continue
			}

			var event events.EmployeeRegisteredEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				c.logger.Error("decode employee_registered event failed", zap.Error(err))
				if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
					c.logger.Error("commit invalid employee_registered event failed", zap.Error(commitErr))
				}
				continue
			}

			if err := c.mailer.SendWelcome(ctx, event.Email, event.FullName); err != nil {
				c.logger.Error("send welcome email failed",
					zap.Uint("employee_id", event.EmployeeID),
					zap.String("email", event.Email),
					zap.Error(err),
				)
			} else {
				c.logger.Info("welcome email sent from employee_registered event",
					zap.Uint("employee_id", event.EmployeeID),
					zap.String("email", event.Email),
				)
			}

			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error("commit employee_registered event failed", zap.Error(err))
			}
		}
	}()
}

func (c *RegisteredConsumer) Close() error {
	return c.reader.Close()
}
