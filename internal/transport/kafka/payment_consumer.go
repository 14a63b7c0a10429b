package kafkat

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pradeepdcosta/pathdrive-console/internal/entity"
	"github.com/pradeepdcosta/pathdrive-console/internal/service"
	"github.com/pradeepdcosta/pathdrive-console/pkg/kafka/dlq"
	"github.com/pradeepdcosta/pathdrive-console/pkg/logger"
	"github.com/pradeepdcosta/pathdrive-console/pkg/metric"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

type DLQ interface {
	Send(ctx context.Context, msg kafka.Message, err error, retryCount int) error
}

// PaymentEvent is the provider relay's settlement notification. UserID must
// be the order owner; ownership is enforced by the order service, not here.
type PaymentEvent struct {
	OrderID       uuid.UUID `json:"order_id"`
	UserID        uuid.UUID `json:"user_id"`
	PaymentStatus string    `json:"payment_status"`
	PaymentRef    string    `json:"payment_ref"`
}

// PaymentConsumer applies payment-events to orders through the same
// settlement operation the HTTP API uses.
type PaymentConsumer struct {
	reader *kafka.Reader
	dlq    *dlq.DLQ
	svc    *service.OrderService
	metric metric.Kafka
	log    logger.Logger
}

func NewPaymentConsumer(
	reader *kafka.Reader,
	dlq *dlq.DLQ,
	svc *service.OrderService,
	metric metric.Kafka,
	log logger.Logger,
) *PaymentConsumer {
	return &PaymentConsumer{
		reader: reader,
		dlq:    dlq,
		svc:    svc,
		metric: metric,
		log:    log,
	}
}

func (c *PaymentConsumer) Start(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return c.run(ctx)
	})

	eg.Go(func() error {
		<-ctx.Done()
		c.log.Infow("shutting down payment consumer")
		return c.reader.Close()
	})

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("transport.kafka.payment_consumer.Start: %w", err)
	}
	return nil
}

func (c *PaymentConsumer) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("transport.kafka.payment_consumer.run: %w", err)
			}
			return nil
		default:
			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if errors.Is(ctx.Err(), context.Canceled) {
					return nil
				}
				c.log.Errorw("kafka read failed",
					"error", err,
				)
				continue
			}

			c.metric.MessageProcessed(msg.Topic, msg.Partition)
			c.processMessage(ctx, msg)
		}
	}
}

func (c *PaymentConsumer) processMessage(ctx context.Context, msg kafka.Message) {
	c.log.Infow("processing payment event",
		"topic", msg.Topic,
		"partition", msg.Partition,
		"offset", msg.Offset,
	)

	err := dlq.ProcessWithRetry(
		ctx,
		msg,
		c.handleMessage,
		c.dlq,
		c.log,
	)
	if err != nil {
		dlqErr := c.dlq.Send(ctx, msg, err, c.dlq.MaxAttempts)
		if dlqErr != nil {
			c.log.Errorw("critical: failed to send to DLQ after retries",
				"offset", msg.Offset,
				"original_error", err,
				"dlq_error", dlqErr,
			)
			c.log.Errorw("dlq fallback",
				"payload_hash", sha256.Sum256(msg.Value),
				"offset", msg.Offset,
			)
		} else {
			c.log.Infow("payment event sent to DLQ after max retries",
				"offset", msg.Offset,
				"retry_count", c.dlq.MaxAttempts,
			)
		}
		c.metric.MessageFailed(msg.Topic, msg.Partition, "retry_limit_exceeded")
	}
}

func (c *PaymentConsumer) handleMessage(ctx context.Context, msg kafka.Message) error {
	const op = "transport.kafka.payment_consumer.handleMessage"

	var event PaymentEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("%s: unmarshal payment event: %w", op, err)
	}
	if event.OrderID == uuid.Nil || event.UserID == uuid.Nil {
		return fmt.Errorf("%s: missing order or user id: %w", op, entity.ErrInvalidData)
	}

	caller := entity.Caller{UserID: event.UserID, Role: entity.RoleUser}
	_, err := c.svc.UpdatePaymentStatus(
		ctx, caller, event.OrderID,
		entity.PaymentStatus(event.PaymentStatus), event.PaymentRef,
	)
	if err != nil {
		return fmt.Errorf("%s: apply payment event: %w", op, err)
	}

	c.log.Infow("payment event applied",
		"order_id", event.OrderID.String(),
		"payment_status", event.PaymentStatus,
		"offset", msg.Offset,
	)

	return nil
}
