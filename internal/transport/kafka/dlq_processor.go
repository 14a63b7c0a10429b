package kafkat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pradeepdcosta/pathdrive-console/internal/entity"
	"github.com/pradeepdcosta/pathdrive-console/internal/service"
	"github.com/pradeepdcosta/pathdrive-console/pkg/kafka/dlq"
	"github.com/pradeepdcosta/pathdrive-console/pkg/logger"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	_defaultPollInterval      = 10 * time.Second
	_defualtDLQProcessTimeout = 30 * time.Second
	_defaultDLQHandleTimeout  = 2 * time.Second
)

// DLQProcessor re-drives dead-lettered payment events with bounded retries.
// Events whose payment status already matches the order are dropped, so a
// settlement is never applied twice.
type DLQProcessor struct {
	dlqReader  *kafka.Reader
	dlq        *dlq.DLQ
	svc        *service.OrderService
	maxRetries int
	log        logger.Logger
}

func NewDLQProcessor(
	reader *kafka.Reader,
	dlq *dlq.DLQ,
	svc *service.OrderService,
	maxRetries int,
	log logger.Logger,
) *DLQProcessor {
	return &DLQProcessor{
		dlqReader:  reader,
		dlq:        dlq,
		svc:        svc,
		maxRetries: maxRetries,
		log:        log,
	}
}

func (p *DLQProcessor) Start(ctx context.Context) error {
	ticker := time.NewTicker(_defaultPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Infow("dlq processor shutting down")
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("transport.kafka.dlq_processor.Start: %w", err)
			}
			return nil
		case <-ticker.C:
			p.processBatch(ctx)
		}
	}
}

func (p *DLQProcessor) processBatch(ctx context.Context) {
	processCtx, cancel := context.WithTimeout(ctx, _defualtDLQProcessTimeout)
	defer cancel()

	msg, err := p.dlqReader.ReadMessage(processCtx)
	if err != nil {
		if errors.Is(processCtx.Err(), context.Canceled) {
			return
		}
		p.log.Errorw("read dlq message", "error", err)
		return
	}

	var dlqMsg struct {
		Metadata struct {
			RetryCount int `json:"retry_count"`
		} `json:"metadata"`
		Payload string `json:"payload"`
	}

	if err = json.Unmarshal(msg.Value, &dlqMsg); err != nil {
		p.log.Errorw("unmarshal dlq message",
			"error", err,
			"offset", msg.Offset,
		)
		return
	}

	if dlqMsg.Metadata.RetryCount >= p.maxRetries {
		p.log.Infow("skipping dlq message after max retries",
			"offset", msg.Offset,
			"retry_count", dlqMsg.Metadata.RetryCount,
		)
		return
	}

	var event PaymentEvent
	if err = json.Unmarshal([]byte(dlqMsg.Payload), &event); err != nil {
		p.log.Errorw("unmarshal dlq payload",
			"error", err,
			"offset", msg.Offset,
		)
		return
	}
	if event.OrderID == uuid.Nil || event.UserID == uuid.Nil {
		p.log.Errorw("dlq payload missing identifiers", "offset", msg.Offset)
		return
	}

	caller := entity.Caller{UserID: event.UserID, Role: entity.RoleUser}

	order, err := p.svc.GetOrder(processCtx, event.OrderID, caller)
	if err == nil && order.PaymentStatus == entity.PaymentStatus(event.PaymentStatus) {
		p.log.Infow("payment event already applied, skipping",
			"order_id", event.OrderID.String(),
			"offset", msg.Offset)
		return
	}

	handleCtx, handleCancel := context.WithTimeout(processCtx, _defaultDLQHandleTimeout)
	defer handleCancel()

	_, err = p.svc.UpdatePaymentStatus(
		handleCtx, caller, event.OrderID,
		entity.PaymentStatus(event.PaymentStatus), event.PaymentRef,
	)
	if err != nil {
		p.log.Errorw("retry dlq message",
			"error", err,
			"offset", msg.Offset,
			"retry_count", dlqMsg.Metadata.RetryCount,
		)

		var dlqSendErr error
		for i := range 3 {
			dlqSendErr = p.dlq.Send(handleCtx, kafka.Message{
				Topic:     msg.Topic,
				Partition: msg.Partition,
				Offset:    msg.Offset,
				Key:       msg.Key,
				Value:     []byte(dlqMsg.Payload),
			}, err, dlqMsg.Metadata.RetryCount+1)

			if dlqSendErr == nil {
				break
			}

			p.log.Warnw("failed to send to DLQ, retrying",
				"retry", i+1,
				"error", dlqSendErr)

			time.Sleep(100 * time.Millisecond * time.Duration(i+1))
		}

		if dlqSendErr != nil {
			p.log.Errorw("failed to send to DLQ after retries",
				"offset", msg.Offset,
				"retry_count", dlqMsg.Metadata.RetryCount+1,
				"error", dlqSendErr,
			)
		}
	} else {
		p.log.Infow("dlq message processed successfully",
			"offset", msg.Offset,
			"order_id", event.OrderID.String(),
		)
	}
}
