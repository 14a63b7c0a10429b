//nolint:mnd
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// paymentEvent mirrors the payload the payment consumer expects. The
// simulator stands in for the provider relay during development: point it at
// an order and user created through the API to drive a real settlement.
type paymentEvent struct {
	OrderID       uuid.UUID `json:"order_id"`
	UserID        uuid.UUID `json:"user_id"`
	PaymentStatus string    `json:"payment_status"`
	PaymentRef    string    `json:"payment_ref"`
}

func main() {
	kafkaBrokers := flag.String(
		"brokers",
		"kafka:29092",
		"Kafka bootstrap brokers to connect to, as a comma separated list",
	)
	kafkaTopic := flag.String("topic", "payment-events-dev", "Kafka topic to write messages to")
	numMessages := flag.Int("count", 1, "Number of events to send")
	interval := flag.Duration("interval", 1*time.Second, "Interval between events")
	orderID := flag.String("order", "", "Order ID to settle (random if empty)")
	userID := flag.String("user", "", "Owning user ID (random if empty)")
	status := flag.String("status", "COMPLETED", "Payment status to publish")

	flag.Parse()

	writer := &kafka.Writer{
		Addr:     kafka.TCP(*kafkaBrokers),
		Topic:    *kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer writer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Printf(
		"Starting payment simulator. Will send %d events to topic '%s' at broker(s) '%s' every %v\n",
		*numMessages,
		*kafkaTopic,
		*kafkaBrokers,
		*interval,
	)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	eventsSent := 0

	sendEvent(ctx, writer, *orderID, *userID, *status)

	eventsSent++
	if eventsSent >= *numMessages {
		log.Printf("Sent all %d events. Exiting.\n", *numMessages)
		return
	}

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down simulator...")
			return
		case <-ticker.C:
			sendEvent(ctx, writer, *orderID, *userID, *status)
			eventsSent++
			if eventsSent >= *numMessages {
				log.Printf("Sent all %d events. Exiting.\n", *numMessages)
				return
			}
		}
	}
}

func sendEvent(ctx context.Context, writer *kafka.Writer, orderID, userID, status string) {
	event := generateEvent(orderID, userID, status)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal event: %v", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: eventBytes,
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = writer.WriteMessages(writeCtx, msg)
	if err != nil {
		log.Printf("Failed to write event to Kafka: %v", err)
		return
	}

	log.Printf("Sent %s event for order %s", event.PaymentStatus, event.OrderID.String())
}

func generateEvent(orderID, userID, status string) paymentEvent {
	event := paymentEvent{
		OrderID:       uuid.New(),
		UserID:        uuid.New(),
		PaymentStatus: status,
		PaymentRef:    "sim-" + gofakeit.UUID(),
	}

	if orderID != "" {
		if parsed, err := uuid.Parse(orderID); err == nil {
			event.OrderID = parsed
		}
	}
	if userID != "" {
		if parsed, err := uuid.Parse(userID); err == nil {
			event.UserID = parsed
		}
	}

	return event
}
