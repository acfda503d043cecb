// Package kafkaqueue publishes checked-out orders to the fulfillment queue
// topic. The checkout handler calls it after its transaction commits and
// treats failures as log-only.
package kafkaqueue

import (
	"context"
	"encoding/json"
	"time"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

// orderQueuedEvent is the wire payload for one checked-out order.
type orderQueuedEvent struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	QueuedAt   time.Time `json:"queued_at"`
}

// Notifier implements ports.QueueNotifier over a Kafka topic.
// Messages are keyed by order ID so retries for the same order land on the
// same partition.
type Notifier struct {
	writer *kafka.Writer
}

// NewNotifier creates a notifier publishing to the given topic.
func NewNotifier(brokers []string, topic string) *Notifier {
	return &Notifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Enqueue publishes one checked-out order to the queue topic.
func (n *Notifier) Enqueue(ctx context.Context, orderID kernel.UUID, customerID kernel.UUID) error {
	payload, err := json.Marshal(orderQueuedEvent{
		OrderID:    orderID.String(),
		CustomerID: customerID.String(),
		QueuedAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(orderID.String()),
		Value: payload,
		Time:  time.Now().UTC(),
	})
}

// Close releases the underlying writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}
