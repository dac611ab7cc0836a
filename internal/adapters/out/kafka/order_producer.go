// Package kafka publishes order lifecycle events to a Kafka topic.
// Events are emitted after the owning transaction commits; delivery is
// best effort and failures are logged, never propagated to the caller.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"library/internal/core/domain/model/order"
	"library/internal/core/ports"

	"github.com/IBM/sarama"
)

// OrderStatusChangedEvent is the wire format of an order status change.
type OrderStatusChangedEvent struct {
	OrderID    string    `json:"order_id"`
	OwnerID    string    `json:"owner_id"`
	BookID     string    `json:"book_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderProducer implements ports.OrderEventPublisher on top of a sarama
// async producer. Messages are batched and flushed in the background;
// broker errors are drained into the logger.
type OrderProducer struct {
	producer sarama.AsyncProducer
	topic    string
	logger   *slog.Logger
}

var _ ports.OrderEventPublisher = (*OrderProducer)(nil)

// NewOrderProducer creates a producer publishing to the given topic.
func NewOrderProducer(brokers []string, topic string, logger *slog.Logger) (*OrderProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Flush.Frequency = 500 * time.Millisecond
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewAsyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	go func() {
		for produceErr := range producer.Errors() {
			logger.Error("failed to publish order event", "error", produceErr)
		}
	}()

	return &OrderProducer{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}, nil
}

// PublishOrderStatusChanged emits an event describing the order's new status.
// The send is asynchronous; a broker outage does not block or fail the caller.
func (p *OrderProducer) PublishOrderStatusChanged(_ context.Context, aggregate *order.Order) error {
	event := OrderStatusChangedEvent{
		OrderID:    aggregate.ID().String(),
		OwnerID:    aggregate.OwnerID().String(),
		BookID:     aggregate.BookID().String(),
		Status:     aggregate.Status().String(),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.producer.Input() <- &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	}

	return nil
}

// Close shuts the producer down, flushing buffered messages.
func (p *OrderProducer) Close() error {
	return p.producer.Close()
}
