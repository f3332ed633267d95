// Package notifier publishes order lifecycle events to Kafka. Delivery is
// fire-and-forget: a failed publish is logged and swallowed so the order
// transition that triggered it is never affected.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"bookmarket/internal/core/ports"
)

// KafkaNotifier writes order events to a single topic, keyed by order id so
// consumers see each order's events in commit order.
type KafkaNotifier struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaNotifier(brokers []string, topic string, logger *slog.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
		logger: logger,
	}
}

// NotifyOrderChanged publishes the event. Failures are logged, never returned.
func (n *KafkaNotifier) NotifyOrderChanged(ctx context.Context, event ports.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		n.logger.ErrorContext(ctx, "marshal order event",
			slog.Int64("order_id", event.OrderID),
			slog.String("operation", event.Operation),
			slog.String("error", err.Error()),
		)
		return nil
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: data,
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		n.logger.ErrorContext(ctx, "publish order event",
			slog.Int64("order_id", event.OrderID),
			slog.String("operation", event.Operation),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

// Close flushes buffered messages and releases the writer's connections.
func (n *KafkaNotifier) Close() error {
	if err := n.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer: %w", err)
	}
	return nil
}
