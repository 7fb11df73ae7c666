// Package kafka publishes payment events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/fundmate/fundmate/payment/model"
	"github.com/fundmate/fundmate/payment/notify"
)

const DefaultTopic = "payment_events"

const writeTimeout = 5 * time.Second

// Publisher forwards payment events to Kafka. Like every sink it is
// best-effort: write failures are logged and never surfaced to the engine.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Publisher) Emit(event model.PaymentEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("marshal payment event", "request_id", event.RequestID, "error", err)
		return
	}

	// The broker write happens off the caller's goroutine so Emit never
	// blocks the lifecycle that produced the event.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		err := p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(event.RequestID.String()),
			Value: data,
		})
		if err != nil {
			slog.Error("publish payment event", "request_id", event.RequestID, "error", err)
		}
	}()
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

var _ notify.Sink = (*Publisher)(nil)
