package producer

import (
	"context"

	"go-storefront-api/internal/events"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes events to a Kafka topic, keyed by session so one
// session's events stay ordered within a partition.
type Publisher struct {
	writer MessageWriter
}

func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// NewWriter builds the topic writer used in production.
func NewWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func (p *Publisher) Publish(ctx context.Context, e events.Event) error {
	return p.writer.WriteMessages(ctx, toMessage(e))
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toMessage(e events.Event) kafka.Message {
	return kafka.Message{
		Key:   []byte(e.SessionID),
		Value: e.Payload,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(e.ID.String())},
			{Key: "event_type", Value: []byte(e.Type)},
			{Key: "aggregate_type", Value: []byte(e.AggregateType)},
		},
	}
}
