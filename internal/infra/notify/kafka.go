package notify

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventPublisher writes order events to a Kafka topic keyed by order id, so
// events of one order stay on one partition.
type EventPublisher struct {
	w messageWriter
}

func NewEventPublisher(brokers []string, topic string) *EventPublisher {
	return &EventPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func newEventPublisherWithWriter(w messageWriter) *EventPublisher {
	return &EventPublisher{w: w}
}

func (p *EventPublisher) Publish(ctx context.Context, key, value []byte, headers map[string]string) error {
	msg := kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	}
	for k, v := range headers {
		msg.Headers = append(msg.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	return p.w.WriteMessages(ctx, msg)
}

func (p *EventPublisher) Close() error {
	return p.w.Close()
}
