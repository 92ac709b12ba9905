package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// ProductEvent is the message emitted on catalog mutations.
type ProductEvent struct {
	Type      string    `json:"type"`
	ProductID uuid.UUID `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Producer publishes catalog events to a single topic. All publishing
// is best-effort; the caller decides how loudly to complain.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Producer{
		writer: writer,
		topic:  topic,
	}
}

func (p *Producer) PublishProductEvent(ctx context.Context, eventType string, productID uuid.UUID) error {
	event := ProductEvent{
		Type:      eventType,
		ProductID: productID,
		Timestamp: time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(productID.String()),
		Value: data,
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Producer) Close() {
	_ = p.writer.Close()
}
