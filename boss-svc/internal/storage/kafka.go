package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"bistro-boss/boss-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishPaymentEvent keys messages by payment intent so every event of
// one intent lands on the same partition.
func (p *KafkaPublisher) PublishPaymentEvent(ctx context.Context, event domain.PaymentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode payment event: %w", err)
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.PaymentIntentID),
		Value: payload,
	})
}
