package storage

import (
	"context"
	"encoding/json"
	"testing"

	"bistro-boss/boss-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher_PublishPaymentEvent(t *testing.T) {
	writer := &recordingWriter{}
	publisher := NewKafkaPublisher(writer)

	event := domain.PaymentEvent{ID: "e1", Type: domain.EventPaymentSucceeded, PaymentIntentID: "pi_1", OrderID: 5}
	require.NoError(t, publisher.PublishPaymentEvent(context.Background(), event))

	require.Len(t, writer.messages, 1)
	assert.Equal(t, "pi_1", string(writer.messages[0].Key))

	var decoded domain.PaymentEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, event.Type, decoded.Type)
	assert.Equal(t, 5, decoded.OrderID)
}
