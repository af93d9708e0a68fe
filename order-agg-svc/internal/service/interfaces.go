package service

import (
	"context"
	"time"

	"bistro-boss/order-agg-svc/internal/domain"
	"bistro-boss/order-agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	ApplyPaymentStatus(ctx context.Context, intentID string, orderID int, status string) (int64, error)
	Seen(ctx context.Context, eventID string) (bool, error)
	MarkSeen(ctx context.Context, eventID string) error
	RecordOutcome(ctx context.Context, status string, at time.Time) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event domain.PaymentEvent) error
}

var _ StoreInterface = (*storage.Store)(nil)
var _ MessageReader = (*kafka.Reader)(nil)
var _ ConsumerInterface = (*Consumer)(nil)
