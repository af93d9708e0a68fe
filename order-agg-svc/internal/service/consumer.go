package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"bistro-boss/order-agg-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

const (
	defaultRetryBackoff = 500 * time.Millisecond
	maxRetryBackoff     = 30 * time.Second
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	// RetryBackoff is the first wait after a failed event; it doubles up to maxRetryBackoff.
	RetryBackoff time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader:       reader,
		Store:        store,
		RetryBackoff: defaultRetryBackoff,
	}
}

// Start consumes payment events until ctx is cancelled. An offset is
// committed only once its event has been applied, or when the message
// cannot be decoded at all.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("[order-agg-svc] consuming payment events")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[order-agg-svc] consumer stopped")
				return
			}
			log.Printf("[order-agg-svc] read message: %v", err)
			continue
		}

		if err := c.handle(ctx, message); err != nil {
			log.Printf("[order-agg-svc] consumer stopped before offset %d was applied", message.Offset)
			return
		}

		if err := c.Reader.CommitMessages(ctx, message); err != nil {
			log.Printf("[order-agg-svc] commit offset %d: %v", message.Offset, err)
		}
	}
}

// handle retries ProcessEvent until it succeeds. It only returns an error
// when ctx is cancelled first.
func (c *Consumer) handle(ctx context.Context, message kafka.Message) error {
	var event domain.PaymentEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		log.Printf("[order-agg-svc] dropping undecodable message at offset %d: %v", message.Offset, err)
		return nil
	}

	backoff := c.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}
	for {
		err := c.ProcessEvent(ctx, event)
		if err == nil {
			return nil
		}
		log.Printf("[order-agg-svc] process event %s: %v (retry in %s)", event.DedupeKey(), err, backoff)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxRetryBackoff)
	}
}

// ProcessEvent applies one payment outcome to its order at most once.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.PaymentEvent) error {
	status, ok := event.TargetStatus()
	if !ok {
		return nil
	}

	key := event.DedupeKey()
	seen, err := c.Store.Seen(ctx, key)
	if err != nil {
		return fmt.Errorf("check marker: %w", err)
	}
	if seen {
		log.Printf("[order-agg-svc] event %s already applied", key)
		return nil
	}

	changed, err := c.Store.ApplyPaymentStatus(ctx, event.PaymentIntentID, event.OrderID, status)
	if err != nil {
		return fmt.Errorf("apply %s to intent %s: %w", status, event.PaymentIntentID, err)
	}
	if changed == 0 {
		log.Printf("[order-agg-svc] no pending order for intent %s", event.PaymentIntentID)
	} else {
		log.Printf("[order-agg-svc] intent %s -> %s", event.PaymentIntentID, status)
		at := event.Timestamp
		if at.IsZero() {
			at = time.Now()
		}
		if err := c.Store.RecordOutcome(ctx, status, at); err != nil {
			log.Printf("[order-agg-svc] record outcome: %v", err)
		}
	}

	return c.Store.MarkSeen(ctx, key)
}
