package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"
)

const markerTTL = 7 * 24 * time.Hour

type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

// ApplyPaymentStatus moves the Pending order behind the intent to status.
// Orders that already left Pending are not touched, so the returned row
// count is zero for them.
func (s *Store) ApplyPaymentStatus(ctx context.Context, intentID string, orderID int, status string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = now()
		WHERE status = 'Pending' AND (payment_intent_id = $2 OR id = $3)
	`, status, intentID, orderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *Store) eventKey(eventID string) string {
	return "payment-event:" + eventID
}

func (s *Store) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, s.eventKey(eventID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) MarkSeen(ctx context.Context, eventID string) error {
	return s.rdb.Set(ctx, s.eventKey(eventID), "1", markerTTL).Err()
}

// RecordOutcome counts payment outcomes per day for the dashboard.
func (s *Store) RecordOutcome(ctx context.Context, status string, at time.Time) error {
	key := "payments:daily:" + at.UTC().Format("2006-01-02")
	if err := s.rdb.HIncrBy(ctx, key, status, 1).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, markerTTL).Err()
}
