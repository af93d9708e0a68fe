package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// PaymentStats reads the per-day payment outcome counters that
// order-agg-svc maintains.
type PaymentStats struct {
	Client *redis.Client
}

func NewPaymentStats(client *redis.Client) *PaymentStats {
	return &PaymentStats{Client: client}
}

func (s *PaymentStats) DailyOutcomes(ctx context.Context, day time.Time) (map[string]int64, error) {
	raw, err := s.Client.HGetAll(ctx, "payments:daily:"+day.UTC().Format("2006-01-02")).Result()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(raw))
	for status, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		counts[status] = n
	}
	return counts, nil
}
