package service

import (
	"context"
	"fmt"
	"time"

	"bistro-boss/boss-svc/internal/domain"
)

type PaymentStatsRepository interface {
	DailyOutcomes(ctx context.Context, day time.Time) (map[string]int64, error)
}

type DailyPaymentStats struct {
	Date   string           `json:"date"`
	Counts map[string]int64 `json:"counts"`
}

type StatsServiceInterface interface {
	Daily(ctx context.Context, date string) (*DailyPaymentStats, error)
}

type StatsService struct {
	repo PaymentStatsRepository
	Now  func() time.Time
}

func NewStatsService(repo PaymentStatsRepository) *StatsService {
	return &StatsService{repo: repo, Now: time.Now}
}

// Daily reports payment outcomes for date (YYYY-MM-DD, UTC); empty means today.
func (s *StatsService) Daily(ctx context.Context, date string) (*DailyPaymentStats, error) {
	day := s.Now().UTC()
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
		}
		day = parsed
	}

	counts, err := s.repo.DailyOutcomes(ctx, day)
	if err != nil {
		return nil, err
	}
	return &DailyPaymentStats{Date: day.Format("2006-01-02"), Counts: counts}, nil
}

var _ StatsServiceInterface = (*StatsService)(nil)
