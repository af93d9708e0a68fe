package payment

import (
	"fmt"
	"math"

	"bistro-boss/boss-svc/internal/domain"
)

// MaxMinorUnits is the largest amount Stripe accepts for a single charge
// in two-decimal currencies (999,999.99).
const MaxMinorUnits = 99_999_999

// ToMinorUnits converts a major-unit price to minor units by multiplying by
// 100 and truncating. Binary float noise is rounded away first so that
// 19.99 yields 1999 rather than 1998.
func ToMinorUnits(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: price is not a number", domain.ErrValidation)
	}
	scaled := math.Trunc(math.Round(price*100*1e6) / 1e6)
	if math.Abs(scaled) > MaxMinorUnits {
		return 0, fmt.Errorf("%w: price %v exceeds the chargeable maximum", domain.ErrValidation, price)
	}
	return int64(scaled), nil
}
