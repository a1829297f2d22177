package service

import (
	"context"
	"fmt"
	"math"

	"smartrentals-backend/internal/domain"
	"smartrentals-backend/internal/repository"
)

// round2 rounds to two decimal places. Batch quotes round the final sum
// rather than each line, so repeated sub-cent amounts cannot drift.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// QuoteAmount prices one window against a rate card. Hourly pricing wins
// whenever an hourly rate is set, otherwise the window is billed in days.
func QuoteAmount(rc domain.RateCard, w domain.TimeWindow) float64 {
	if rc.HourlyRate > 0 {
		return rc.HourlyRate * float64(w.Hours())
	}
	return rc.DailyRate * float64(w.Days())
}

// ValidateDuration checks a window against the rate card's min/max hour
// constraints. Violations are reported, never clamped.
func ValidateDuration(rc domain.RateCard, w domain.TimeWindow) error {
	if err := w.Validate(); err != nil {
		return err
	}
	hours := w.Hours()
	if hours < rc.MinHours {
		return fmt.Errorf("%d hours below minimum of %d: %w", hours, rc.MinHours, domain.ErrDurationOutOfRange)
	}
	if rc.MaxHours != nil && hours > *rc.MaxHours {
		return fmt.Errorf("%d hours above maximum of %d: %w", hours, *rc.MaxHours, domain.ErrDurationOutOfRange)
	}
	return nil
}

type pricingService struct {
	units    repository.UnitRepository
	products repository.ProductRepository
}

func NewPricingService(units repository.UnitRepository, products repository.ProductRepository) PricingService {
	return &pricingService{units: units, products: products}
}

func (s *pricingService) Quote(ctx context.Context, reqs []domain.ReservationRequest) (*QuoteResult, error) {
	var subtotal, hours float64
	for i, req := range reqs {
		if err := req.Window.Validate(); err != nil {
			return nil, fmt.Errorf("reservation %d: %w", i, err)
		}
		unit, err := s.units.GetByID(ctx, req.UnitID)
		if err != nil {
			return nil, fmt.Errorf("reservation %d: %w", i, err)
		}
		product, err := s.products.GetByID(ctx, unit.ProductID)
		if err != nil {
			return nil, fmt.Errorf("reservation %d: %w", i, err)
		}
		if err := ValidateDuration(product.RateCard, req.Window); err != nil {
			return nil, fmt.Errorf("reservation %d (unit %d): %w", i, req.UnitID, err)
		}
		subtotal += QuoteAmount(product.RateCard, req.Window)
		hours += float64(req.Window.Hours())
	}
	subtotal = round2(subtotal)
	return &QuoteResult{Subtotal: subtotal, Total: subtotal, Hours: hours}, nil
}
