package service

import (
	"context"

	"smartrentals-backend/internal/domain"
	"smartrentals-backend/internal/repository"
)

type availabilityService struct {
	units        repository.UnitRepository
	reservations repository.ReservationRepository
}

func NewAvailabilityService(units repository.UnitRepository, reservations repository.ReservationRepository) AvailabilityService {
	return &availabilityService{units: units, reservations: reservations}
}

// IsAvailable reports whether the unit can be booked for the window: the
// unit must exist, be active, and carry no overlapping reservation. Read
// only; safe to call any number of times.
func (s *availabilityService) IsAvailable(ctx context.Context, unitID int32, w domain.TimeWindow) (bool, error) {
	if err := w.Validate(); err != nil {
		return false, err
	}
	unit, err := s.units.GetByID(ctx, unitID)
	if err != nil {
		return false, err
	}
	if !unit.Active {
		return false, nil
	}
	overlap, err := s.reservations.HasOverlap(ctx, unitID, w)
	if err != nil {
		return false, err
	}
	return !overlap, nil
}

// ListAvailableUnits returns the product's active units that are free for
// the window, in stable ascending unit-id order.
func (s *availabilityService) ListAvailableUnits(ctx context.Context, productID int32, w domain.TimeWindow) ([]domain.RentableUnit, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	units, err := s.units.ListActiveByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	available := make([]domain.RentableUnit, 0, len(units))
	for _, u := range units {
		overlap, err := s.reservations.HasOverlap(ctx, u.ID, w)
		if err != nil {
			return nil, err
		}
		if !overlap {
			available = append(available, u)
		}
	}
	return available, nil
}
