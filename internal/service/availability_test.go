package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"smartrentals-backend/internal/domain"
)

func TestAvailabilityService_IsAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("FreeUnit", func(t *testing.T) {
		m := newMockRepos()
		svc := NewAvailabilityService(m.units, m.reservations)

		w := window(t, "2026-06-01T09:00:00Z", "2026-06-01T12:00:00Z")
		m.units.On("GetByID", ctx, int32(1)).Return(&domain.RentableUnit{ID: 1, Active: true}, nil)
		m.reservations.On("HasOverlap", ctx, int32(1), w).Return(false, nil)

		available, err := svc.IsAvailable(ctx, 1, w)
		assert.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("OverlappingReservation", func(t *testing.T) {
		m := newMockRepos()
		svc := NewAvailabilityService(m.units, m.reservations)

		w := window(t, "2026-06-01T09:00:00Z", "2026-06-01T12:00:00Z")
		m.units.On("GetByID", ctx, int32(1)).Return(&domain.RentableUnit{ID: 1, Active: true}, nil)
		m.reservations.On("HasOverlap", ctx, int32(1), w).Return(true, nil)

		available, err := svc.IsAvailable(ctx, 1, w)
		assert.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("InactiveUnit", func(t *testing.T) {
		m := newMockRepos()
		svc := NewAvailabilityService(m.units, m.reservations)

		w := window(t, "2026-06-01T09:00:00Z", "2026-06-01T12:00:00Z")
		m.units.On("GetByID", ctx, int32(1)).Return(&domain.RentableUnit{ID: 1, Active: false}, nil)

		available, err := svc.IsAvailable(ctx, 1, w)
		assert.NoError(t, err)
		assert.False(t, available)
		m.reservations.AssertNotCalled(t, "HasOverlap")
	})

	t.Run("UnknownUnit", func(t *testing.T) {
		m := newMockRepos()
		svc := NewAvailabilityService(m.units, m.reservations)

		w := window(t, "2026-06-01T09:00:00Z", "2026-06-01T12:00:00Z")
		m.units.On("GetByID", ctx, int32(7)).Return(nil, domain.ErrNotFound)

		_, err := svc.IsAvailable(ctx, 7, w)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("InvalidWindow", func(t *testing.T) {
		m := newMockRepos()
		svc := NewAvailabilityService(m.units, m.reservations)

		w := window(t, "2026-06-01T12:00:00Z", "2026-06-01T09:00:00Z")
		_, err := svc.IsAvailable(ctx, 1, w)
		assert.True(t, errors.Is(err, domain.ErrInvalidWindow))
		m.units.AssertNotCalled(t, "GetByID")
	})
}

func TestAvailabilityService_ListAvailableUnits(t *testing.T) {
	ctx := context.Background()

	t.Run("FiltersBookedUnits", func(t *testing.T) {
		m := newMockRepos()
		svc := NewAvailabilityService(m.units, m.reservations)

		w := window(t, "2026-06-01T09:00:00Z", "2026-06-01T12:00:00Z")
		units := []domain.RentableUnit{
			{ID: 1, ProductID: 10, Active: true},
			{ID: 2, ProductID: 10, Active: true},
			{ID: 3, ProductID: 10, Active: true},
		}
		m.units.On("ListActiveByProduct", ctx, int32(10)).Return(units, nil)
		m.reservations.On("HasOverlap", ctx, int32(1), w).Return(false, nil)
		m.reservations.On("HasOverlap", ctx, int32(2), w).Return(true, nil)
		m.reservations.On("HasOverlap", ctx, int32(3), w).Return(false, nil)

		available, err := svc.ListAvailableUnits(ctx, 10, w)
		assert.NoError(t, err)
		assert.Len(t, available, 2)
		assert.Equal(t, int32(1), available[0].ID)
		assert.Equal(t, int32(3), available[1].ID)
	})

	t.Run("NoUnits", func(t *testing.T) {
		m := newMockRepos()
		svc := NewAvailabilityService(m.units, m.reservations)

		w := window(t, "2026-06-01T09:00:00Z", "2026-06-01T12:00:00Z")
		m.units.On("ListActiveByProduct", ctx, int32(10)).Return([]domain.RentableUnit{}, nil)

		available, err := svc.ListAvailableUnits(ctx, 10, w)
		assert.NoError(t, err)
		assert.Empty(t, available)
	})
}
