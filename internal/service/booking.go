package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"smartrentals-backend/internal/domain"
	"smartrentals-backend/internal/logger"
	"smartrentals-backend/internal/repository"
)

type bookingService struct {
	store repository.Store
}

func NewBookingService(store repository.Store) BookingService {
	return &bookingService{store: store}
}

// CreateBooking validates the batch in order (window sanity, unit and rate
// card resolution, duration constraints, availability) and commits the
// order, its reservations and its tracking record in one transaction.
//
// Unit rows are locked in ascending unit-id order before the overlap
// checks, so two concurrent bookings of overlapping windows on the same
// unit serialize on the row lock and the loser sees the winner's
// reservation. The reservations_no_overlap exclusion constraint backstops
// the same invariant at the storage level.
func (s *bookingService) CreateBooking(ctx context.Context, req BookingRequest) (*domain.Order, error) {
	if len(req.Reservations) == 0 {
		return nil, fmt.Errorf("empty reservation batch: %w", domain.ErrInvalidWindow)
	}
	for i, rr := range req.Reservations {
		if err := rr.Window.Validate(); err != nil {
			return nil, fmt.Errorf("reservation %d: %w", i, err)
		}
	}
	deliveryMethod := req.DeliveryMethod
	if deliveryMethod == "" {
		deliveryMethod = domain.DeliveryMethodPickup
	}

	lockOrder := make([]int, len(req.Reservations))
	for i := range lockOrder {
		lockOrder[i] = i
	}
	sort.Slice(lockOrder, func(a, b int) bool {
		return req.Reservations[lockOrder[a]].UnitID < req.Reservations[lockOrder[b]].UnitID
	})

	var order *domain.Order
	err := s.store.ExecTx(ctx, func(r repository.Repositories) error {
		units := make([]*domain.RentableUnit, len(req.Reservations))
		products := make([]*domain.Product, len(req.Reservations))
		for _, i := range lockOrder {
			rr := req.Reservations[i]
			unit, err := r.Units.GetByIDForUpdate(ctx, rr.UnitID)
			if err != nil {
				return fmt.Errorf("reservation %d: %w", i, err)
			}
			product, err := r.Products.GetByID(ctx, unit.ProductID)
			if err != nil {
				return fmt.Errorf("reservation %d: %w", i, err)
			}
			units[i] = unit
			products[i] = product
		}

		for i, rr := range req.Reservations {
			if err := ValidateDuration(products[i].RateCard, rr.Window); err != nil {
				return fmt.Errorf("reservation %d (unit %d): %w", i, rr.UnitID, err)
			}
		}

		for i, rr := range req.Reservations {
			if !units[i].Active {
				return fmt.Errorf("reservation %d: unit %d is inactive: %w", i, rr.UnitID, domain.ErrConflict)
			}
			overlap, err := r.Reservations.HasOverlap(ctx, rr.UnitID, rr.Window)
			if err != nil {
				return err
			}
			if overlap {
				return fmt.Errorf("reservation %d: unit %d: %w", i, rr.UnitID, domain.ErrConflict)
			}
		}

		customer, err := findOrCreateCustomer(ctx, r.Customers, req.Customer)
		if err != nil {
			return err
		}

		var subtotal, totalHours float64
		for i, rr := range req.Reservations {
			subtotal += QuoteAmount(products[i].RateCard, rr.Window)
			totalHours += float64(rr.Window.Hours())
		}
		subtotal = round2(subtotal)

		order = &domain.Order{
			CustomerID: customer.ID,
			Status:     domain.OrderStatusPending,
			Subtotal:   subtotal,
			Total:      subtotal,
			CreatedAt:  time.Now().UTC(),
		}
		if err := r.Orders.Create(ctx, order); err != nil {
			return err
		}
		for _, rr := range req.Reservations {
			res := &domain.Reservation{OrderID: order.ID, UnitID: rr.UnitID, Window: rr.Window}
			if err := r.Reservations.Create(ctx, res); err != nil {
				return err
			}
		}

		start := req.Reservations[0].Window.Start
		end := req.Reservations[0].Window.End
		for _, rr := range req.Reservations[1:] {
			if rr.Window.Start.Before(start) {
				start = rr.Window.Start
			}
			if rr.Window.End.After(end) {
				end = rr.Window.End
			}
		}
		meta := &domain.RentalMeta{
			OrderID:               order.ID,
			EquipmentName:         equipmentName(products),
			DeliveryMethod:        deliveryMethod,
			TotalPrice:            subtotal,
			TotalHours:            totalHours,
			StartDate:             &start,
			EndDate:               &end,
			ScheduledDeliveryTime: req.ScheduledDeliveryTime,
		}
		return r.RentalMeta.Create(ctx, meta)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("booking committed",
		"order_id", order.ID, "reservations", len(req.Reservations), "total", order.Total)
	return order, nil
}

func equipmentName(products []*domain.Product) string {
	names := make([]string, 0, len(products))
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if !seen[p.Name] {
			seen[p.Name] = true
			names = append(names, p.Name)
		}
	}
	return strings.Join(names, ", ")
}

// findOrCreateCustomer resolves the booking customer by phone, creating a
// minimal record for walk-ins.
func findOrCreateCustomer(ctx context.Context, customers repository.CustomerRepository, ref domain.CustomerRef) (*domain.Customer, error) {
	phone := ref.Phone
	if phone == "" {
		phone = "unknown"
	}
	c, err := customers.GetByPhone(ctx, phone)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	name := ref.Name
	if name == "" {
		name = "Walk-in Customer"
	}
	email := ref.Email
	if email == "" {
		email = fmt.Sprintf("guest_%s@example.com", phone)
	}
	c = &domain.Customer{Name: name, Email: email, Phone: phone}
	if err := customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
