package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"smartrentals-backend/internal/domain"
	"smartrentals-backend/internal/logger"
	"smartrentals-backend/internal/repository"
)

type lifecycleService struct {
	store repository.Store
	now   func() time.Time
}

func NewLifecycleService(store repository.Store) LifecycleService {
	return &lifecycleService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// RecordPayment appends a payment and moves the order to the matching
// paid-awaiting state. A reference already on file means the payment was
// recorded before; the call is then a no-op, so retried webhooks cannot
// double-charge.
func (s *lifecycleService) RecordPayment(ctx context.Context, orderID int32, req RecordPaymentRequest) (*domain.Order, error) {
	var order *domain.Order
	err := s.store.ExecTx(ctx, func(r repository.Repositories) error {
		o, err := r.Orders.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		switch o.Status {
		case domain.OrderStatusRented, domain.OrderStatusReturned, domain.OrderStatusCancelled:
			return fmt.Errorf("cannot record payment on %s order %d: %w", o.Status, o.ID, domain.ErrInvalidTransition)
		}

		if req.Reference != "" {
			existing, err := r.Payments.ListByOrder(ctx, orderID)
			if err != nil {
				return err
			}
			for _, p := range existing {
				if p.Reference == req.Reference {
					order = o
					return nil
				}
			}
		}

		payment := &domain.Payment{
			OrderID:    o.ID,
			Method:     req.Method,
			Amount:     req.Amount,
			Reference:  req.Reference,
			ReceivedAt: s.now(),
		}
		if err := r.Payments.Create(ctx, payment); err != nil {
			return err
		}

		meta, err := r.RentalMeta.GetByOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if req.Method != "" {
			meta.PaymentMethod = req.Method
		}
		if req.Amount > 0 {
			meta.TotalPrice = req.Amount
		}
		if err := r.RentalMeta.Update(ctx, meta); err != nil {
			return err
		}

		if meta.DeliveryMethod == domain.DeliveryMethodDelivery {
			o.Status = domain.OrderStatusPaidAwaitingDelivery
		} else {
			o.Status = domain.OrderStatusPaidAwaitingPickup
		}
		if err := r.Orders.Update(ctx, o); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("payment recorded", "order_id", order.ID, "status", order.Status)
	return order, nil
}

// MarkPickedUp records the handover: the rental clock starts now. The
// expected return time is derived from the contracted hours, falling back
// to the contracted window end.
func (s *lifecycleService) MarkPickedUp(ctx context.Context, orderID int32) (*domain.Order, error) {
	var order *domain.Order
	err := s.store.ExecTx(ctx, func(r repository.Repositories) error {
		o, err := r.Orders.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status != domain.OrderStatusPaidAwaitingPickup && o.Status != domain.OrderStatusPaidAwaitingDelivery {
			return fmt.Errorf("cannot hand over %s order %d: %w", o.Status, o.ID, domain.ErrInvalidTransition)
		}
		meta, err := r.RentalMeta.GetByOrder(ctx, orderID)
		if err != nil {
			return err
		}

		now := s.now()
		if meta.PickupTime == nil {
			t := now
			meta.PickupTime = &t
		}
		if meta.ExpectedReturnTime == nil {
			switch {
			case meta.TotalHours > 0:
				t := meta.PickupTime.Add(time.Duration(meta.TotalHours * float64(time.Hour)))
				meta.ExpectedReturnTime = &t
			case meta.EndDate != nil:
				meta.ExpectedReturnTime = meta.EndDate
			}
		}
		if meta.ScheduledDeliveryTime != nil && now.After(*meta.ScheduledDeliveryTime) {
			meta.LateDelivery = true
		}
		if err := r.RentalMeta.Update(ctx, meta); err != nil {
			return err
		}

		o.Status = domain.OrderStatusRented
		if err := r.Orders.Update(ctx, o); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("rental handed over", "order_id", order.ID)
	return order, nil
}

// MarkReturned closes the rental. A late return flips the lateness flag,
// bills the overdue hours at the rate pinned at booking time, and appends
// the charge as a synthetic extra_billing payment.
func (s *lifecycleService) MarkReturned(ctx context.Context, orderID int32) (*domain.Order, error) {
	var order *domain.Order
	err := s.store.ExecTx(ctx, func(r repository.Repositories) error {
		o, err := r.Orders.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status != domain.OrderStatusRented {
			return fmt.Errorf("cannot return %s order %d: %w", o.Status, o.ID, domain.ErrInvalidTransition)
		}
		meta, err := r.RentalMeta.GetByOrder(ctx, orderID)
		if err != nil {
			return err
		}

		now := s.now()
		meta.ActualReturnTime = &now
		if meta.ExpectedReturnTime != nil && now.After(*meta.ExpectedReturnTime) {
			meta.LateReturn = true
			extraHours := now.Sub(*meta.ExpectedReturnTime).Hours()
			extraAmount := round2(extraHours * meta.EffectiveHourlyRate())
			meta.ExtraHours = round2(extraHours)
			meta.ExtraAmount = extraAmount

			charge := &domain.Payment{
				OrderID:    o.ID,
				Method:     domain.PaymentMethodExtraBilling,
				Amount:     extraAmount,
				Reference:  uuid.NewString(),
				ReceivedAt: now,
			}
			if err := r.Payments.Create(ctx, charge); err != nil {
				return err
			}
			o.Total = round2(o.Total + extraAmount)
		}
		if err := r.RentalMeta.Update(ctx, meta); err != nil {
			return err
		}

		o.Status = domain.OrderStatusReturned
		if err := r.Orders.Update(ctx, o); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("rental returned", "order_id", order.ID, "late", order.Total > order.Subtotal)
	return order, nil
}

// Cancel aborts an order that has not gone out yet. Its reservations are
// deleted so the units free up immediately; the order row stays behind for
// the books until an explicit administrative reset.
func (s *lifecycleService) Cancel(ctx context.Context, orderID int32, reason string) (*domain.Order, error) {
	var order *domain.Order
	err := s.store.ExecTx(ctx, func(r repository.Repositories) error {
		o, err := r.Orders.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		switch o.Status {
		case domain.OrderStatusRented, domain.OrderStatusReturned, domain.OrderStatusCancelled:
			return fmt.Errorf("cannot cancel %s order %d: %w", o.Status, o.ID, domain.ErrInvalidTransition)
		}
		if err := r.Reservations.DeleteByOrder(ctx, orderID); err != nil {
			return err
		}
		o.Status = domain.OrderStatusCancelled
		if err := r.Orders.Update(ctx, o); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("order cancelled", "order_id", order.ID, "reason", reason)
	return order, nil
}

func (s *lifecycleService) GetOrder(ctx context.Context, orderID int32) (*domain.OrderDetail, error) {
	r := s.store.Repos()
	o, err := r.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	reservations, err := r.Reservations.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	payments, err := r.Payments.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	meta, err := r.RentalMeta.GetByOrder(ctx, orderID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return &domain.OrderDetail{
		Order:        *o,
		Reservations: reservations,
		Payments:     payments,
		Meta:         meta,
	}, nil
}

// ListLateRentals is the live-dashboard read: rented orders past their
// expected return with overdue hours derived at read time. It never
// mutates anything; billing happens only in MarkReturned.
func (s *lifecycleService) ListLateRentals(ctx context.Context, customerPhone string) ([]domain.LateRental, error) {
	now := s.now()
	late, err := s.store.Repos().RentalMeta.ListOverdue(ctx, now, customerPhone)
	if err != nil {
		return nil, err
	}
	for i := range late {
		late[i].HoursOverdue = round2(now.Sub(late[i].ExpectedReturnTime).Hours())
	}
	return late, nil
}

// DeleteOrder is the explicit administrative reset for one order: tracking
// record, payments and reservations go with it. Deleting a missing order is
// a no-op.
func (s *lifecycleService) DeleteOrder(ctx context.Context, orderID int32) error {
	return s.store.ExecTx(ctx, func(r repository.Repositories) error {
		if _, err := r.Orders.GetByID(ctx, orderID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			return err
		}
		if err := r.RentalMeta.DeleteByOrder(ctx, orderID); err != nil {
			return err
		}
		if err := r.Payments.DeleteByOrder(ctx, orderID); err != nil {
			return err
		}
		if err := r.Reservations.DeleteByOrder(ctx, orderID); err != nil {
			return err
		}
		return r.Orders.Delete(ctx, orderID)
	})
}

// PurgeOrders wipes every order and its dependents, in dependency order.
func (s *lifecycleService) PurgeOrders(ctx context.Context) error {
	return s.store.ExecTx(ctx, func(r repository.Repositories) error {
		if err := r.RentalMeta.DeleteAll(ctx); err != nil {
			return err
		}
		if err := r.Payments.DeleteAll(ctx); err != nil {
			return err
		}
		if err := r.Reservations.DeleteAll(ctx); err != nil {
			return err
		}
		return r.Orders.DeleteAll(ctx)
	})
}
