package service

import (
	"context"
	"time"

	"smartrentals-backend/internal/domain"
)

type AvailabilityService interface {
	IsAvailable(ctx context.Context, unitID int32, w domain.TimeWindow) (bool, error)
	ListAvailableUnits(ctx context.Context, productID int32, w domain.TimeWindow) ([]domain.RentableUnit, error)
}

// QuoteResult is the priced summary of a reservation batch.
type QuoteResult struct {
	Subtotal float64 `json:"subtotal"`
	Total    float64 `json:"total"`
	Hours    float64 `json:"hours"`
}

type PricingService interface {
	// Quote prices a reservation batch without touching any state.
	Quote(ctx context.Context, reqs []domain.ReservationRequest) (*QuoteResult, error)
}

// BookingRequest is a batch of requested reservations for one customer.
// ScheduledDeliveryTime only applies to delivery orders; the handover is
// flagged late when it happens after this time.
type BookingRequest struct {
	Customer              domain.CustomerRef          `json:"customer"`
	DeliveryMethod        domain.DeliveryMethod       `json:"delivery_method"`
	ScheduledDeliveryTime *time.Time                  `json:"scheduled_delivery_time,omitempty"`
	Reservations          []domain.ReservationRequest `json:"reservations"`
}

type BookingService interface {
	// CreateBooking validates the whole batch and, only if every request
	// passes, commits the order with its reservations as one atomic unit.
	CreateBooking(ctx context.Context, req BookingRequest) (*domain.Order, error)
}

type RecordPaymentRequest struct {
	Method    string  `json:"method"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
}

type LifecycleService interface {
	RecordPayment(ctx context.Context, orderID int32, req RecordPaymentRequest) (*domain.Order, error)
	MarkPickedUp(ctx context.Context, orderID int32) (*domain.Order, error)
	MarkReturned(ctx context.Context, orderID int32) (*domain.Order, error)
	Cancel(ctx context.Context, orderID int32, reason string) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID int32) (*domain.OrderDetail, error)
	ListLateRentals(ctx context.Context, customerPhone string) ([]domain.LateRental, error)
	DeleteOrder(ctx context.Context, orderID int32) error
	PurgeOrders(ctx context.Context) error
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, toEmail, customerName, equipmentName string, hoursOverdue float64, expectedReturn time.Time) error
}
