package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending              OrderStatus = "pending"
	OrderStatusPaidAwaitingPickup   OrderStatus = "paid_awaiting_pickup"
	OrderStatusPaidAwaitingDelivery OrderStatus = "paid_awaiting_delivery"
	OrderStatusRented               OrderStatus = "rented"
	OrderStatusReturned             OrderStatus = "returned"
	OrderStatusCancelled            OrderStatus = "cancelled"
)

type DeliveryMethod string

const (
	DeliveryMethodPickup   DeliveryMethod = "pickup"
	DeliveryMethodDelivery DeliveryMethod = "delivery"
)

// PaymentMethodExtraBilling marks synthetic payments appended when a rental
// comes back late.
const PaymentMethodExtraBilling = "extra_billing"

// Order aggregates one or more reservations with a lifecycle status.
type Order struct {
	ID         int32       `json:"id"`
	CustomerID int32       `json:"customer_id"`
	Status     OrderStatus `json:"status"`
	Subtotal   float64     `json:"subtotal"`
	Total      float64     `json:"total"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Payment is an immutable, append-only record of a monetary transaction
// attached to an order.
type Payment struct {
	ID         int32     `json:"id"`
	OrderID    int32     `json:"order_id"`
	Method     string    `json:"method"`
	Amount     float64   `json:"amount"`
	Reference  string    `json:"reference"`
	ReceivedAt time.Time `json:"received_at"`
}

// RentalMeta is the per-order tracking record layered onto an order without
// touching its core columns. The schema is fixed; there is no dynamic field
// probing.
type RentalMeta struct {
	OrderID               int32          `json:"order_id"`
	EquipmentName         string         `json:"equipment_name"`
	DeliveryMethod        DeliveryMethod `json:"delivery_method"`
	PaymentMethod         string         `json:"payment_method"`
	TotalPrice            float64        `json:"total_price"`
	TotalHours            float64        `json:"total_hours"`
	StartDate             *time.Time     `json:"start_date,omitempty"`
	EndDate               *time.Time     `json:"end_date,omitempty"`
	ScheduledDeliveryTime *time.Time     `json:"scheduled_delivery_time,omitempty"`
	PickupTime            *time.Time     `json:"pickup_time,omitempty"`
	ExpectedReturnTime    *time.Time     `json:"expected_return_time,omitempty"`
	ActualReturnTime      *time.Time     `json:"actual_return_time,omitempty"`
	LateDelivery          bool           `json:"late_delivery"`
	LateReturn            bool           `json:"late_return"`
	ExtraHours            float64        `json:"extra_hours"`
	ExtraAmount           float64        `json:"extra_amount"`
}

// EffectiveHourlyRate is the billing rate pinned at booking time
// (contracted price over contracted hours). Zero when no hours were
// contracted, so late-fee billing never divides by zero.
func (m *RentalMeta) EffectiveHourlyRate() float64 {
	if m.TotalHours <= 0 {
		return 0
	}
	return m.TotalPrice / m.TotalHours
}

// OrderDetail is the full read model for one order.
type OrderDetail struct {
	Order        Order         `json:"order"`
	Reservations []Reservation `json:"reservations"`
	Payments     []Payment     `json:"payments"`
	Meta         *RentalMeta   `json:"meta,omitempty"`
}
