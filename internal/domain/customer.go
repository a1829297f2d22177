package domain

import "time"

type Customer struct {
	ID    int32  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomerRef identifies the customer at booking time. Customers are
// resolved find-or-create by phone.
type CustomerRef struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// LateRental is a read-time summary of a rented order past its expected
// return time. Producing it never mutates the order.
type LateRental struct {
	OrderID            int32     `json:"order_id"`
	EquipmentName      string    `json:"equipment_name"`
	CustomerName       string    `json:"customer_name"`
	CustomerPhone      string    `json:"customer_phone"`
	CustomerEmail      string    `json:"customer_email"`
	ExpectedReturnTime time.Time `json:"expected_return_time"`
	HoursOverdue       float64   `json:"hours_overdue"`
	TotalPrice         float64   `json:"total_price"`
	TotalHours         float64   `json:"total_hours"`
}
