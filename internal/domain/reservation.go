package domain

// Reservation binds one rentable unit to one time window, owned by one
// order. Created atomically with its order and never mutated afterwards;
// cancellation removes it instead of editing the window.
type Reservation struct {
	ID      int32      `json:"id"`
	OrderID int32      `json:"order_id"`
	UnitID  int32      `json:"unit_id"`
	Window  TimeWindow `json:"window"`
}

// ReservationRequest is one requested reservation within a booking batch.
type ReservationRequest struct {
	UnitID int32      `json:"unit_id"`
	Window TimeWindow `json:"window"`
}
