package domain

import "errors"

// Sentinel errors for the rental core. Callers classify failures with
// errors.Is; wrapping carries the offending unit, request index or order.
var (
	ErrInvalidWindow      = errors.New("invalid time window")
	ErrDurationOutOfRange = errors.New("rental duration out of range")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("unit unavailable for requested window")
	ErrInvalidTransition  = errors.New("invalid order status transition")
)
