package domain

import (
	"fmt"
	"time"
)

// TimeWindow is a half-open interval [Start, End) used for reservations and
// availability lookups.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate rejects windows whose end does not fall strictly after the start.
func (w TimeWindow) Validate() error {
	if !w.End.After(w.Start) {
		return fmt.Errorf("end %s is not after start %s: %w",
			w.End.Format(time.RFC3339), w.Start.Format(time.RFC3339), ErrInvalidWindow)
	}
	return nil
}

// Overlaps reports whether two half-open windows intersect. Touching
// endpoints do not count as overlap.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

// Duration returns End - Start.
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Hours is the billable hour count: seconds rounded up to the next whole
// hour, minimum 1 for any positive window. Malformed windows yield 0 and
// must be rejected upstream, never silently zero-priced.
func (w TimeWindow) Hours() int {
	secs := int64(w.Duration() / time.Second)
	if secs <= 0 {
		return 0
	}
	hours := (secs + 3599) / 3600
	if hours < 1 {
		hours = 1
	}
	return int(hours)
}

// Days is the billable day count: any positive window under 24 hours counts
// as one day, longer windows count full days floored at 1. Malformed windows
// yield 0.
func (w TimeWindow) Days() int {
	secs := int64(w.Duration() / time.Second)
	if secs <= 0 {
		return 0
	}
	days := secs / 86400
	if days < 1 {
		days = 1
	}
	return int(days)
}
