package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustWindow(t *testing.T, start, end string) TimeWindow {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		t.Fatalf("bad start %q: %v", start, err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		t.Fatalf("bad end %q: %v", end, err)
	}
	return TimeWindow{Start: s, End: e}
}

func TestTimeWindow_Validate(t *testing.T) {
	t.Run("ValidWindow", func(t *testing.T) {
		w := mustWindow(t, "2026-06-01T09:00:00Z", "2026-06-01T12:00:00Z")
		assert.NoError(t, w.Validate())
	})

	t.Run("EndEqualsStart", func(t *testing.T) {
		w := mustWindow(t, "2026-06-01T09:00:00Z", "2026-06-01T09:00:00Z")
		err := w.Validate()
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidWindow))
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		w := mustWindow(t, "2026-06-01T12:00:00Z", "2026-06-01T09:00:00Z")
		assert.True(t, errors.Is(w.Validate(), ErrInvalidWindow))
	})
}

func TestTimeWindow_Overlaps(t *testing.T) {
	base := mustWindow(t, "2026-06-01T09:00:00Z", "2026-06-01T12:00:00Z")

	t.Run("TouchingWindowsDoNotOverlap", func(t *testing.T) {
		next := mustWindow(t, "2026-06-01T12:00:00Z", "2026-06-01T15:00:00Z")
		assert.False(t, base.Overlaps(next))
		assert.False(t, next.Overlaps(base))
	})

	t.Run("PartialOverlap", func(t *testing.T) {
		mid := mustWindow(t, "2026-06-01T11:00:00Z", "2026-06-01T13:00:00Z")
		assert.True(t, base.Overlaps(mid))
		assert.True(t, mid.Overlaps(base))
	})

	t.Run("Containment", func(t *testing.T) {
		inner := mustWindow(t, "2026-06-01T10:00:00Z", "2026-06-01T11:00:00Z")
		assert.True(t, base.Overlaps(inner))
		assert.True(t, inner.Overlaps(base))
	})

	t.Run("Disjoint", func(t *testing.T) {
		later := mustWindow(t, "2026-06-02T09:00:00Z", "2026-06-02T12:00:00Z")
		assert.False(t, base.Overlaps(later))
	})
}

func TestTimeWindow_Hours(t *testing.T) {
	t.Run("ExactHours", func(t *testing.T) {
		w := mustWindow(t, "2026-06-01T09:00:00Z", "2026-06-01T12:00:00Z")
		assert.Equal(t, 3, w.Hours())
	})

	t.Run("PartialHourRoundsUp", func(t *testing.T) {
		w := mustWindow(t, "2026-06-01T09:00:00Z", "2026-06-01T10:00:01Z")
		assert.Equal(t, 2, w.Hours())
	})

	t.Run("SubHourMinimumOne", func(t *testing.T) {
		w := mustWindow(t, "2026-06-01T09:00:00Z", "2026-06-01T09:30:00Z")
		assert.Equal(t, 1, w.Hours())
	})

	t.Run("InvalidWindowYieldsZero", func(t *testing.T) {
		w := mustWindow(t, "2026-06-01T09:00:00Z", "2026-06-01T09:00:00Z")
		assert.Equal(t, 0, w.Hours())
	})
}

func TestTimeWindow_Days(t *testing.T) {
	t.Run("SubDayCountsAsOne", func(t *testing.T) {
		w := mustWindow(t, "2026-06-01T09:00:00Z", "2026-06-01T14:00:00Z")
		assert.Equal(t, 1, w.Days())
	})

	t.Run("PartialSecondDayFloors", func(t *testing.T) {
		w := mustWindow(t, "2026-06-01T09:00:00Z", "2026-06-02T15:00:00Z") // 30h
		assert.Equal(t, 1, w.Days())
	})

	t.Run("TwoFullDays", func(t *testing.T) {
		w := mustWindow(t, "2026-06-01T09:00:00Z", "2026-06-03T09:00:00Z")
		assert.Equal(t, 2, w.Days())
	})

	t.Run("InvalidWindowYieldsZero", func(t *testing.T) {
		w := mustWindow(t, "2026-06-01T09:00:00Z", "2026-06-01T09:00:00Z")
		assert.Equal(t, 0, w.Days())
	})
}

func TestRentalMeta_EffectiveHourlyRate(t *testing.T) {
	m := &RentalMeta{TotalPrice: 30, TotalHours: 3}
	assert.Equal(t, 10.0, m.EffectiveHourlyRate())

	empty := &RentalMeta{TotalPrice: 30}
	assert.Equal(t, 0.0, empty.EffectiveHourlyRate())
}
