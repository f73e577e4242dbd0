//go:build unit

package booking_test

import (
	"math/rand"
	"testing"
	"time"

	"vehicle-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) booking.DateRange {
	t.Helper()
	r, err := booking.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("success: valid range", func(t *testing.T) {
		r, err := booking.NewDateRange(date(2026, 9, 1), date(2026, 9, 5))
		require.NoError(t, err)
		assert.Equal(t, date(2026, 9, 1), r.Start())
		assert.Equal(t, date(2026, 9, 5), r.End())
	})

	t.Run("success: single day range", func(t *testing.T) {
		r, err := booking.NewDateRange(date(2026, 9, 1), date(2026, 9, 1))
		require.NoError(t, err)
		assert.Equal(t, 1, r.Days())
	})

	t.Run("success: time of day is discarded", func(t *testing.T) {
		start := time.Date(2026, 9, 1, 17, 45, 12, 0, time.UTC)
		end := time.Date(2026, 9, 3, 2, 0, 0, 0, time.UTC)
		r, err := booking.NewDateRange(start, end)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 9, 1), r.Start())
		assert.Equal(t, date(2026, 9, 3), r.End())
	})

	t.Run("error: end before start", func(t *testing.T) {
		_, err := booking.NewDateRange(date(2026, 9, 5), date(2026, 9, 1))
		assert.ErrorIs(t, err, booking.ErrEndBeforeStart)
	})

	t.Run("error: end before start by one day", func(t *testing.T) {
		_, err := booking.NewDateRange(date(2026, 9, 2), date(2026, 9, 1))
		assert.ErrorIs(t, err, booking.ErrEndBeforeStart)
	})
}

func TestDateRange_Days(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"single day", date(2026, 9, 1), date(2026, 9, 1), 1},
		{"two days", date(2026, 9, 1), date(2026, 9, 2), 2},
		{"across month boundary", date(2026, 9, 29), date(2026, 10, 2), 4},
		{"across year boundary", date(2026, 12, 30), date(2027, 1, 2), 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRange(t, tc.start, tc.end)
			assert.Equal(t, tc.expected, r.Days())
		})
	}
}

func TestDateRange_Overlaps(t *testing.T) {
	base := mustRange(t, date(2026, 9, 10), date(2026, 9, 15))

	testCases := []struct {
		name     string
		other    booking.DateRange
		expected bool
	}{
		{"identical ranges", mustRange(t, date(2026, 9, 10), date(2026, 9, 15)), true},
		{"fully contained", mustRange(t, date(2026, 9, 11), date(2026, 9, 13)), true},
		{"containing", mustRange(t, date(2026, 9, 1), date(2026, 9, 30)), true},
		{"partial overlap at start", mustRange(t, date(2026, 9, 5), date(2026, 9, 10)), true},
		{"partial overlap at end", mustRange(t, date(2026, 9, 15), date(2026, 9, 20)), true},
		{"shared single boundary day", mustRange(t, date(2026, 9, 15), date(2026, 9, 15)), true},
		{"adjacent before", mustRange(t, date(2026, 9, 1), date(2026, 9, 9)), false},
		{"adjacent after", mustRange(t, date(2026, 9, 16), date(2026, 9, 20)), false},
		{"well before", mustRange(t, date(2026, 8, 1), date(2026, 8, 5)), false},
		{"well after", mustRange(t, date(2026, 10, 1), date(2026, 10, 5)), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, base.Overlaps(tc.other))
			assert.Equal(t, tc.expected, tc.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

// Cross-checks Overlaps against a day-by-day scan over random intervals.
func TestDateRange_OverlapsMatchesDayScan(t *testing.T) {
	rng := rand.New(rand.NewSource(20260901))
	origin := date(2026, 1, 1)

	randomRange := func() booking.DateRange {
		start := origin.AddDate(0, 0, rng.Intn(60))
		end := start.AddDate(0, 0, rng.Intn(10))
		r, err := booking.NewDateRange(start, end)
		require.NoError(t, err)
		return r
	}

	sharesDay := func(a, b booking.DateRange) bool {
		for d := a.Start(); !d.After(a.End()); d = d.AddDate(0, 0, 1) {
			if !d.Before(b.Start()) && !d.After(b.End()) {
				return true
			}
		}
		return false
	}

	for i := 0; i < 500; i++ {
		a, b := randomRange(), randomRange()
		assert.Equal(t, sharesDay(a, b), a.Overlaps(b),
			"mismatch for [%s, %s] vs [%s, %s]",
			a.Start().Format(time.DateOnly), a.End().Format(time.DateOnly),
			b.Start().Format(time.DateOnly), b.End().Format(time.DateOnly))
	}
}

func TestDateRange_StartsBefore(t *testing.T) {
	r := mustRange(t, date(2026, 9, 10), date(2026, 9, 15))

	assert.True(t, r.StartsBefore(date(2026, 9, 11)))
	assert.False(t, r.StartsBefore(date(2026, 9, 10)), "same day does not count as before")
	assert.False(t, r.StartsBefore(date(2026, 9, 9)))
}
