//go:build unit

package booking_test

import (
	"testing"
	"time"

	"vehicle-booking/internal/domain/booking"
	"vehicle-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerID    = "customer-1"
	strangerID = "customer-2"
)

func fixedClock() *clock.MockClock {
	return clock.NewMockClock(time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC))
}

func newCreatedBooking(t *testing.T) *booking.Booking {
	t.Helper()
	clk := fixedClock()
	dates := mustRange(t, date(2026, 9, 10), date(2026, 9, 12))
	b, err := booking.NewBooking(clk, 42, ownerID, dates)
	require.NoError(t, err)
	return b
}

func reconstructWithStatus(t *testing.T, status booking.Status) *booking.Booking {
	t.Helper()
	dates := mustRange(t, date(2026, 9, 10), date(2026, 9, 12))
	return booking.ReconstructBooking(
		uuid.New(), 42, ownerID, dates, status,
		nil, nil, nil,
		time.Now(), time.Now(),
	)
}

func TestNewBooking(t *testing.T) {
	clk := fixedClock()

	t.Run("success: future start date", func(t *testing.T) {
		dates := mustRange(t, date(2026, 9, 10), date(2026, 9, 12))
		b, err := booking.NewBooking(clk, 42, ownerID, dates)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, int64(42), b.VehicleID())
		assert.Equal(t, ownerID, b.CustomerID())
		assert.Equal(t, booking.StatusCreated, b.Status())
		assert.Nil(t, b.ActivatedAt())
		assert.Nil(t, b.FinishedAt())
		assert.Nil(t, b.CanceledAt())
	})

	t.Run("success: start date is today", func(t *testing.T) {
		dates := mustRange(t, date(2026, 9, 1), date(2026, 9, 3))
		b, err := booking.NewBooking(clk, 42, ownerID, dates)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCreated, b.Status())
	})

	t.Run("error: start date in the past", func(t *testing.T) {
		dates := mustRange(t, date(2026, 8, 31), date(2026, 9, 3))
		_, err := booking.NewBooking(clk, 42, ownerID, dates)
		assert.ErrorIs(t, err, booking.ErrStartDateInPast)
	})

	t.Run("error: empty customer ID", func(t *testing.T) {
		dates := mustRange(t, date(2026, 9, 10), date(2026, 9, 12))
		_, err := booking.NewBooking(clk, 42, "", dates)
		assert.ErrorIs(t, err, booking.ErrEmptyCustomerID)
	})
}

func TestBooking_Cancel(t *testing.T) {
	today := date(2026, 9, 1)

	t.Run("success: created booking cancels", func(t *testing.T) {
		b := newCreatedBooking(t)
		require.NoError(t, b.Cancel(today))

		assert.Equal(t, booking.StatusCanceled, b.Status())
		require.NotNil(t, b.CanceledAt())
		assert.Equal(t, today, *b.CanceledAt())
		assert.False(t, b.IsBlocking())
	})

	t.Run("error: non-created statuses reject cancel", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusActive, booking.StatusFinished, booking.StatusCanceled} {
			b := reconstructWithStatus(t, status)
			err := b.Cancel(today)
			assert.ErrorIs(t, err, booking.ErrInvalidTransition, "status %s", status)
			assert.Equal(t, status, b.Status(), "status must not change on rejected cancel")
		}
	})
}

func TestBooking_CheckIn(t *testing.T) {
	today := date(2026, 9, 10)

	t.Run("success: owner checks in", func(t *testing.T) {
		b := newCreatedBooking(t)
		require.NoError(t, b.CheckIn(ownerID, today))

		assert.Equal(t, booking.StatusActive, b.Status())
		require.NotNil(t, b.ActivatedAt())
		assert.Equal(t, today, *b.ActivatedAt())
		assert.True(t, b.IsBlocking())
	})

	t.Run("error: non-owner is rejected", func(t *testing.T) {
		b := newCreatedBooking(t)
		err := b.CheckIn(strangerID, today)
		assert.ErrorIs(t, err, booking.ErrNotOwner)
		assert.Equal(t, booking.StatusCreated, b.Status())
	})

	t.Run("error: non-created statuses reject check-in", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusActive, booking.StatusFinished, booking.StatusCanceled} {
			b := reconstructWithStatus(t, status)
			err := b.CheckIn(ownerID, today)
			assert.ErrorIs(t, err, booking.ErrInvalidTransition, "status %s", status)
		}
	})
}

func TestBooking_CheckOut(t *testing.T) {
	today := date(2026, 9, 12)

	activeBooking := func(t *testing.T) *booking.Booking {
		b := newCreatedBooking(t)
		require.NoError(t, b.CheckIn(ownerID, date(2026, 9, 10)))
		return b
	}

	t.Run("success: owner checks out active booking", func(t *testing.T) {
		b := activeBooking(t)
		require.NoError(t, b.CheckOut(ownerID, today))

		assert.Equal(t, booking.StatusFinished, b.Status())
		require.NotNil(t, b.FinishedAt())
		assert.Equal(t, today, *b.FinishedAt())
		assert.False(t, b.IsBlocking())
	})

	t.Run("error: non-owner is rejected", func(t *testing.T) {
		b := activeBooking(t)
		err := b.CheckOut(strangerID, today)
		assert.ErrorIs(t, err, booking.ErrNotOwner)
		assert.Equal(t, booking.StatusActive, b.Status())
	})

	t.Run("error: non-active statuses reject check-out", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCreated, booking.StatusFinished, booking.StatusCanceled} {
			b := reconstructWithStatus(t, status)
			err := b.CheckOut(ownerID, today)
			assert.ErrorIs(t, err, booking.ErrInvalidTransition, "status %s", status)
		}
	})
}

func TestBooking_FullLifecycle(t *testing.T) {
	b := newCreatedBooking(t)

	require.NoError(t, b.CheckIn(ownerID, date(2026, 9, 10)))
	require.NoError(t, b.CheckOut(ownerID, date(2026, 9, 12)))

	assert.Equal(t, booking.StatusFinished, b.Status())
	assert.ErrorIs(t, b.Cancel(date(2026, 9, 13)), booking.ErrInvalidTransition)
}

func TestStatus(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		for _, s := range []booking.Status{booking.StatusCreated, booking.StatusActive, booking.StatusFinished, booking.StatusCanceled} {
			assert.True(t, s.IsValid())
		}
		assert.False(t, booking.Status("UNKNOWN").IsValid())
	})

	t.Run("terminal statuses", func(t *testing.T) {
		assert.False(t, booking.StatusCreated.IsTerminal())
		assert.False(t, booking.StatusActive.IsTerminal())
		assert.True(t, booking.StatusFinished.IsTerminal())
		assert.True(t, booking.StatusCanceled.IsTerminal())
	})

	t.Run("blocking statuses cover created and active", func(t *testing.T) {
		assert.ElementsMatch(t, []booking.Status{booking.StatusCreated, booking.StatusActive}, booking.BlockingStatuses())
	})
}
