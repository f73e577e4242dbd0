package booking

import (
	"errors"
	"fmt"
	"time"

	"vehicle-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrStartDateInPast   = errors.New("start date must be today or later")
	ErrEmptyCustomerID   = errors.New("customer id is required")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotOwner          = errors.New("booking belongs to another customer")
)

// Booking is the aggregate root for a vehicle reservation. It is the only
// place lifecycle transitions are decided; repositories persist whatever it
// ruled. The state machine:
//
//	CREATED --check-in(owner)--> ACTIVE --check-out(owner)--> FINISHED
//	CREATED --cancel----------> CANCELED
type Booking struct {
	id          uuid.UUID
	vehicleID   int64
	customerID  string
	dates       DateRange
	status      Status
	activatedAt *time.Time
	finishedAt  *time.Time
	canceledAt  *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking validates a reservation request and returns a CREATED booking.
// The vehicle-availability and date-conflict checks are the caller's
// responsibility: both need external collaborators.
func NewBooking(clk clock.Clock, vehicleID int64, customerID string, dates DateRange) (*Booking, error) {
	if customerID == "" {
		return nil, ErrEmptyCustomerID
	}
	if dates.StartsBefore(clk.Today()) {
		return nil, ErrStartDateInPast
	}

	return &Booking{
		id:         uuid.New(),
		vehicleID:  vehicleID,
		customerID: customerID,
		dates:      dates,
		status:     StatusCreated,
	}, nil
}

// ReconstructBooking rebuilds an aggregate from storage without re-running
// creation-time validation (historical rows may legitimately start in the
// past).
func ReconstructBooking(
	id uuid.UUID,
	vehicleID int64,
	customerID string,
	dates DateRange,
	status Status,
	activatedAt, finishedAt, canceledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		vehicleID:   vehicleID,
		customerID:  customerID,
		dates:       dates,
		status:      status,
		activatedAt: activatedAt,
		finishedAt:  finishedAt,
		canceledAt:  canceledAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Cancel moves CREATED -> CANCELED and stamps canceledAt with today's date.
func (b *Booking) Cancel(today time.Time) error {
	if b.status != StatusCreated {
		return fmt.Errorf("%w: booking already %s", ErrInvalidTransition, b.status)
	}
	today = clock.Truncate(today)
	b.status = StatusCanceled
	b.canceledAt = &today
	return nil
}

// CheckIn moves CREATED -> ACTIVE for the owning customer.
func (b *Booking) CheckIn(customerID string, today time.Time) error {
	if b.status != StatusCreated {
		return fmt.Errorf("%w: booking %s not available to check-in", ErrInvalidTransition, b.status)
	}
	if b.customerID != customerID {
		return ErrNotOwner
	}
	today = clock.Truncate(today)
	b.status = StatusActive
	b.activatedAt = &today
	return nil
}

// CheckOut moves ACTIVE -> FINISHED for the owning customer.
func (b *Booking) CheckOut(customerID string, today time.Time) error {
	if b.status != StatusActive {
		return fmt.Errorf("%w: booking %s not available to check-out", ErrInvalidTransition, b.status)
	}
	if b.customerID != customerID {
		return ErrNotOwner
	}
	today = clock.Truncate(today)
	b.status = StatusFinished
	b.finishedAt = &today
	return nil
}

func (b *Booking) IsBlocking() bool {
	return b.status == StatusCreated || b.status == StatusActive
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) VehicleID() int64        { return b.vehicleID }
func (b *Booking) CustomerID() string      { return b.customerID }
func (b *Booking) Dates() DateRange        { return b.dates }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) ActivatedAt() *time.Time { return b.activatedAt }
func (b *Booking) FinishedAt() *time.Time  { return b.finishedAt }
func (b *Booking) CanceledAt() *time.Time  { return b.canceledAt }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
