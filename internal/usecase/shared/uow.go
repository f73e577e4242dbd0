package shared

import (
	"context"

	"vehicle-booking/internal/domain/booking"
	"vehicle-booking/internal/infra/sqlc"

	"github.com/google/uuid"
)

// UnitOfWork scopes every mutating operation to one transaction with
// guaranteed release, committed or rolled back on all exit paths. Reads go
// through the readstore over the pool directly and need no unit of work.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	DB() sqlc.DBTX
}

type BookingRepository interface {
	// Create persists the aggregate and returns it as stored, including the
	// database-assigned created_at/updated_at.
	Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	// FindByIDForUpdate takes a row lock so concurrent transitions on the
	// same booking serialize.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// LockVehicle serializes creations per vehicle for the lifetime of the
	// enclosing transaction.
	LockVehicle(ctx context.Context, vehicleID int64) error
	CountOverlapping(ctx context.Context, vehicleID int64, statuses []booking.Status, dates booking.DateRange) (int64, error)
	MarkActive(ctx context.Context, b *booking.Booking) error
	MarkFinished(ctx context.Context, b *booking.Booking) error
	MarkCanceled(ctx context.Context, b *booking.Booking) error
}
