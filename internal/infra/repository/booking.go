package repository

import (
	"context"

	"vehicle-booking/internal/domain/booking"
	"vehicle-booking/internal/infra"
	"vehicle-booking/internal/infra/sqlc"
	"vehicle-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Booking, error)
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booking, error)
	AcquireVehicleLock(ctx context.Context, db sqlc.DBTX, vehicleID int64) error
	CountOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingBookingsParams) (int64, error)
	CheckInBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CheckInBookingParams) (int64, error)
	CheckOutBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CheckOutBookingParams) (int64, error)
	CancelBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelBookingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	params := sqlc.CreateBookingParams{
		ID:         b.ID(),
		VehicleID:  b.VehicleID(),
		CustomerID: b.CustomerID(),
		StartDate:  pgconv.DateToPgtype(b.Dates().Start()),
		EndDate:    pgconv.DateToPgtype(b.Dates().End()),
		Status:     b.Status().String(),
	}

	result, err := r.queries.CreateBooking(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return toDomainBooking(result)
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking row", err)
	}

	return toDomainBooking(row)
}

func (r *BookingRepository) LockVehicle(ctx context.Context, vehicleID int64) error {
	if err := r.queries.AcquireVehicleLock(ctx, r.db, vehicleID); err != nil {
		return infra.WrapRepoErr("failed to acquire vehicle lock", err)
	}
	return nil
}

func (r *BookingRepository) CountOverlapping(ctx context.Context, vehicleID int64, statuses []booking.Status, dates booking.DateRange) (int64, error) {
	blocking := make([]string, len(statuses))
	for i, s := range statuses {
		blocking[i] = s.String()
	}

	count, err := r.queries.CountOverlappingBookings(ctx, r.db, sqlc.CountOverlappingBookingsParams{
		VehicleID: vehicleID,
		Statuses:  blocking,
		EndDate:   pgconv.DateToPgtype(dates.End()),
		StartDate: pgconv.DateToPgtype(dates.Start()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}

	return count, nil
}

func (r *BookingRepository) MarkActive(ctx context.Context, b *booking.Booking) error {
	rows, err := r.queries.CheckInBooking(ctx, r.db, sqlc.CheckInBookingParams{
		ID:          b.ID(),
		ActivatedAt: pgconv.DatePtrToPgtype(b.ActivatedAt()),
	})
	return checkUpdateResult("failed to mark booking active", rows, err)
}

func (r *BookingRepository) MarkFinished(ctx context.Context, b *booking.Booking) error {
	rows, err := r.queries.CheckOutBooking(ctx, r.db, sqlc.CheckOutBookingParams{
		ID:         b.ID(),
		FinishedAt: pgconv.DatePtrToPgtype(b.FinishedAt()),
	})
	return checkUpdateResult("failed to mark booking finished", rows, err)
}

func (r *BookingRepository) MarkCanceled(ctx context.Context, b *booking.Booking) error {
	rows, err := r.queries.CancelBooking(ctx, r.db, sqlc.CancelBookingParams{
		ID:         b.ID(),
		CanceledAt: pgconv.DatePtrToPgtype(b.CanceledAt()),
	})
	return checkUpdateResult("failed to mark booking canceled", rows, err)
}

func checkUpdateResult(msg string, rows int64, err error) error {
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	if rows == 0 {
		return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
	}
	return nil
}

func toDomainBooking(row sqlc.Booking) (*booking.Booking, error) {
	dates, err := booking.NewDateRange(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking date range", err)
	}

	return booking.ReconstructBooking(
		row.ID,
		row.VehicleID,
		row.CustomerID,
		dates,
		booking.Status(row.Status),
		pgconv.DatePtrFromPgtype(row.ActivatedAt),
		pgconv.DatePtrFromPgtype(row.FinishedAt),
		pgconv.DatePtrFromPgtype(row.CanceledAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
