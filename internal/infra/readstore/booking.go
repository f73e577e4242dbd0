package readstore

import (
	"context"

	"vehicle-booking/internal/infra"
	"vehicle-booking/internal/infra/sqlc"
	"vehicle-booking/internal/pkg/pgconv"
	"vehicle-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booking, error)
	ListBookings(ctx context.Context, db sqlc.DBTX) ([]sqlc.Booking, error)
	ListBookingsByCustomerID(ctx context.Context, db sqlc.DBTX, customerID string) ([]sqlc.Booking, error)
}

type BookingReadStore struct {
	queries BookingQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := s.queries.GetBookingByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return toBookingView(row), nil
}

func (s *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingListItem, error) {
	rows, err := s.queries.ListBookings(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItem(row)
	}

	return result, nil
}

func (s *BookingReadStore) FindByCustomerID(ctx context.Context, customerID string) ([]*queries.BookingListItem, error) {
	rows, err := s.queries.ListBookingsByCustomerID(ctx, s.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by customer", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItem(row)
	}

	return result, nil
}

func toBookingView(row sqlc.Booking) *queries.BookingView {
	return &queries.BookingView{
		ID:          row.ID,
		VehicleID:   row.VehicleID,
		CustomerID:  row.CustomerID,
		StartDate:   pgconv.DateFromPgtype(row.StartDate),
		EndDate:     pgconv.DateFromPgtype(row.EndDate),
		Status:      row.Status,
		ActivatedAt: pgconv.DatePtrFromPgtype(row.ActivatedAt),
		FinishedAt:  pgconv.DatePtrFromPgtype(row.FinishedAt),
		CanceledAt:  pgconv.DatePtrFromPgtype(row.CanceledAt),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toBookingListItem(row sqlc.Booking) *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:         row.ID,
		VehicleID:  row.VehicleID,
		CustomerID: row.CustomerID,
		StartDate:  pgconv.DateFromPgtype(row.StartDate),
		EndDate:    pgconv.DateFromPgtype(row.EndDate),
		Status:     row.Status,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
