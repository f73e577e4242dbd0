//go:build unit

package builder

import (
	"time"

	dombooking "vehicle-booking/internal/domain/booking"
	reqdto "vehicle-booking/internal/handler/dto/request"
	"vehicle-booking/internal/infra/sqlc"
	"vehicle-booking/internal/pkg/clock"
	"vehicle-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID         uuid.UUID
	VehicleID  int64
	CustomerID string
	StartDate  time.Time
	EndDate    time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	start := clock.Truncate(now.AddDate(0, 0, 7))
	return &BookingBuilder{
		ID:         uuid.New(),
		VehicleID:  42,
		CustomerID: "customer-1",
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 3),
		Status:     dombooking.StatusCreated.String(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	dates, err := dombooking.NewDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	return dombooking.ReconstructBooking(
		b.ID, b.VehicleID, b.CustomerID, dates,
		dombooking.Status(b.Status),
		nil, nil, nil,
		b.CreatedAt, b.UpdatedAt,
	), nil
}

func (b *BookingBuilder) BuildInfra() sqlc.Booking {
	return sqlc.Booking{
		ID:         b.ID,
		VehicleID:  b.VehicleID,
		CustomerID: b.CustomerID,
		StartDate:  pgtype.Date{Time: b.StartDate, Valid: true},
		EndDate:    pgtype.Date{Time: b.EndDate, Valid: true},
		Status:     b.Status,
		CreatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID,
		VehicleID:  b.VehicleID,
		CustomerID: b.CustomerID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:         b.ID,
		VehicleID:  b.VehicleID,
		CustomerID: b.CustomerID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		VehicleID: b.VehicleID,
		StartDate: b.StartDate.Format(time.DateOnly),
		EndDate:   b.EndDate.Format(time.DateOnly),
	}
}
