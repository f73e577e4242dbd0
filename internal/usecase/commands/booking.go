package commands

import (
	"context"
	"errors"
	"log/slog"

	"vehicle-booking/internal/domain/booking"
	reqdto "vehicle-booking/internal/handler/dto/request"
	"vehicle-booking/internal/infra"
	"vehicle-booking/internal/pkg/clock"
	"vehicle-booking/internal/pkg/errs"
	"vehicle-booking/internal/usecase/queries"
	"vehicle-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	// Create checks vehicle availability upstream, rejects conflicting date
	// ranges and persists a CREATED booking.
	Create(ctx context.Context, customerID string, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	CheckIn(ctx context.Context, id uuid.UUID, customerID string) error
	CheckOut(ctx context.Context, id uuid.UUID, customerID string) error
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	vehicles  VehicleGateway
	publisher EventPublisher
	cache     queries.ListCache
	views     queries.BookingQueries
	clk       clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	vehicles VehicleGateway,
	publisher EventPublisher,
	cache queries.ListCache,
	views queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		vehicles:  vehicles,
		publisher: publisher,
		cache:     cache,
		views:     views,
		clk:       clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, customerID string, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	vehicle, err := c.vehicles.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != VehicleStatusAvailable {
		return nil, errs.ErrVehicleUnavailable
	}

	dates, err := req.ToDateRange()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDate)
	}
	b, err := booking.NewBooking(c.clk, req.VehicleID, customerID, dates)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDate)
	}

	var created *booking.Booking
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Per-vehicle lock so two requests for the same vehicle cannot both
		// pass the overlap count before either row lands.
		if err := tx.Bookings().LockVehicle(ctx, b.VehicleID()); err != nil {
			return err
		}

		count, err := tx.Bookings().CountOverlapping(ctx, b.VehicleID(), booking.BlockingStatuses(), b.Dates())
		if err != nil {
			return err
		}
		if count > 0 {
			return errs.ErrDateConflict
		}

		created, err = tx.Bookings().Create(ctx, b)
		return err
	})
	if err != nil {
		return nil, mapStorageErr(err)
	}

	// The row is committed; the response is projected from it directly so a
	// read-side outage cannot make a successful creation look failed.
	view := bookingView(created)
	c.emit(ctx, EventBookingCreated, view)

	return view, nil
}

func bookingView(b *booking.Booking) *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID(),
		VehicleID:   b.VehicleID(),
		CustomerID:  b.CustomerID(),
		StartDate:   b.Dates().Start(),
		EndDate:     b.Dates().End(),
		Status:      b.Status().String(),
		ActivatedAt: b.ActivatedAt(),
		FinishedAt:  b.FinishedAt(),
		CanceledAt:  b.CanceledAt(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	var canceled *booking.Booking

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := b.Cancel(c.clk.Today()); err != nil {
			return mapDomainErr(err)
		}
		if err := tx.Bookings().MarkCanceled(ctx, b); err != nil {
			return err
		}
		canceled = b
		return nil
	})
	if err != nil {
		return mapStorageErr(err)
	}

	// The cancellation is already durable; releasing the vehicle upstream is
	// best-effort and must not fail the request.
	if err := c.vehicles.SetVehicleStatus(ctx, canceled.VehicleID(), VehicleStatusAvailable); err != nil {
		slog.Warn("vehicle status release failed",
			"vehicle_id", canceled.VehicleID(), "booking_id", id, "error", err.Error())
	}

	c.afterTransition(ctx, EventBookingCanceled, id)
	return nil
}

func (c *bookingCommandsImpl) CheckIn(ctx context.Context, id uuid.UUID, customerID string) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := b.CheckIn(customerID, c.clk.Today()); err != nil {
			return mapDomainErr(err)
		}
		return tx.Bookings().MarkActive(ctx, b)
	})
	if err != nil {
		return mapStorageErr(err)
	}

	c.afterTransition(ctx, EventBookingActivated, id)
	return nil
}

func (c *bookingCommandsImpl) CheckOut(ctx context.Context, id uuid.UUID, customerID string) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := b.CheckOut(customerID, c.clk.Today()); err != nil {
			return mapDomainErr(err)
		}
		return tx.Bookings().MarkFinished(ctx, b)
	})
	if err != nil {
		return mapStorageErr(err)
	}

	c.afterTransition(ctx, EventBookingFinished, id)
	return nil
}

// emit invalidates the list cache and publishes a lifecycle event. Both are
// best-effort side effects of an already committed mutation.
func (c *bookingCommandsImpl) emit(ctx context.Context, kind string, view *queries.BookingView) {
	if err := c.cache.InvalidateAll(ctx); err != nil {
		slog.Warn("booking list cache invalidation failed", "error", err.Error())
	}
	if err := c.publisher.Publish(ctx, kind, view); err != nil {
		slog.Warn("booking event publish failed",
			"kind", kind, "booking_id", view.ID, "error", err.Error())
	}
}

func (c *bookingCommandsImpl) afterTransition(ctx context.Context, kind string, id uuid.UUID) {
	view, err := c.views.GetByID(ctx, id)
	if err != nil {
		slog.Warn("booking event payload fetch failed",
			"kind", kind, "booking_id", id, "error", err.Error())
		if err := c.cache.InvalidateAll(ctx); err != nil {
			slog.Warn("booking list cache invalidation failed", "error", err.Error())
		}
		return
	}
	c.emit(ctx, kind, view)
}

func mapDomainErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errors.Is(err, booking.ErrNotOwner):
		return errs.Mark(err, errs.ErrNotOwner)
	default:
		return err
	}
}

// mapStorageErr translates repository failures into usecase sentinels while
// passing through errors that already carry one.
func mapStorageErr(err error) error {
	switch {
	case errors.Is(err, errs.ErrDateConflict),
		errors.Is(err, errs.ErrBookingNotFound),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrNotOwner):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrBookingNotFound)
	default:
		return errs.Mark(err, errs.ErrStorageFailure)
	}
}
