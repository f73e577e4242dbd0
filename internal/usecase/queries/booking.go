package queries

import (
	"context"
	"log/slog"

	"vehicle-booking/internal/infra"
	"vehicle-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// ListAll serves the full booking projection through the read cache.
	ListAll(ctx context.Context) ([]*BookingListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindAll(ctx context.Context) ([]*BookingListItem, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]*BookingListItem, error)
}

// ListCache fronts the list-all projection. A cache fault must never fail
// the query, so implementations report misses and errors separately.
type ListCache interface {
	GetList(ctx context.Context) ([]*BookingListItem, bool, error)
	SetList(ctx context.Context, items []*BookingListItem) error
	InvalidateAll(ctx context.Context) error
}

type bookingQueriesImpl struct {
	repo  BookingViewRepo
	cache ListCache
}

func NewBookingQueries(repo BookingViewRepo, cache ListCache) BookingQueries {
	return &bookingQueriesImpl{repo: repo, cache: cache}
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingListItem, error) {
	cached, hit, err := q.cache.GetList(ctx)
	if err != nil {
		slog.Warn("booking list cache read failed, falling back to store", "error", err.Error())
	} else if hit {
		return cached, nil
	}

	items, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	if err := q.cache.SetList(ctx, items); err != nil {
		slog.Warn("booking list cache fill failed", "error", err.Error())
	}

	return items, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListByCustomer(ctx context.Context, customerID string) ([]*BookingListItem, error) {
	items, err := q.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	return items, nil
}
