//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"vehicle-booking/internal/infra"
	"vehicle-booking/internal/pkg/errs"
	"vehicle-booking/internal/usecase/queries"
	"vehicle-booking/tests/common/builder"
	queriesmock "vehicle-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBookingQueries(t *testing.T) (queries.BookingQueries, *queriesmock.MockBookingViewRepo, *queriesmock.MockListCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockBookingViewRepo(ctrl)
	cache := queriesmock.NewMockListCache(ctrl)
	return queries.NewBookingQueries(repo, cache), repo, cache
}

func TestBookingQueries_ListAll(t *testing.T) {
	ctx := context.Background()
	items := []*queries.BookingListItem{
		builder.NewBookingBuilder().BuildListItem(),
		builder.NewBookingBuilder().BuildListItem(),
	}

	t.Run("success: cache hit skips the store", func(t *testing.T) {
		q, _, cache := newBookingQueries(t)
		cache.EXPECT().GetList(gomock.Any()).Return(items, true, nil)

		result, err := q.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, items, result)
	})

	t.Run("success: cache miss fills the cache from the store", func(t *testing.T) {
		q, repo, cache := newBookingQueries(t)
		cache.EXPECT().GetList(gomock.Any()).Return(nil, false, nil)
		repo.EXPECT().FindAll(gomock.Any()).Return(items, nil)
		cache.EXPECT().SetList(gomock.Any(), items).Return(nil)

		result, err := q.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, items, result)
	})

	t.Run("success: cache read failure falls back to the store", func(t *testing.T) {
		q, repo, cache := newBookingQueries(t)
		cache.EXPECT().GetList(gomock.Any()).Return(nil, false, errors.New("redis down"))
		repo.EXPECT().FindAll(gomock.Any()).Return(items, nil)
		cache.EXPECT().SetList(gomock.Any(), items).Return(nil)

		result, err := q.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, items, result)
	})

	t.Run("success: cache fill failure does not fail the query", func(t *testing.T) {
		q, repo, cache := newBookingQueries(t)
		cache.EXPECT().GetList(gomock.Any()).Return(nil, false, nil)
		repo.EXPECT().FindAll(gomock.Any()).Return(items, nil)
		cache.EXPECT().SetList(gomock.Any(), items).Return(errors.New("redis down"))

		result, err := q.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, items, result)
	})

	t.Run("error: store failure", func(t *testing.T) {
		q, repo, cache := newBookingQueries(t)
		cache.EXPECT().GetList(gomock.Any()).Return(nil, false, nil)
		repo.EXPECT().FindAll(gomock.Any()).Return(nil, infra.WrapRepoErr("query failed", errors.New("io error")))

		_, err := q.ListAll(ctx)
		assert.ErrorIs(t, err, errs.ErrStorageFailure)
	})
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		q, repo, _ := newBookingQueries(t)
		view := builder.NewBookingBuilder().BuildView()
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		result, err := q.GetByID(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, result)
	})

	t.Run("error: not found", func(t *testing.T) {
		q, repo, _ := newBookingQueries(t)
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, id)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("error: store failure", func(t *testing.T) {
		q, repo, _ := newBookingQueries(t)
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("io error")))

		_, err := q.GetByID(ctx, id)
		assert.ErrorIs(t, err, errs.ErrStorageFailure)
	})
}

func TestBookingQueries_ListByCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		q, repo, _ := newBookingQueries(t)
		items := []*queries.BookingListItem{builder.NewBookingBuilder().BuildListItem()}
		repo.EXPECT().FindByCustomerID(gomock.Any(), "customer-1").Return(items, nil)

		result, err := q.ListByCustomer(ctx, "customer-1")
		require.NoError(t, err)
		assert.Equal(t, items, result)
	})

	t.Run("success: no bookings yields empty slice", func(t *testing.T) {
		q, repo, _ := newBookingQueries(t)
		repo.EXPECT().FindByCustomerID(gomock.Any(), "customer-1").Return([]*queries.BookingListItem{}, nil)

		result, err := q.ListByCustomer(ctx, "customer-1")
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("error: store failure", func(t *testing.T) {
		q, repo, _ := newBookingQueries(t)
		repo.EXPECT().FindByCustomerID(gomock.Any(), "customer-1").
			Return(nil, infra.WrapRepoErr("query failed", errors.New("io error")))

		_, err := q.ListByCustomer(ctx, "customer-1")
		assert.ErrorIs(t, err, errs.ErrStorageFailure)
	})
}
