//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"vehicle-booking/internal/infra"
	"vehicle-booking/internal/infra/readstore"
	"vehicle-booking/internal/infra/sqlc"
	"vehicle-booking/tests/common/builder"
	readstoremock "vehicle-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func newReadStore(t *testing.T) (*readstore.BookingReadStore, *readstoremock.MockBookingQueries, sqlc.DBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingQueries(ctrl)
	db := &mockDBTX{}
	return readstore.NewBookingReadStore(mockQueries, db), mockQueries, db
}

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row maps to view", func(t *testing.T) {
		store, mockQueries, db := newReadStore(t)
		row := builder.NewBookingBuilder().BuildInfra()

		mockQueries.EXPECT().GetBookingByID(ctx, db, row.ID).Return(row, nil)

		view, err := store.FindByID(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, view.ID)
		assert.Equal(t, row.VehicleID, view.VehicleID)
		assert.Equal(t, row.CustomerID, view.CustomerID)
		assert.Equal(t, row.Status, view.Status)
		assert.Equal(t, row.StartDate.Time, view.StartDate)
		assert.Equal(t, row.EndDate.Time, view.EndDate)
		assert.Nil(t, view.ActivatedAt)
		assert.Nil(t, view.FinishedAt)
		assert.Nil(t, view.CanceledAt)
	})

	t.Run("error: no rows maps to not found", func(t *testing.T) {
		store, mockQueries, db := newReadStore(t)
		id := uuid.New()

		mockQueries.EXPECT().GetBookingByID(ctx, db, id).Return(sqlc.Booking{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: database failure", func(t *testing.T) {
		store, mockQueries, db := newReadStore(t)
		id := uuid.New()

		mockQueries.EXPECT().GetBookingByID(ctx, db, id).
			Return(sqlc.Booking{}, errors.New("connection reset"))

		_, err := store.FindByID(ctx, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows map to list items", func(t *testing.T) {
		store, mockQueries, db := newReadStore(t)
		rows := []sqlc.Booking{
			builder.NewBookingBuilder().BuildInfra(),
			builder.NewBookingBuilder().BuildInfra(),
		}

		mockQueries.EXPECT().ListBookings(ctx, db).Return(rows, nil)

		items, err := store.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, rows[0].ID, items[0].ID)
		assert.Equal(t, rows[1].ID, items[1].ID)
	})

	t.Run("success: empty result", func(t *testing.T) {
		store, mockQueries, db := newReadStore(t)
		mockQueries.EXPECT().ListBookings(ctx, db).Return([]sqlc.Booking{}, nil)

		items, err := store.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("error: database failure", func(t *testing.T) {
		store, mockQueries, db := newReadStore(t)
		mockQueries.EXPECT().ListBookings(ctx, db).Return(nil, errors.New("connection reset"))

		_, err := store.FindAll(ctx)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_FindByCustomerID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store, mockQueries, db := newReadStore(t)
		rows := []sqlc.Booking{builder.NewBookingBuilder().BuildInfra()}

		mockQueries.EXPECT().ListBookingsByCustomerID(ctx, db, "customer-1").Return(rows, nil)

		items, err := store.FindByCustomerID(ctx, "customer-1")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, rows[0].CustomerID, items[0].CustomerID)
	})

	t.Run("error: database failure", func(t *testing.T) {
		store, mockQueries, db := newReadStore(t)
		mockQueries.EXPECT().ListBookingsByCustomerID(ctx, db, "customer-1").
			Return(nil, errors.New("connection reset"))

		_, err := store.FindByCustomerID(ctx, "customer-1")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
