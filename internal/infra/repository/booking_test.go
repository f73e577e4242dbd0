//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vehicle-booking/internal/domain/booking"
	"vehicle-booking/internal/infra"
	"vehicle-booking/internal/infra/repository"
	"vehicle-booking/internal/infra/sqlc"
	"vehicle-booking/tests/common/builder"
	repositorymock "vehicle-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockDBTX stands in for a transaction handle; the mocked query layer never
// touches it.
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

func newRepo(t *testing.T) (*repository.BookingRepository, *repositorymock.MockBookingQueries, sqlc.DBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingQueries(ctrl)
	db := &mockDBTX{}
	return repository.NewBookingRepository(mockQueries, db), mockQueries, db
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		row := builder.NewBookingBuilder().BuildInfra()
		row.ID = b.ID()

		mockQueries.EXPECT().CreateBooking(ctx, db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Booking, error) {
				assert.Equal(t, b.ID(), arg.ID)
				assert.Equal(t, b.VehicleID(), arg.VehicleID)
				assert.Equal(t, b.CustomerID(), arg.CustomerID)
				assert.Equal(t, booking.StatusCreated.String(), arg.Status)
				return row, nil
			})

		created, err := repo.Create(ctx, b)
		require.NoError(t, err)
		assert.Equal(t, b.ID(), created.ID())
		// The returned aggregate carries what the database stored, not the input.
		assert.Equal(t, row.CreatedAt.Time, created.CreatedAt())
		assert.Equal(t, row.UpdatedAt.Time, created.UpdatedAt())
	})

	t.Run("error: database failure", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().CreateBooking(ctx, db, gomock.Any()).
			Return(sqlc.Booking{}, errors.New("connection reset"))

		created, err := repo.Create(ctx, b)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, created)
	})
}

func TestBookingRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row maps to domain aggregate", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		row := builder.NewBookingBuilder().BuildInfra()

		mockQueries.EXPECT().GetBookingByIDForUpdate(ctx, db, row.ID).Return(row, nil)

		b, err := repo.FindByIDForUpdate(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, b.ID())
		assert.Equal(t, row.VehicleID, b.VehicleID())
		assert.Equal(t, row.CustomerID, b.CustomerID())
		assert.Equal(t, booking.Status(row.Status), b.Status())
		assert.Equal(t, row.StartDate.Time, b.Dates().Start())
		assert.Equal(t, row.EndDate.Time, b.Dates().End())
	})

	t.Run("error: no rows maps to not found", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		id := uuid.New()

		mockQueries.EXPECT().GetBookingByIDForUpdate(ctx, db, id).Return(sqlc.Booking{}, pgx.ErrNoRows)

		_, err := repo.FindByIDForUpdate(ctx, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: database failure", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		id := uuid.New()

		mockQueries.EXPECT().GetBookingByIDForUpdate(ctx, db, id).
			Return(sqlc.Booking{}, errors.New("connection reset"))

		_, err := repo.FindByIDForUpdate(ctx, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingRepository_CountOverlapping(t *testing.T) {
	ctx := context.Background()
	dates, err := booking.NewDateRange(
		time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	t.Run("success: closed interval comparison order", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)

		mockQueries.EXPECT().CountOverlappingBookings(ctx, db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CountOverlappingBookingsParams) (int64, error) {
				assert.Equal(t, int64(42), arg.VehicleID)
				assert.ElementsMatch(t, []string{"CREATED", "ACTIVE"}, arg.Statuses)
				// start_date <= requested end, end_date >= requested start
				assert.Equal(t, dates.End(), arg.EndDate.Time)
				assert.Equal(t, dates.Start(), arg.StartDate.Time)
				return 2, nil
			})

		count, err := repo.CountOverlapping(ctx, 42, booking.BlockingStatuses(), dates)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("error: database failure", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)

		mockQueries.EXPECT().CountOverlappingBookings(ctx, db, gomock.Any()).
			Return(int64(0), errors.New("connection reset"))

		_, err := repo.CountOverlapping(ctx, 42, booking.BlockingStatuses(), dates)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingRepository_LockVehicle(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		mockQueries.EXPECT().AcquireVehicleLock(ctx, db, int64(42)).Return(nil)
		assert.NoError(t, repo.LockVehicle(ctx, 42))
	})

	t.Run("error: database failure", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		mockQueries.EXPECT().AcquireVehicleLock(ctx, db, int64(42)).Return(errors.New("connection reset"))

		err := repo.LockVehicle(ctx, 42)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingRepository_MarkTransitions(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	canceled := func(t *testing.T) *booking.Booking {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Cancel(today))
		return b
	}

	t.Run("success: canceled booking persists cancellation date", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		b := canceled(t)

		mockQueries.EXPECT().CancelBooking(ctx, db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CancelBookingParams) (int64, error) {
				assert.Equal(t, b.ID(), arg.ID)
				assert.Equal(t, today, arg.CanceledAt.Time)
				return 1, nil
			})

		assert.NoError(t, repo.MarkCanceled(ctx, b))
	})

	t.Run("error: zero rows updated maps to not found", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		b := canceled(t)

		mockQueries.EXPECT().CancelBooking(ctx, db, gomock.Any()).Return(int64(0), nil)

		err := repo.MarkCanceled(ctx, b)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: database failure on check-in", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.CheckIn(b.CustomerID(), today))

		mockQueries.EXPECT().CheckInBooking(ctx, db, gomock.Any()).
			Return(int64(0), errors.New("connection reset"))

		err = repo.MarkActive(ctx, b)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("success: check-out persists finish date", func(t *testing.T) {
		repo, mockQueries, db := newRepo(t)
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.CheckIn(b.CustomerID(), today))
		require.NoError(t, b.CheckOut(b.CustomerID(), today.AddDate(0, 0, 2)))

		mockQueries.EXPECT().CheckOutBooking(ctx, db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CheckOutBookingParams) (int64, error) {
				assert.Equal(t, b.ID(), arg.ID)
				assert.Equal(t, today.AddDate(0, 0, 2), arg.FinishedAt.Time)
				return 1, nil
			})

		assert.NoError(t, repo.MarkFinished(ctx, b))
	})
}
