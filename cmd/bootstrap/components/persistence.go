package components

import (
	"vehicle-booking/internal/infra/cache"
	"vehicle-booking/internal/infra/readstore"
	"vehicle-booking/internal/infra/sqlc"
	"vehicle-booking/internal/infra/uow"
	"vehicle-booking/internal/pkg/config"
	"vehicle-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			NewBookingListCache,
			fx.As(new(queries.ListCache)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewBookingListCache(client *redis.Client, cfg config.Config) *cache.BookingListCache {
	return cache.NewBookingListCache(client, cfg.Redis)
}
