package components

import (
	"booking-core/internal/infra/readstore"
	sqlc "booking-core/internal/infra/sqlc/generated"
	"booking-core/internal/infra/uow"
	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderViewQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// Unit
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UnitViewQueries)),
		),
		fx.Annotate(
			readstore.NewUnitReadStore,
			fx.As(new(queries.UnitReadStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q, cfg.DB.TxMaxRetries)
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
