package components

import (
	"rosterd/internal/infra/db"
	"rosterd/internal/infra/readstore"
	"rosterd/internal/infra/uow"
	"rosterd/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Command side runs through the unit of work; only readstores see
		// the pool directly.
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewShiftReadStore,
			fx.As(new(queries.ShiftReadStore)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
