package components

import (
	"workhive/internal/infra/db"
	"workhive/internal/infra/memstore"
	"workhive/internal/infra/readstore"
	"workhive/internal/infra/repository"
	"workhive/internal/usecase/commands"
	"workhive/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	NewTxStarter,
	// The cart session store backs both the command and query sides.
	fx.Annotate(
		memstore.NewCartStore,
		fx.As(new(commands.CartStore)),
		fx.As(new(queries.CartReader)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewWorkspaceReadStore,
			fx.As(new(queries.WorkspaceReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.IntervalReadStore)),
			fx.As(new(commands.IntervalRepository)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewWorkspaceRepository,
			fx.As(new(commands.WorkspaceRepository)),
		),
		fx.Annotate(
			repository.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewTxStarter(pool *pgxpool.Pool) repository.TxStarter {
	return pool
}
