package components

import (
	"lng-loading/internal/infra"
	"lng-loading/internal/infra/readstore"
	"lng-loading/internal/infra/repository"
	"lng-loading/internal/usecase/commands"
	"lng-loading/internal/usecase/queries"

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
	NewTxBeginner,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewStationReadStore,
			fx.As(new(queries.StationReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewStationRepository,
			fx.As(new(commands.StationRepository)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repository.NewSlotRepository,
			fx.As(new(commands.SlotRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) commands.TxBeginner {
	return pool
}
