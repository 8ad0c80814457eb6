package components

import (
	"lng-loading/internal/pkg/clock"
	"lng-loading/internal/usecase/commands"
	"lng-loading/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewStationCommands,
		commands.NewCustomerCommands,
		commands.NewSlotCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewStationQueries,
		queries.NewCustomerQueries,
		queries.NewSlotQueries,
		queries.NewReservationQueries,
		queries.NewDashboardQueries,
	),
)
