package components

import (
	"lng-loading/internal/handler"
	"lng-loading/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewStationHandler,
		api.NewCustomerHandler,
		api.NewSlotHandler,
		api.NewReservationHandler,
		api.NewDashboardHandler,
	),
	fx.Invoke(handler.NewRouter),
)
