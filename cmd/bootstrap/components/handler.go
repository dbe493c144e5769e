package components

import (
	"booking-core/internal/handler"
	"booking-core/internal/handler/api"
	"booking-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewUnitHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		func(orders *api.OrderHandler, units *api.UnitHandler, admin *api.AdminHandler) handler.Handlers {
			return handler.Handlers{Orders: orders, Units: units, Admin: admin}
		},
	),
	fx.Invoke(handler.NewRouter),
)
