package components

import (
	"vehicle-booking/internal/handler"
	"vehicle-booking/internal/handler/api"
	"vehicle-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
