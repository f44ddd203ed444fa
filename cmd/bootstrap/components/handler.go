package components

import (
	"workhive/internal/handler"
	"workhive/internal/handler/api"
	"workhive/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWorkspaceHandler,
		api.NewAvailabilityHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
