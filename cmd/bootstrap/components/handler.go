package components

import (
	"loyalty-coupon-api/internal/handler"
	"loyalty-coupon-api/internal/handler/api"
	"loyalty-coupon-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCompanyHandler,
		api.NewRuleHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
