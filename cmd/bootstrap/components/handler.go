package components

import (
	"rosterd/internal/handler"
	"rosterd/internal/handler/api"
	"rosterd/internal/handler/middleware"
	"rosterd/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewShiftHandler,
		api.NewAssignmentHandler,
		api.NewRequestHandler,
		func(svc *jwt.Service) middleware.TokenValidator {
			return svc
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
