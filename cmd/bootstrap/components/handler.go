package components

import (
	"qrlink/internal/handler"
	"qrlink/internal/handler/api"
	"qrlink/internal/handler/middleware"
	"qrlink/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQRCodeHandler,
		api.NewScanHandler,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
