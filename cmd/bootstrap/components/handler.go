package components

import (
	"campushub/internal/handler"
	"campushub/internal/handler/api"
	"campushub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLabHandler,
		api.NewRoomHandler,
		api.NewLibraryHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
