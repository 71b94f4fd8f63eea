package components

import (
	"campushub/internal/pkg/clock"
	"campushub/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewLabUseCase,
		usecase.NewRoomUseCase,
		usecase.NewLibraryUseCase,
		usecase.NewSweeperUseCase,
		usecase.NewTokenValidator,
	),
)
