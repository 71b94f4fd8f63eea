package bootstrap

import (
	"context"
	"log/slog"

	"campushub/internal/pkg/config"
	"campushub/internal/sweeper"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Provide(
		sweeper.New,
	),
	fx.Invoke(
		StartSweeper,
	),
)

func StartSweeper(lc fx.Lifecycle, s *sweeper.Sweeper, cfg config.Config) {
	if !cfg.Sweeper.Enabled {
		slog.Info("sweeper disabled by configuration")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
