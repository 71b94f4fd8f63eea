// Package sweeper runs the periodic reconciliation loop that moves
// time-derived statuses forward: equipment activation and release, room
// booking expiry and overdue loan promotion.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"campushub/internal/pkg/config"
	"campushub/internal/usecase"
)

type Sweeper struct {
	uc       usecase.SweeperUseCase
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func New(uc usecase.SweeperUseCase, cfg config.SweeperConfig) *Sweeper {
	return &Sweeper{
		uc:       uc,
		interval: cfg.Interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the loop. An immediate sweep runs first so state is fresh
// right after boot, then one per tick.
func (s *Sweeper) Start() {
	go s.run()
}

func (s *Sweeper) run() {
	defer close(s.done)

	slog.Info("sweeper started", "interval", s.interval)

	ctx := context.Background()
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			slog.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	// Per-pass failures are logged inside; the error here only means at
	// least one pass was skipped this cycle.
	if err := s.uc.Sweep(ctx); err != nil {
		slog.Warn("sweep cycle completed with failures", "error", err)
	}
}

// Stop signals the loop and waits for the in-flight sweep to finish.
func (s *Sweeper) Stop(ctx context.Context) error {
	close(s.stop)
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
