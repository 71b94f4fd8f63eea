package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"campushub/internal/pkg/clock"

	"github.com/google/uuid"
)

// Set-based sweep passes; each is one conditional UPDATE.
type EquipmentSweepRepository interface {
	MarkInUse(ctx context.Context, now time.Time) (int64, error)
	ReleaseIdle(ctx context.Context, ids []uuid.UUID, now time.Time) (int64, error)
}

type EquipmentBookingSweepRepository interface {
	CompleteEnded(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

type RoomBookingSweepRepository interface {
	ExpireEnded(ctx context.Context, now time.Time) (int64, error)
}

type IssueSweepRepository interface {
	PromoteOverdue(ctx context.Context, now time.Time) (int64, error)
}

type SweeperUseCase interface {
	Sweep(ctx context.Context) error
}

type sweeperUseCaseImpl struct {
	equipmentRepo   EquipmentSweepRepository
	labBookingRepo  EquipmentBookingSweepRepository
	roomBookingRepo RoomBookingSweepRepository
	issueRepo       IssueSweepRepository
	clock           clock.Clock
}

func NewSweeperUseCase(
	equipmentRepo EquipmentSweepRepository,
	labBookingRepo EquipmentBookingSweepRepository,
	roomBookingRepo RoomBookingSweepRepository,
	issueRepo IssueSweepRepository,
	clock clock.Clock,
) SweeperUseCase {
	return &sweeperUseCaseImpl{
		equipmentRepo:   equipmentRepo,
		labBookingRepo:  labBookingRepo,
		roomBookingRepo: roomBookingRepo,
		issueRepo:       issueRepo,
		clock:           clock,
	}
}

// Sweep reconciles time-derived state in four passes sharing one clock
// reading, so a row is never judged against two different nows within a
// cycle. A failing pass is logged and skipped; the remaining passes still
// run. All passes are conditional updates, so user-initiated transitions
// such as cancellations are never overwritten.
func (u *sweeperUseCaseImpl) Sweep(ctx context.Context) error {
	now := u.clock.Now()
	var failures []error

	if n, err := u.equipmentRepo.MarkInUse(ctx, now); err != nil {
		slog.Error("sweep: mark equipment in-use failed", "error", err)
		failures = append(failures, err)
	} else if n > 0 {
		slog.Info("sweep: equipment marked in-use", "count", n)
	}

	if touched, err := u.labBookingRepo.CompleteEnded(ctx, now); err != nil {
		slog.Error("sweep: complete ended equipment bookings failed", "error", err)
		failures = append(failures, err)
	} else if len(touched) > 0 {
		slog.Info("sweep: equipment bookings completed", "count", len(touched))
		if n, err := u.equipmentRepo.ReleaseIdle(ctx, touched, now); err != nil {
			slog.Error("sweep: release idle equipment failed", "error", err)
			failures = append(failures, err)
		} else if n > 0 {
			slog.Info("sweep: equipment released", "count", n)
		}
	}

	if n, err := u.roomBookingRepo.ExpireEnded(ctx, now); err != nil {
		slog.Error("sweep: expire ended room bookings failed", "error", err)
		failures = append(failures, err)
	} else if n > 0 {
		slog.Info("sweep: room bookings expired", "count", n)
	}

	if n, err := u.issueRepo.PromoteOverdue(ctx, now); err != nil {
		slog.Error("sweep: promote overdue issues failed", "error", err)
		failures = append(failures, err)
	} else if n > 0 {
		slog.Info("sweep: issues promoted to overdue", "count", n)
	}

	return errors.Join(failures...)
}
