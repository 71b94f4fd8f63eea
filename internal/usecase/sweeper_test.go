//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campushub/internal/pkg/clock"
	"campushub/internal/usecase"
	usecasemock "campushub/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type sweeperMocks struct {
	equipment   *usecasemock.MockEquipmentSweepRepository
	labBooking  *usecasemock.MockEquipmentBookingSweepRepository
	roomBooking *usecasemock.MockRoomBookingSweepRepository
	issue       *usecasemock.MockIssueSweepRepository
}

func newSweeper(t *testing.T, now time.Time) (usecase.SweeperUseCase, sweeperMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := sweeperMocks{
		equipment:   usecasemock.NewMockEquipmentSweepRepository(ctrl),
		labBooking:  usecasemock.NewMockEquipmentBookingSweepRepository(ctrl),
		roomBooking: usecasemock.NewMockRoomBookingSweepRepository(ctrl),
		issue:       usecasemock.NewMockIssueSweepRepository(ctrl),
	}
	uc := usecase.NewSweeperUseCase(m.equipment, m.labBooking, m.roomBooking, m.issue, clock.NewMockClock(now))
	return uc, m
}

func TestSweep_AllPassesShareOneClockReading(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	uc, m := newSweeper(t, now)

	m.equipment.EXPECT().MarkInUse(ctx, now).Return(int64(0), nil)
	m.labBooking.EXPECT().CompleteEnded(ctx, now).Return(nil, nil)
	m.roomBooking.EXPECT().ExpireEnded(ctx, now).Return(int64(0), nil)
	m.issue.EXPECT().PromoteOverdue(ctx, now).Return(int64(0), nil)

	assert.NoError(t, uc.Sweep(ctx))
}

func TestSweep_ReleasesEquipmentOnlyForCompletedBookings(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("completed bookings trigger a release", func(t *testing.T) {
		uc, m := newSweeper(t, now)
		touched := []uuid.UUID{uuid.New(), uuid.New()}

		m.equipment.EXPECT().MarkInUse(ctx, now).Return(int64(1), nil)
		m.labBooking.EXPECT().CompleteEnded(ctx, now).Return(touched, nil)
		m.equipment.EXPECT().ReleaseIdle(ctx, touched, now).Return(int64(2), nil)
		m.roomBooking.EXPECT().ExpireEnded(ctx, now).Return(int64(0), nil)
		m.issue.EXPECT().PromoteOverdue(ctx, now).Return(int64(0), nil)

		assert.NoError(t, uc.Sweep(ctx))
	})

	t.Run("no completed bookings means no release call", func(t *testing.T) {
		uc, m := newSweeper(t, now)

		m.equipment.EXPECT().MarkInUse(ctx, now).Return(int64(0), nil)
		m.labBooking.EXPECT().CompleteEnded(ctx, now).Return(nil, nil)
		m.roomBooking.EXPECT().ExpireEnded(ctx, now).Return(int64(0), nil)
		m.issue.EXPECT().PromoteOverdue(ctx, now).Return(int64(0), nil)

		assert.NoError(t, uc.Sweep(ctx))
	})
}

func TestSweep_FailingPassDoesNotStopTheOthers(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	uc, m := newSweeper(t, now)

	markErr := errors.New("mark in-use failed")
	expireErr := errors.New("expire failed")

	m.equipment.EXPECT().MarkInUse(ctx, now).Return(int64(0), markErr)
	m.labBooking.EXPECT().CompleteEnded(ctx, now).Return(nil, nil)
	m.roomBooking.EXPECT().ExpireEnded(ctx, now).Return(int64(0), expireErr)
	m.issue.EXPECT().PromoteOverdue(ctx, now).Return(int64(3), nil)

	err := uc.Sweep(ctx)
	assert.ErrorIs(t, err, markErr)
	assert.ErrorIs(t, err, expireErr)
}

func TestSweep_CompleteEndedFailureSkipsRelease(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	uc, m := newSweeper(t, now)

	completeErr := errors.New("complete failed")

	m.equipment.EXPECT().MarkInUse(ctx, now).Return(int64(0), nil)
	m.labBooking.EXPECT().CompleteEnded(ctx, now).Return(nil, completeErr)
	m.roomBooking.EXPECT().ExpireEnded(ctx, now).Return(int64(0), nil)
	m.issue.EXPECT().PromoteOverdue(ctx, now).Return(int64(0), nil)

	err := uc.Sweep(ctx)
	assert.ErrorIs(t, err, completeErr)
}

func TestSweep_ReleaseFailureIsCollected(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	uc, m := newSweeper(t, now)

	releaseErr := errors.New("release failed")
	touched := []uuid.UUID{uuid.New()}

	m.equipment.EXPECT().MarkInUse(ctx, now).Return(int64(0), nil)
	m.labBooking.EXPECT().CompleteEnded(ctx, now).Return(touched, nil)
	m.equipment.EXPECT().ReleaseIdle(ctx, touched, now).Return(int64(0), releaseErr)
	m.roomBooking.EXPECT().ExpireEnded(ctx, now).Return(int64(0), nil)
	m.issue.EXPECT().PromoteOverdue(ctx, now).Return(int64(0), nil)

	err := uc.Sweep(ctx)
	assert.ErrorIs(t, err, releaseErr)
}
