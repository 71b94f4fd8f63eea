//go:build unit

package sweeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campushub/internal/pkg/config"
	"campushub/internal/sweeper"
	usecasemock "campushub/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweeper_RunsImmediatelyThenOnTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := usecasemock.NewMockSweeperUseCase(ctrl)

	swept := make(chan struct{}, 16)
	uc.EXPECT().Sweep(gomock.Any()).DoAndReturn(func(context.Context) error {
		swept <- struct{}{}
		return nil
	}).MinTimes(2)

	s := sweeper.New(uc, config.SweeperConfig{Interval: 10 * time.Millisecond})
	s.Start()

	// First sweep fires without waiting for a tick.
	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("no immediate sweep")
	}

	// And at least one more from the ticker.
	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("no periodic sweep")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}

func TestSweeper_KeepsRunningAfterFailedCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := usecasemock.NewMockSweeperUseCase(ctrl)

	swept := make(chan struct{}, 16)
	uc.EXPECT().Sweep(gomock.Any()).DoAndReturn(func(context.Context) error {
		swept <- struct{}{}
		return errors.New("a pass failed")
	}).MinTimes(2)

	s := sweeper.New(uc, config.SweeperConfig{Interval: 10 * time.Millisecond})
	s.Start()

	for range 2 {
		select {
		case <-swept:
		case <-time.After(time.Second):
			t.Fatal("sweeper stalled after a failure")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}

func TestSweeper_StopWaitsForLoopExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := usecasemock.NewMockSweeperUseCase(ctrl)
	uc.EXPECT().Sweep(gomock.Any()).Return(nil).AnyTimes()

	s := sweeper.New(uc, config.SweeperConfig{Interval: time.Hour})
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}
