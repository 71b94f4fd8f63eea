//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"campushub/internal/domain/resource"
	"campushub/internal/domain/timetable"
	reqdto "campushub/internal/handler/dto/request"
	"campushub/internal/infra"
	"campushub/internal/pkg/clock"
	"campushub/internal/pkg/config"
	"campushub/internal/usecase"
	usecasemock "campushub/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type roomMocks struct {
	room      *usecasemock.MockRoomRepository
	booking   *usecasemock.MockRoomBookingRepository
	timetable *usecasemock.MockTimetableRepository
	sequence  *usecasemock.MockSequenceRepository
}

func newRoomUseCase(t *testing.T, cfg config.BookingConfig) (usecase.RoomUseCase, roomMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := roomMocks{
		room:      usecasemock.NewMockRoomRepository(ctrl),
		booking:   usecasemock.NewMockRoomBookingRepository(ctrl),
		timetable: usecasemock.NewMockTimetableRepository(ctrl),
		sequence:  usecasemock.NewMockSequenceRepository(ctrl),
	}
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	uc := usecase.NewRoomUseCase(m.room, m.booking, m.timetable, m.sequence, nil, clock.NewMockClock(now), cfg)
	return uc, m
}

func testRoom(roomID string, active, bookable bool) *resource.Room {
	return resource.ReconstructRoom(
		uuid.New(), roomID, "lecture-hall", 120, "Block A", "CSE", active, bookable,
	)
}

func TestRoomCreateBooking_Precondition(t *testing.T) {
	ctx := context.Background()
	// 2026-03-02 is a Monday.
	start := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	req := func(start, end time.Time) reqdto.CreateRoomBookingRequest {
		return reqdto.CreateRoomBookingRequest{RoomID: "LH-101", StartTime: start, EndTime: end}
	}

	t.Run("unknown room", func(t *testing.T) {
		uc, m := newRoomUseCase(t, config.BookingConfig{})
		m.room.EXPECT().FindByRoomID(ctx, "LH-101").Return(nil, notFoundErr())

		_, err := uc.CreateBooking(ctx, req(start, start.Add(time.Hour)), uuid.New())
		assert.ErrorIs(t, err, usecase.ErrRoomNotFound)
	})

	t.Run("suspended room is not bookable", func(t *testing.T) {
		uc, m := newRoomUseCase(t, config.BookingConfig{})
		m.room.EXPECT().FindByRoomID(ctx, "LH-101").Return(testRoom("LH-101", true, false), nil)

		_, err := uc.CreateBooking(ctx, req(start, start.Add(time.Hour)), uuid.New())
		assert.ErrorIs(t, err, usecase.ErrRoomNotBookable)
	})

	t.Run("deactivated room is not bookable", func(t *testing.T) {
		uc, m := newRoomUseCase(t, config.BookingConfig{})
		m.room.EXPECT().FindByRoomID(ctx, "LH-101").Return(testRoom("LH-101", false, true), nil)

		_, err := uc.CreateBooking(ctx, req(start, start.Add(time.Hour)), uuid.New())
		assert.ErrorIs(t, err, usecase.ErrRoomNotBookable)
	})

	t.Run("slot clashing with a timetable entry", func(t *testing.T) {
		uc, m := newRoomUseCase(t, config.BookingConfig{})
		entry, err := timetable.NewEntry("LH-101", time.Monday, "09:00", "11:00", "Algorithms")
		require.NoError(t, err)

		m.room.EXPECT().FindByRoomID(ctx, "LH-101").Return(testRoom("LH-101", true, true), nil)
		m.timetable.EXPECT().ListForRoomDay(ctx, "LH-101", time.Monday).Return([]*timetable.Entry{entry}, nil)

		_, err = uc.CreateBooking(ctx, req(start, start.Add(time.Hour)), uuid.New())
		assert.ErrorIs(t, err, usecase.ErrTimetableClash)
	})

	t.Run("slot crossing midnight occupies the starting day to its end", func(t *testing.T) {
		uc, m := newRoomUseCase(t, config.BookingConfig{})
		entry, err := timetable.NewEntry("LH-101", time.Monday, "22:00", "23:00", "Night Lab")
		require.NoError(t, err)

		m.room.EXPECT().FindByRoomID(ctx, "LH-101").Return(testRoom("LH-101", true, true), nil)
		m.timetable.EXPECT().ListForRoomDay(ctx, "LH-101", time.Monday).Return([]*timetable.Entry{entry}, nil)

		overnight := req(
			time.Date(2026, 3, 2, 21, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC),
		)
		_, err = uc.CreateBooking(ctx, overnight, uuid.New())
		assert.ErrorIs(t, err, usecase.ErrTimetableClash)
	})
}

func TestRoomAddRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uc, m := newRoomUseCase(t, config.BookingConfig{})
		m.room.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		room, err := uc.AddRoom(ctx, reqdto.CreateRoomRequest{
			RoomID:   "SEM-2",
			RoomType: "seminar",
			Capacity: 30,
		})
		require.NoError(t, err)
		assert.True(t, room.AcceptsBookings())
	})

	t.Run("duplicate room id", func(t *testing.T) {
		uc, m := newRoomUseCase(t, config.BookingConfig{})
		m.room.EXPECT().Create(ctx, gomock.Any()).
			Return(infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey))

		_, err := uc.AddRoom(ctx, reqdto.CreateRoomRequest{
			RoomID:   "SEM-2",
			RoomType: "seminar",
			Capacity: 30,
		})
		assert.ErrorIs(t, err, usecase.ErrDuplicateRoom)
	})
}

func TestRoomDeactivateAndSuspend(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivate unknown room", func(t *testing.T) {
		uc, m := newRoomUseCase(t, config.BookingConfig{})
		m.room.EXPECT().Deactivate(ctx, "LH-404").Return(notFoundErr())

		assert.ErrorIs(t, uc.DeactivateRoom(ctx, "LH-404"), usecase.ErrRoomNotFound)
	})

	t.Run("suspend unknown room", func(t *testing.T) {
		uc, m := newRoomUseCase(t, config.BookingConfig{})
		m.room.EXPECT().SuspendBooking(ctx, "LH-404").Return(notFoundErr())

		assert.ErrorIs(t, uc.SuspendRoomBooking(ctx, "LH-404"), usecase.ErrRoomNotFound)
	})
}

func TestRoomAddTimetableEntry(t *testing.T) {
	ctx := context.Background()

	req := reqdto.CreateTimetableEntryRequest{
		RoomID:    "LH-101",
		DayOfWeek: int(time.Monday),
		StartTime: "09:00",
		EndTime:   "10:30",
		Subject:   "Algorithms",
	}

	t.Run("success", func(t *testing.T) {
		uc, m := newRoomUseCase(t, config.BookingConfig{})
		m.room.EXPECT().FindByRoomID(ctx, "LH-101").Return(testRoom("LH-101", true, true), nil)
		m.timetable.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		entry, err := uc.AddTimetableEntry(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, time.Monday, entry.DayOfWeek())
		assert.Equal(t, 540, entry.StartMinutes())
	})

	t.Run("unknown room", func(t *testing.T) {
		uc, m := newRoomUseCase(t, config.BookingConfig{})
		m.room.EXPECT().FindByRoomID(ctx, "LH-101").Return(nil, notFoundErr())

		_, err := uc.AddTimetableEntry(ctx, req)
		assert.ErrorIs(t, err, usecase.ErrRoomNotFound)
	})

	t.Run("invalid clock time", func(t *testing.T) {
		uc, m := newRoomUseCase(t, config.BookingConfig{})
		m.room.EXPECT().FindByRoomID(ctx, "LH-101").Return(testRoom("LH-101", true, true), nil)

		bad := req
		bad.StartTime = "9am"
		_, err := uc.AddTimetableEntry(ctx, bad)
		assert.ErrorIs(t, err, usecase.ErrInvalidClockTime)
	})

	t.Run("inverted range", func(t *testing.T) {
		uc, m := newRoomUseCase(t, config.BookingConfig{})
		m.room.EXPECT().FindByRoomID(ctx, "LH-101").Return(testRoom("LH-101", true, true), nil)

		bad := req
		bad.StartTime, bad.EndTime = bad.EndTime, bad.StartTime
		_, err := uc.AddTimetableEntry(ctx, bad)
		assert.ErrorIs(t, err, usecase.ErrDomainValidationFailed)
	})
}
