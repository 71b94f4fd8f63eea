package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"campushub/internal/domain/booking"
	"campushub/internal/domain/resource"
	"campushub/internal/domain/timetable"
	"campushub/internal/domain/user"
	reqdto "campushub/internal/handler/dto/request"
	"campushub/internal/infra"
	"campushub/internal/infra/db"
	"campushub/internal/pkg/clock"
	"campushub/internal/pkg/config"
	"campushub/internal/pkg/errs"
	"campushub/internal/usecase/view"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNotBookable  = errors.New("room is not accepting bookings")
	ErrTimetableClash   = errors.New("slot clashes with a timetable entry")
	ErrInvalidClockTime = errors.New("invalid clock time")
	ErrDuplicateRoom    = errors.New("room id already registered")
)

const counterRoomBooking = "roomBooking"

type RoomRepository interface {
	Create(ctx context.Context, room *resource.Room) error
	FindByRoomID(ctx context.Context, roomID string) (*resource.Room, error)
	Deactivate(ctx context.Context, roomID string) error
	SuspendBooking(ctx context.Context, roomID string) error
	List(ctx context.Context) ([]*resource.Room, error)
}

type RoomBookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	LockOverlapping(ctx context.Context, tx db.DBTX, roomID string, slot booking.TimeSlot) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ActiveSlots(ctx context.Context, roomID string, window booking.TimeSlot) ([]booking.TimeSlot, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*view.RoomBookingView, error)
	ListActive(ctx context.Context) ([]*view.RoomBookingView, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*view.RoomBookingView, error)
}

type TimetableRepository interface {
	Create(ctx context.Context, e *timetable.Entry) error
	ListForRoomDay(ctx context.Context, roomID string, day time.Weekday) ([]*timetable.Entry, error)
	ListForRoom(ctx context.Context, roomID string) ([]*timetable.Entry, error)
}

type RoomUseCase interface {
	CreateBooking(ctx context.Context, req reqdto.CreateRoomBookingRequest, userID uuid.UUID) (*view.RoomBookingView, error)
	CancelBooking(ctx context.Context, bookingID, userID uuid.UUID, role user.Role) (*view.RoomBookingView, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*view.RoomBookingView, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*view.RoomBookingView, error)
	ListActiveBookings(ctx context.Context) ([]*view.RoomBookingView, error)
	FreeSlots(ctx context.Context, roomID string, window booking.TimeSlot) ([]view.FreeSlot, error)
	AddRoom(ctx context.Context, req reqdto.CreateRoomRequest) (*resource.Room, error)
	DeactivateRoom(ctx context.Context, roomID string) error
	SuspendRoomBooking(ctx context.Context, roomID string) error
	ListRooms(ctx context.Context) ([]*resource.Room, error)
	AddTimetableEntry(ctx context.Context, req reqdto.CreateTimetableEntryRequest) (*timetable.Entry, error)
	ListTimetable(ctx context.Context, roomID string) ([]*timetable.Entry, error)
}

type roomUseCaseImpl struct {
	roomRepo      RoomRepository
	bookingRepo   RoomBookingRepository
	timetableRepo TimetableRepository
	sequenceRepo  SequenceRepository
	db            *pgxpool.Pool
	clock         clock.Clock
	cfg           config.BookingConfig
}

func NewRoomUseCase(
	roomRepo RoomRepository,
	bookingRepo RoomBookingRepository,
	timetableRepo TimetableRepository,
	sequenceRepo SequenceRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
	cfg config.BookingConfig,
) RoomUseCase {
	return &roomUseCaseImpl{
		roomRepo:      roomRepo,
		bookingRepo:   bookingRepo,
		timetableRepo: timetableRepo,
		sequenceRepo:  sequenceRepo,
		db:            db,
		clock:         clock,
		cfg:           cfg,
	}
}

func (u *roomUseCaseImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateRoomBookingRequest,
	userID uuid.UUID,
) (*view.RoomBookingView, error) {
	slot, err := req.ToSlot()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	room, err := u.roomRepo.FindByRoomID(ctx, req.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}
	if !room.AcceptsBookings() {
		return nil, ErrRoomNotBookable
	}

	if err := u.checkTimetableClash(ctx, room.RoomID(), slot); err != nil {
		return nil, err
	}

	bookingID, err := u.createBookingTx(ctx, room, userID, slot)
	if err != nil {
		return nil, err
	}

	return u.bookingRepo.FindViewByID(ctx, bookingID)
}

// checkTimetableClash rejects slots overlapping a recurring timetable entry
// on the same weekday. The comparison is within-day; a slot crossing
// midnight is only checked against its starting day.
func (u *roomUseCaseImpl) checkTimetableClash(ctx context.Context, roomID string, slot booking.TimeSlot) error {
	entries, err := u.timetableRepo.ListForRoomDay(ctx, roomID, slot.Start().Weekday())
	if err != nil {
		return errs.Wrap(err, "failed to load timetable entries")
	}
	if len(entries) == 0 {
		return nil
	}

	start, end := slot.Start(), slot.End()
	startMin := timetable.MinutesOfDay(start)
	endMin := timetable.MinutesOfDay(end)
	if start.Year() != end.Year() || start.YearDay() != end.YearDay() {
		// Crosses midnight; occupy the starting day through its end.
		endMin = 24 * 60
	}

	if timetable.AnyClash(entries, slot.Start().Weekday(), startMin, endMin) {
		return ErrTimetableClash
	}
	return nil
}

func (u *roomUseCaseImpl) createBookingTx(
	ctx context.Context,
	room *resource.Room,
	userID uuid.UUID,
	slot booking.TimeSlot,
) (uuid.UUID, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	overlapping, err := u.bookingRepo.LockOverlapping(ctx, tx, room.RoomID(), slot)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if overlapping {
		return uuid.Nil, ErrBookingConflict
	}

	number, err := u.sequenceRepo.NextValue(ctx, tx, counterRoomBooking)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b := booking.NewBooking(number, booking.KindRoom, room.RoomID(), userID, slot)
	if err := u.bookingRepo.Create(ctx, tx, b); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return uuid.Nil, ErrBookingConflict
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b.ID(), nil
}

func (u *roomUseCaseImpl) CancelBooking(
	ctx context.Context,
	bookingID, userID uuid.UUID,
	role user.Role,
) (*view.RoomBookingView, error) {
	b, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	if err := checkCancelOwnership(u.cfg, b.IsOwnedBy(userID), role, user.RoleFaculty); err != nil {
		return nil, err
	}

	if _, err := u.bookingRepo.Cancel(ctx, bookingID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.bookingRepo.FindViewByID(ctx, bookingID)
}

func (u *roomUseCaseImpl) GetBooking(ctx context.Context, bookingID uuid.UUID) (*view.RoomBookingView, error) {
	v, err := u.bookingRepo.FindViewByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return v, nil
}

func (u *roomUseCaseImpl) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*view.RoomBookingView, error) {
	views, err := u.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user bookings")
	}
	return views, nil
}

func (u *roomUseCaseImpl) ListActiveBookings(ctx context.Context) ([]*view.RoomBookingView, error) {
	views, err := u.bookingRepo.ListActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list active bookings")
	}
	return views, nil
}

func (u *roomUseCaseImpl) FreeSlots(ctx context.Context, roomID string, window booking.TimeSlot) ([]view.FreeSlot, error) {
	room, err := u.roomRepo.FindByRoomID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	booked, err := u.bookingRepo.ActiveSlots(ctx, room.RoomID(), window)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load booked slots")
	}

	return toFreeSlotViews(booking.CollectFreeSlots(window, booked)), nil
}

func (u *roomUseCaseImpl) AddRoom(ctx context.Context, req reqdto.CreateRoomRequest) (*resource.Room, error) {
	room := req.ToDomain()
	if err := u.roomRepo.Create(ctx, room); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateRoom
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return room, nil
}

func (u *roomUseCaseImpl) DeactivateRoom(ctx context.Context, roomID string) error {
	if err := u.roomRepo.Deactivate(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *roomUseCaseImpl) SuspendRoomBooking(ctx context.Context, roomID string) error {
	if err := u.roomRepo.SuspendBooking(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *roomUseCaseImpl) ListRooms(ctx context.Context) ([]*resource.Room, error) {
	rooms, err := u.roomRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}
	return rooms, nil
}

func (u *roomUseCaseImpl) AddTimetableEntry(ctx context.Context, req reqdto.CreateTimetableEntryRequest) (*timetable.Entry, error) {
	if _, err := u.roomRepo.FindByRoomID(ctx, req.RoomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	entry, err := req.ToDomain()
	if err != nil {
		if errors.Is(err, timetable.ErrInvalidClockTime) {
			return nil, errs.Mark(err, ErrInvalidClockTime)
		}
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := u.timetableRepo.Create(ctx, entry); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entry, nil
}

func (u *roomUseCaseImpl) ListTimetable(ctx context.Context, roomID string) ([]*timetable.Entry, error) {
	entries, err := u.timetableRepo.ListForRoom(ctx, roomID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list timetable entries")
	}
	return entries, nil
}
