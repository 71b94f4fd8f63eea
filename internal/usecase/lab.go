package usecase

import (
	"context"
	"errors"
	"log/slog"

	"campushub/internal/domain/booking"
	"campushub/internal/domain/resource"
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
	ErrBookingNotFound           = errors.New("booking not found")
	ErrEquipmentNotFound         = errors.New("equipment not found")
	ErrEquipmentUnderMaintenance = errors.New("equipment is under maintenance")
	ErrBookingConflict           = errors.New("time slot conflict")
	ErrInvalidTimeSlot           = errors.New("invalid time slot")
	ErrNotBookingOwner           = errors.New("booking belongs to another user")
	ErrInvalidStatus             = errors.New("invalid status")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

const counterLabBooking = "labBooking"

type EquipmentRepository interface {
	Create(ctx context.Context, tx db.DBTX, e *resource.Equipment) error
	FindByNumber(ctx context.Context, number int64) (*resource.Equipment, error)
	NextEquipmentNumber(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status resource.EquipmentStatus) error
	List(ctx context.Context) ([]*resource.Equipment, error)
}

type EquipmentBookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	LockOverlapping(ctx context.Context, tx db.DBTX, equipmentID uuid.UUID, slot booking.TimeSlot) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ActiveSlots(ctx context.Context, equipmentID uuid.UUID, window booking.TimeSlot) ([]booking.TimeSlot, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*view.EquipmentBookingView, error)
	ListActive(ctx context.Context) ([]*view.EquipmentBookingView, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*view.EquipmentBookingView, error)
}

type SequenceRepository interface {
	NextValue(ctx context.Context, tx db.DBTX, name string) (int64, error)
}

type LabUseCase interface {
	CreateBooking(ctx context.Context, req reqdto.CreateLabBookingRequest, userID uuid.UUID) (*view.EquipmentBookingView, error)
	CancelBooking(ctx context.Context, bookingID, userID uuid.UUID, role user.Role) (*view.EquipmentBookingView, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*view.EquipmentBookingView, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*view.EquipmentBookingView, error)
	ListActiveBookings(ctx context.Context) ([]*view.EquipmentBookingView, error)
	FreeSlots(ctx context.Context, equipmentNumber int64, window booking.TimeSlot) ([]view.FreeSlot, error)
	AddEquipment(ctx context.Context, req reqdto.CreateEquipmentRequest, maintainedBy uuid.UUID) (*resource.Equipment, error)
	UpdateEquipmentStatus(ctx context.Context, equipmentNumber int64, status string) (*resource.Equipment, error)
	ListEquipment(ctx context.Context) ([]*resource.Equipment, error)
}

type labUseCaseImpl struct {
	equipmentRepo EquipmentRepository
	bookingRepo   EquipmentBookingRepository
	sequenceRepo  SequenceRepository
	db            *pgxpool.Pool
	clock         clock.Clock
	cfg           config.BookingConfig
}

func NewLabUseCase(
	equipmentRepo EquipmentRepository,
	bookingRepo EquipmentBookingRepository,
	sequenceRepo SequenceRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
	cfg config.BookingConfig,
) LabUseCase {
	return &labUseCaseImpl{
		equipmentRepo: equipmentRepo,
		bookingRepo:   bookingRepo,
		sequenceRepo:  sequenceRepo,
		db:            db,
		clock:         clock,
		cfg:           cfg,
	}
}

func (u *labUseCaseImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateLabBookingRequest,
	userID uuid.UUID,
) (*view.EquipmentBookingView, error) {
	slot, err := req.ToSlot()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	equipment, err := u.equipmentRepo.FindByNumber(ctx, req.EquipmentNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, errs.Wrap(err, "failed to find equipment")
	}
	if !equipment.IsBookable() {
		return nil, ErrEquipmentUnderMaintenance
	}

	bookingID, err := u.createBookingTx(ctx, equipment, userID, slot)
	if err != nil {
		return nil, err
	}

	return u.bookingRepo.FindViewByID(ctx, bookingID)
}

// createBookingTx serializes the overlap check with concurrent requests by
// locking conflicting rows before inserting. The exclusion constraint on the
// table backstops the check; its violation surfaces as KindConflict.
func (u *labUseCaseImpl) createBookingTx(
	ctx context.Context,
	equipment *resource.Equipment,
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

	overlapping, err := u.bookingRepo.LockOverlapping(ctx, tx, equipment.ID(), slot)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if overlapping {
		return uuid.Nil, ErrBookingConflict
	}

	number, err := u.sequenceRepo.NextValue(ctx, tx, counterLabBooking)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b := booking.NewBooking(number, booking.KindEquipment, equipment.ID().String(), userID, slot)
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

// CancelBooking cancels regardless of the booking's current status, so a
// cancel that races the sweeper always wins and is never resurrected.
func (u *labUseCaseImpl) CancelBooking(
	ctx context.Context,
	bookingID, userID uuid.UUID,
	role user.Role,
) (*view.EquipmentBookingView, error) {
	b, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	if err := checkCancelOwnership(u.cfg, b.IsOwnedBy(userID), role, user.RoleLabAdmin); err != nil {
		return nil, err
	}

	if _, err := u.bookingRepo.Cancel(ctx, bookingID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.bookingRepo.FindViewByID(ctx, bookingID)
}

func (u *labUseCaseImpl) GetBooking(ctx context.Context, bookingID uuid.UUID) (*view.EquipmentBookingView, error) {
	v, err := u.bookingRepo.FindViewByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return v, nil
}

func (u *labUseCaseImpl) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*view.EquipmentBookingView, error) {
	views, err := u.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user bookings")
	}
	return views, nil
}

func (u *labUseCaseImpl) ListActiveBookings(ctx context.Context) ([]*view.EquipmentBookingView, error) {
	views, err := u.bookingRepo.ListActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list active bookings")
	}
	return views, nil
}

func (u *labUseCaseImpl) FreeSlots(ctx context.Context, equipmentNumber int64, window booking.TimeSlot) ([]view.FreeSlot, error) {
	equipment, err := u.equipmentRepo.FindByNumber(ctx, equipmentNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, errs.Wrap(err, "failed to find equipment")
	}

	booked, err := u.bookingRepo.ActiveSlots(ctx, equipment.ID(), window)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load booked slots")
	}

	return toFreeSlotViews(booking.CollectFreeSlots(window, booked)), nil
}

func (u *labUseCaseImpl) AddEquipment(
	ctx context.Context,
	req reqdto.CreateEquipmentRequest,
	maintainedBy uuid.UUID,
) (*resource.Equipment, error) {
	number, err := u.equipmentRepo.NextEquipmentNumber(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	equipment := req.ToDomain(number, maintainedBy)
	if err := u.equipmentRepo.Create(ctx, nil, equipment); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return equipment, nil
}

// UpdateEquipmentStatus is the manual override path. Setting maintenance
// makes the equipment unbookable until an admin sets it back; the sweeper
// never clears it.
func (u *labUseCaseImpl) UpdateEquipmentStatus(
	ctx context.Context,
	equipmentNumber int64,
	status string,
) (*resource.Equipment, error) {
	newStatus := resource.EquipmentStatus(status)
	if !newStatus.IsValid() {
		return nil, errs.Mark(resource.ErrInvalidEquipmentStatus, ErrInvalidStatus)
	}

	equipment, err := u.equipmentRepo.FindByNumber(ctx, equipmentNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, errs.Wrap(err, "failed to find equipment")
	}

	if err := u.equipmentRepo.UpdateStatus(ctx, nil, equipment.ID(), newStatus); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.equipmentRepo.FindByNumber(ctx, equipmentNumber)
}

func (u *labUseCaseImpl) ListEquipment(ctx context.Context) ([]*resource.Equipment, error) {
	list, err := u.equipmentRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list equipment")
	}
	return list, nil
}

func toFreeSlotViews(slots []booking.Slot) []view.FreeSlot {
	result := make([]view.FreeSlot, len(slots))
	for i, s := range slots {
		result[i] = view.FreeSlot{FreeFrom: s.FreeFrom, FreeTo: s.FreeTo}
	}
	return result
}

// checkCancelOwnership gates cancellation on ownership when the deployment
// opts in. Admins and the relevant facility admin role always pass.
func checkCancelOwnership(cfg config.BookingConfig, isOwner bool, role user.Role, facilityAdmin user.Role) error {
	if !cfg.EnforceOwnership || isOwner {
		return nil
	}
	if role == user.RoleAdmin || role == facilityAdmin {
		return nil
	}
	return ErrNotBookingOwner
}
