package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyInactive = errors.New("booking is no longer active")
	ErrInvalidStatus   = errors.New("invalid booking status")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	// StatusCompleted terminates equipment bookings, StatusExpired room
	// bookings; both mean the slot's end has passed.
	StatusCompleted Status = "completed"
	StatusExpired   Status = "expired"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCancelled, StatusCompleted, StatusExpired:
		return true
	default:
		return false
	}
}

type Kind string

const (
	KindEquipment Kind = "equipment"
	KindRoom      Kind = "room"
)

// Booking is a reservation of a single resource for a time slot. The two
// resource kinds share the lifecycle and the conflict rule; kind-specific
// checks (timetable clash, equipment status) live with their usecases.
type Booking struct {
	id          uuid.UUID
	number      int64
	kind        Kind
	resourceKey string
	bookedBy    uuid.UUID
	slot        TimeSlot
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(number int64, kind Kind, resourceKey string, bookedBy uuid.UUID, slot TimeSlot) *Booking {
	return &Booking{
		id:          uuid.New(),
		number:      number,
		kind:        kind,
		resourceKey: resourceKey,
		bookedBy:    bookedBy,
		slot:        slot,
		status:      StatusActive,
	}
}

func ReconstructBooking(
	id uuid.UUID,
	number int64,
	kind Kind,
	resourceKey string,
	bookedBy uuid.UUID,
	slot TimeSlot,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		number:      number,
		kind:        kind,
		resourceKey: resourceKey,
		bookedBy:    bookedBy,
		slot:        slot,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

func (b *Booking) InProgressAt(now time.Time) bool {
	return b.status == StatusActive && b.slot.Contains(now)
}

func (b *Booking) HasEnded(now time.Time) bool {
	return !b.slot.End().After(now)
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.bookedBy == userID
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) Number() int64       { return b.number }
func (b *Booking) Kind() Kind          { return b.kind }
func (b *Booking) ResourceKey() string { return b.resourceKey }
func (b *Booking) BookedBy() uuid.UUID { return b.bookedBy }
func (b *Booking) Slot() TimeSlot      { return b.slot }
func (b *Booking) Status() Status      { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
