package repository

import (
	"context"
	"time"

	"campushub/internal/domain/booking"
	"campushub/internal/infra"
	"campushub/internal/infra/db"
	"campushub/internal/pkg/errs"
	"campushub/internal/usecase/view"

	"github.com/google/uuid"
)

type RoomBookingRepository struct {
	db db.DBTX
}

func NewRoomBookingRepository(pool db.DBTX) *RoomBookingRepository {
	return &RoomBookingRepository{db: pool}
}

const createRoomBookingSQL = `
INSERT INTO room_bookings (id, booking_number, room_id, booked_by, start_time, end_time, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *RoomBookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	if tx == nil {
		tx = r.db
	}

	_, err := tx.Exec(ctx, createRoomBookingSQL,
		b.ID(), b.Number(), b.ResourceKey(), b.BookedBy(), b.Slot().Start(), b.Slot().End(), b.Status())
	if err != nil {
		return infra.WrapRepoErr("failed to create room booking", err)
	}
	return nil
}

// LockOverlapping locks active bookings that overlap the requested slot
// (half-open rule) so the conflict check and the insert are serialized with
// concurrent requests for the same room.
const lockOverlappingRoomBookingsSQL = `
SELECT count(*) FROM (
    SELECT id FROM room_bookings
    WHERE room_id = $1
      AND status = 'active'
      AND start_time < $3
      AND end_time > $2
    FOR UPDATE
) locked`

func (r *RoomBookingRepository) LockOverlapping(ctx context.Context, tx db.DBTX, roomID string, slot booking.TimeSlot) (bool, error) {
	if tx == nil {
		tx = r.db
	}

	var count int
	err := tx.QueryRow(ctx, lockOverlappingRoomBookingsSQL, roomID, slot.Start(), slot.End()).Scan(&count)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room booking overlap", err)
	}
	return count > 0, nil
}

const findRoomBookingByIDSQL = `
SELECT id, booking_number, room_id, booked_by, start_time, end_time, status, created_at, updated_at
FROM room_bookings
WHERE id = $1`

func (r *RoomBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return scanRoomBooking(r.db.QueryRow(ctx, findRoomBookingByIDSQL, id))
}

const cancelRoomBookingSQL = `
UPDATE room_bookings SET status = 'cancelled', updated_at = now() WHERE id = $1`

func (r *RoomBookingRepository) Cancel(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	tag, err := r.db.Exec(ctx, cancelRoomBookingSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to cancel room booking", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr("room booking not found", nil, infra.KindNotFound)
	}
	return r.FindByID(ctx, id)
}

const activeRoomSlotsSQL = `
SELECT start_time, end_time
FROM room_bookings
WHERE room_id = $1
  AND status = 'active'
  AND start_time < $3
  AND end_time > $2
ORDER BY start_time`

// ActiveSlots returns the active booking intervals intersecting the window,
// for free-slot computation.
func (r *RoomBookingRepository) ActiveSlots(ctx context.Context, roomID string, window booking.TimeSlot) ([]booking.TimeSlot, error) {
	rows, err := r.db.Query(ctx, activeRoomSlotsSQL, roomID, window.Start(), window.End())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active room slots", err)
	}
	defer rows.Close()

	var slots []booking.TimeSlot
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking slot", err)
		}
		slot, err := booking.NewTimeSlot(start, end)
		if err != nil {
			return nil, errs.Wrap(err, "stored booking has invalid slot")
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking slots", err)
	}
	return slots, nil
}

const listRoomBookingsByUserSQL = `
SELECT b.id, b.booking_number, b.room_id, r.room_type, b.booked_by,
       b.start_time, b.end_time, b.status, b.created_at
FROM room_bookings b
JOIN rooms r ON r.room_id = b.room_id
WHERE b.booked_by = $1
ORDER BY b.created_at DESC`

func (r *RoomBookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*view.RoomBookingView, error) {
	return r.queryViews(ctx, listRoomBookingsByUserSQL, userID)
}

const listActiveRoomBookingsSQL = `
SELECT b.id, b.booking_number, b.room_id, r.room_type, b.booked_by,
       b.start_time, b.end_time, b.status, b.created_at
FROM room_bookings b
JOIN rooms r ON r.room_id = b.room_id
WHERE b.status = 'active'
ORDER BY b.start_time`

func (r *RoomBookingRepository) ListActive(ctx context.Context) ([]*view.RoomBookingView, error) {
	return r.queryViews(ctx, listActiveRoomBookingsSQL)
}

const findRoomBookingViewSQL = `
SELECT b.id, b.booking_number, b.room_id, r.room_type, b.booked_by,
       b.start_time, b.end_time, b.status, b.created_at
FROM room_bookings b
JOIN rooms r ON r.room_id = b.room_id
WHERE b.id = $1`

func (r *RoomBookingRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*view.RoomBookingView, error) {
	views, err := r.queryViews(ctx, findRoomBookingViewSQL, id)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("room booking not found", nil, infra.KindNotFound)
	}
	return views[0], nil
}

// Sweeper pass: expire active room bookings whose end has passed. Cancelled
// and already-expired rows are never touched.
const expireEndedRoomBookingsSQL = `
UPDATE room_bookings
SET status = 'expired', updated_at = now()
WHERE status = 'active' AND end_time <= $1`

func (r *RoomBookingRepository) ExpireEnded(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, expireEndedRoomBookingsSQL, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire ended room bookings", err)
	}
	return tag.RowsAffected(), nil
}

func (r *RoomBookingRepository) queryViews(ctx context.Context, sql string, args ...any) ([]*view.RoomBookingView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query room bookings", err)
	}
	defer rows.Close()

	var result []*view.RoomBookingView
	for rows.Next() {
		v := &view.RoomBookingView{}
		err := rows.Scan(&v.ID, &v.BookingNumber, &v.RoomID, &v.RoomType,
			&v.BookedBy, &v.StartTime, &v.EndTime, &v.Status, &v.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room booking view", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room booking views", err)
	}
	return result, nil
}

func scanRoomBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id        uuid.UUID
		number    int64
		roomID    string
		bookedBy  uuid.UUID
		start     time.Time
		end       time.Time
		status    string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &number, &roomID, &bookedBy, &start, &end, &status, &createdAt, &updatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan room booking", err)
	}

	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking has invalid slot")
	}

	return booking.ReconstructBooking(
		id, number, booking.KindRoom, roomID, bookedBy, slot,
		booking.Status(status), createdAt, updatedAt,
	), nil
}
