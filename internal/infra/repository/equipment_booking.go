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

type EquipmentBookingRepository struct {
	db db.DBTX
}

func NewEquipmentBookingRepository(pool db.DBTX) *EquipmentBookingRepository {
	return &EquipmentBookingRepository{db: pool}
}

const createEquipmentBookingSQL = `
INSERT INTO equipment_bookings (id, booking_number, equipment_id, booked_by, start_time, end_time, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *EquipmentBookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	if tx == nil {
		tx = r.db
	}

	equipmentID, err := uuid.Parse(b.ResourceKey())
	if err != nil {
		return errs.Wrap(err, "booking resource key is not an equipment id")
	}

	_, err = tx.Exec(ctx, createEquipmentBookingSQL,
		b.ID(), b.Number(), equipmentID, b.BookedBy(), b.Slot().Start(), b.Slot().End(), b.Status())
	if err != nil {
		return infra.WrapRepoErr("failed to create equipment booking", err)
	}
	return nil
}

// LockOverlapping locks active bookings that overlap the requested slot
// (half-open rule) so the conflict check and the insert are serialized with
// concurrent requests for the same equipment.
const lockOverlappingEquipmentBookingsSQL = `
SELECT count(*) FROM (
    SELECT id FROM equipment_bookings
    WHERE equipment_id = $1
      AND status = 'active'
      AND start_time < $3
      AND end_time > $2
    FOR UPDATE
) locked`

func (r *EquipmentBookingRepository) LockOverlapping(ctx context.Context, tx db.DBTX, equipmentID uuid.UUID, slot booking.TimeSlot) (bool, error) {
	if tx == nil {
		tx = r.db
	}

	var count int
	err := tx.QueryRow(ctx, lockOverlappingEquipmentBookingsSQL, equipmentID, slot.Start(), slot.End()).Scan(&count)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check equipment booking overlap", err)
	}
	return count > 0, nil
}

const findEquipmentBookingByIDSQL = `
SELECT id, booking_number, equipment_id, booked_by, start_time, end_time, status, created_at, updated_at
FROM equipment_bookings
WHERE id = $1`

func (r *EquipmentBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return scanEquipmentBooking(r.db.QueryRow(ctx, findEquipmentBookingByIDSQL, id))
}

const cancelEquipmentBookingSQL = `
UPDATE equipment_bookings SET status = 'cancelled', updated_at = now() WHERE id = $1`

func (r *EquipmentBookingRepository) Cancel(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	tag, err := r.db.Exec(ctx, cancelEquipmentBookingSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to cancel equipment booking", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr("equipment booking not found", nil, infra.KindNotFound)
	}
	return r.FindByID(ctx, id)
}

const activeEquipmentSlotsSQL = `
SELECT start_time, end_time
FROM equipment_bookings
WHERE equipment_id = $1
  AND status = 'active'
  AND start_time < $3
  AND end_time > $2
ORDER BY start_time`

// ActiveSlots returns the active booking intervals intersecting the window,
// for free-slot computation.
func (r *EquipmentBookingRepository) ActiveSlots(ctx context.Context, equipmentID uuid.UUID, window booking.TimeSlot) ([]booking.TimeSlot, error) {
	rows, err := r.db.Query(ctx, activeEquipmentSlotsSQL, equipmentID, window.Start(), window.End())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active equipment slots", err)
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

const listEquipmentBookingsByUserSQL = `
SELECT b.id, b.booking_number, b.equipment_id, e.equipment_number, e.name, b.booked_by,
       b.start_time, b.end_time, b.status, b.created_at
FROM equipment_bookings b
JOIN equipment e ON e.id = b.equipment_id
WHERE b.booked_by = $1
ORDER BY b.created_at DESC`

func (r *EquipmentBookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*view.EquipmentBookingView, error) {
	return r.queryViews(ctx, listEquipmentBookingsByUserSQL, userID)
}

const listActiveEquipmentBookingsSQL = `
SELECT b.id, b.booking_number, b.equipment_id, e.equipment_number, e.name, b.booked_by,
       b.start_time, b.end_time, b.status, b.created_at
FROM equipment_bookings b
JOIN equipment e ON e.id = b.equipment_id
WHERE b.status = 'active'
ORDER BY b.start_time`

func (r *EquipmentBookingRepository) ListActive(ctx context.Context) ([]*view.EquipmentBookingView, error) {
	return r.queryViews(ctx, listActiveEquipmentBookingsSQL)
}

const findEquipmentBookingViewSQL = `
SELECT b.id, b.booking_number, b.equipment_id, e.equipment_number, e.name, b.booked_by,
       b.start_time, b.end_time, b.status, b.created_at
FROM equipment_bookings b
JOIN equipment e ON e.id = b.equipment_id
WHERE b.id = $1`

func (r *EquipmentBookingRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*view.EquipmentBookingView, error) {
	views, err := r.queryViews(ctx, findEquipmentBookingViewSQL, id)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("equipment booking not found", nil, infra.KindNotFound)
	}
	return views[0], nil
}

// Sweeper pass: complete active bookings whose end has passed, reporting the
// touched equipment so the release pass can reconcile derived status.
const completeEndedEquipmentBookingsSQL = `
UPDATE equipment_bookings
SET status = 'completed', updated_at = now()
WHERE status = 'active' AND end_time <= $1
RETURNING equipment_id`

func (r *EquipmentBookingRepository) CompleteEnded(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, completeEndedEquipmentBookingsSQL, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to complete ended equipment bookings", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan completed booking equipment id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate completed bookings", err)
	}
	return ids, nil
}

func (r *EquipmentBookingRepository) queryViews(ctx context.Context, sql string, args ...any) ([]*view.EquipmentBookingView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query equipment bookings", err)
	}
	defer rows.Close()

	var result []*view.EquipmentBookingView
	for rows.Next() {
		v := &view.EquipmentBookingView{}
		err := rows.Scan(&v.ID, &v.BookingNumber, &v.EquipmentID, &v.EquipmentNumber, &v.EquipmentName,
			&v.BookedBy, &v.StartTime, &v.EndTime, &v.Status, &v.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan equipment booking view", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate equipment booking views", err)
	}
	return result, nil
}

func scanEquipmentBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id          uuid.UUID
		number      int64
		equipmentID uuid.UUID
		bookedBy    uuid.UUID
		start       time.Time
		end         time.Time
		status      string
		createdAt   time.Time
		updatedAt   time.Time
	)
	if err := row.Scan(&id, &number, &equipmentID, &bookedBy, &start, &end, &status, &createdAt, &updatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan equipment booking", err)
	}

	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking has invalid slot")
	}

	return booking.ReconstructBooking(
		id, number, booking.KindEquipment, equipmentID.String(), bookedBy, slot,
		booking.Status(status), createdAt, updatedAt,
	), nil
}
