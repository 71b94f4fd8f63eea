package repository

import (
	"context"

	"campushub/internal/domain/resource"
	"campushub/internal/infra"
	"campushub/internal/infra/db"

	"github.com/google/uuid"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(pool db.DBTX) *RoomRepository {
	return &RoomRepository{db: pool}
}

const createRoomSQL = `
INSERT INTO rooms (id, room_id, room_type, capacity, location, department, is_active, is_bookable)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *RoomRepository) Create(ctx context.Context, room *resource.Room) error {
	_, err := r.db.Exec(ctx, createRoomSQL,
		room.ID(), room.RoomID(), room.RoomType(), room.Capacity(), room.Location(), room.Department(),
		room.IsActive(), room.IsBookable())
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

const findRoomByRoomIDSQL = `
SELECT id, room_id, room_type, capacity, location, department, is_active, is_bookable
FROM rooms
WHERE room_id = $1`

func (r *RoomRepository) FindByRoomID(ctx context.Context, roomID string) (*resource.Room, error) {
	return scanRoom(r.db.QueryRow(ctx, findRoomByRoomIDSQL, roomID))
}

const deactivateRoomSQL = `
UPDATE rooms SET is_active = FALSE, updated_at = now() WHERE room_id = $1 AND is_active`

func (r *RoomRepository) Deactivate(ctx context.Context, roomID string) error {
	tag, err := r.db.Exec(ctx, deactivateRoomSQL, roomID)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found or already inactive", nil, infra.KindNotFound)
	}
	return nil
}

const suspendRoomBookingSQL = `
UPDATE rooms SET is_bookable = FALSE, updated_at = now() WHERE room_id = $1 AND is_active`

func (r *RoomRepository) SuspendBooking(ctx context.Context, roomID string) error {
	tag, err := r.db.Exec(ctx, suspendRoomBookingSQL, roomID)
	if err != nil {
		return infra.WrapRepoErr("failed to suspend room booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

const listRoomsSQL = `
SELECT id, room_id, room_type, capacity, location, department, is_active, is_bookable
FROM rooms
ORDER BY room_id`

func (r *RoomRepository) List(ctx context.Context) ([]*resource.Room, error) {
	rows, err := r.db.Query(ctx, listRoomsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*resource.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, room)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}

func scanRoom(row rowScanner) (*resource.Room, error) {
	var (
		id         uuid.UUID
		roomID     string
		roomType   string
		capacity   int
		location   string
		department string
		isActive   bool
		isBookable bool
	)
	if err := row.Scan(&id, &roomID, &roomType, &capacity, &location, &department, &isActive, &isBookable); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan room", err)
	}

	return resource.ReconstructRoom(id, roomID, roomType, capacity, location, department, isActive, isBookable), nil
}
