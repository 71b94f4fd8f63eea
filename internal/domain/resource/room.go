package resource

import (
	"github.com/google/uuid"
)

// Room carries two independent flags: isActive soft-deletes the room,
// isBookable suspends new bookings without retiring it.
type Room struct {
	id         uuid.UUID
	roomID     string
	roomType   string
	capacity   int
	location   string
	department string
	isActive   bool
	isBookable bool
}

func NewRoom(roomID, roomType string, capacity int, location, department string) *Room {
	return &Room{
		id:         uuid.New(),
		roomID:     roomID,
		roomType:   roomType,
		capacity:   capacity,
		location:   location,
		department: department,
		isActive:   true,
		isBookable: true,
	}
}

func ReconstructRoom(
	id uuid.UUID,
	roomID, roomType string,
	capacity int,
	location, department string,
	isActive, isBookable bool,
) *Room {
	return &Room{
		id:         id,
		roomID:     roomID,
		roomType:   roomType,
		capacity:   capacity,
		location:   location,
		department: department,
		isActive:   isActive,
		isBookable: isBookable,
	}
}

func (r *Room) AcceptsBookings() bool {
	return r.isActive && r.isBookable
}

func (r *Room) ID() uuid.UUID      { return r.id }
func (r *Room) RoomID() string     { return r.roomID }
func (r *Room) RoomType() string   { return r.roomType }
func (r *Room) Capacity() int      { return r.capacity }
func (r *Room) Location() string   { return r.location }
func (r *Room) Department() string { return r.department }
func (r *Room) IsActive() bool     { return r.isActive }
func (r *Room) IsBookable() bool   { return r.isBookable }
