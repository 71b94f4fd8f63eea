package request

import (
	"time"

	"campushub/internal/domain/booking"
	"campushub/internal/domain/resource"
	"campushub/internal/domain/timetable"
)

type CreateRoomBookingRequest struct {
	RoomID    string    `json:"room_id" binding:"required,max=50"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

func (r CreateRoomBookingRequest) ToSlot() (booking.TimeSlot, error) {
	return booking.NewTimeSlot(r.StartTime, r.EndTime)
}

type CreateRoomRequest struct {
	RoomID     string `json:"room_id" binding:"required,max=50"`
	RoomType   string `json:"room_type" binding:"required,max=50"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
	Location   string `json:"location" binding:"max=200"`
	Department string `json:"department" binding:"max=200"`
}

func (r CreateRoomRequest) ToDomain() *resource.Room {
	return resource.NewRoom(r.RoomID, r.RoomType, r.Capacity, r.Location, r.Department)
}

type CreateTimetableEntryRequest struct {
	RoomID    string `json:"room_id" binding:"required,max=50"`
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Subject   string `json:"subject" binding:"required,max=200"`
}

func (r CreateTimetableEntryRequest) ToDomain() (*timetable.Entry, error) {
	return timetable.NewEntry(r.RoomID, time.Weekday(r.DayOfWeek), r.StartTime, r.EndTime, r.Subject)
}
