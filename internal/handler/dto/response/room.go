package response

import (
	"time"

	"campushub/internal/domain/resource"
	"campushub/internal/domain/timetable"
	"campushub/internal/usecase/view"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomBookingResponse struct {
	ID            uuid.UUID `json:"id"`
	BookingNumber int64     `json:"bookingNumber"`
	RoomID        string    `json:"roomId"`
	RoomType      string    `json:"roomType"`
	BookedBy      uuid.UUID `json:"bookedBy"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromRoomBookingView(v *view.RoomBookingView) *RoomBookingResponse {
	resp := &RoomBookingResponse{}
	_ = copier.Copy(resp, v)
	return resp
}

func FromRoomBookingViews(views []*view.RoomBookingView) []*RoomBookingResponse {
	result := make([]*RoomBookingResponse, len(views))
	for i, v := range views {
		result[i] = FromRoomBookingView(v)
	}
	return result
}

type RoomResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomID     string    `json:"roomId"`
	RoomType   string    `json:"roomType"`
	Capacity   int       `json:"capacity"`
	Location   string    `json:"location"`
	Department string    `json:"department"`
	IsActive   bool      `json:"isActive"`
	IsBookable bool      `json:"isBookable"`
}

func FromRoom(r *resource.Room) *RoomResponse {
	return &RoomResponse{
		ID:         r.ID(),
		RoomID:     r.RoomID(),
		RoomType:   r.RoomType(),
		Capacity:   r.Capacity(),
		Location:   r.Location(),
		Department: r.Department(),
		IsActive:   r.IsActive(),
		IsBookable: r.IsBookable(),
	}
}

func FromRooms(rooms []*resource.Room) []*RoomResponse {
	result := make([]*RoomResponse, len(rooms))
	for i, r := range rooms {
		result[i] = FromRoom(r)
	}
	return result
}

type TimetableEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    string    `json:"roomId"`
	DayOfWeek int       `json:"dayOfWeek"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Subject   string    `json:"subject"`
}

func FromTimetableEntry(e *timetable.Entry) *TimetableEntryResponse {
	return &TimetableEntryResponse{
		ID:        e.ID(),
		RoomID:    e.RoomID(),
		DayOfWeek: int(e.DayOfWeek()),
		StartTime: timetable.FormatClockTime(e.StartMinutes()),
		EndTime:   timetable.FormatClockTime(e.EndMinutes()),
		Subject:   e.Subject(),
	}
}

func FromTimetableEntries(entries []*timetable.Entry) []*TimetableEntryResponse {
	result := make([]*TimetableEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = FromTimetableEntry(e)
	}
	return result
}
