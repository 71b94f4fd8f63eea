//go:build e2e

package room

import (
	"net/http"
	"testing"
	"time"

	"campushub/internal/domain/user"
	"campushub/tests/common/authtest"
	"campushub/tests/common/dbtest"
	"campushub/tests/common/helper"
	"campushub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type roomBody struct {
	ID         uuid.UUID `json:"id"`
	RoomID     string    `json:"roomId"`
	RoomType   string    `json:"roomType"`
	IsActive   bool      `json:"isActive"`
	IsBookable bool      `json:"isBookable"`
}

type roomBookingBody struct {
	ID            uuid.UUID `json:"id"`
	BookingNumber int64     `json:"bookingNumber"`
	RoomID        string    `json:"roomId"`
	BookedBy      uuid.UUID `json:"bookedBy"`
	Status        string    `json:"status"`
}

type RoomSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestRoomSuite(t *testing.T) {
	suite.Run(t, new(RoomSuite))
}

func (s *RoomSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *RoomSuite) adminToken() string {
	return s.jwt.GenerateToken(s.T(), uuid.New(), user.RoleAdmin)
}

func (s *RoomSuite) createRoom(roomID string) roomBody {
	w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/room", map[string]any{
		"room_id":   roomID,
		"room_type": "lecture-hall",
		"capacity":  120,
	}, s.adminToken())
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var r roomBody
	helper.DecodeBody(s.T(), w, &r)
	return r
}

func (s *RoomSuite) book(roomID string, start, end time.Time) (*roomBookingBody, int) {
	token := s.jwt.GenerateToken(s.T(), uuid.New(), user.RoleStudent)
	w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/roomBooking/bookings", map[string]any{
		"room_id":    roomID,
		"start_time": start.Format(time.RFC3339),
		"end_time":   end.Format(time.RFC3339),
	}, token)
	if w.Code != http.StatusCreated {
		return nil, w.Code
	}
	var b roomBookingBody
	helper.DecodeBody(s.T(), w, &b)
	return &b, w.Code
}

// nextWeekday returns the first occurrence of day strictly after from.
func nextWeekday(from time.Time, day time.Weekday) time.Time {
	d := (int(day) - int(from.Weekday()) + 7) % 7
	if d == 0 {
		d = 7
	}
	return from.AddDate(0, 0, d)
}

func (s *RoomSuite) TestRoomBooking() {
	s.Run("weekly timetable blocks clashing bookings", func() {
		room := s.createRoom("LH-101")

		facultyToken := s.jwt.GenerateToken(s.T(), uuid.New(), user.RoleFaculty)
		w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/timetable/entries", map[string]any{
			"room_id":     room.RoomID,
			"day_of_week": int(time.Monday),
			"start_time":  "09:00",
			"end_time":    "11:00",
			"subject":     "Algorithms",
		}, facultyToken)
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		monday := nextWeekday(time.Now().UTC(), time.Monday)
		inLecture := time.Date(monday.Year(), monday.Month(), monday.Day(), 9, 30, 0, 0, time.UTC)
		_, code := s.book(room.RoomID, inLecture, inLecture.Add(time.Hour))
		s.Equal(http.StatusConflict, code)

		afterLecture := time.Date(monday.Year(), monday.Month(), monday.Day(), 11, 0, 0, 0, time.UTC)
		booked, code := s.book(room.RoomID, afterLecture, afterLecture.Add(time.Hour))
		s.Require().Equal(http.StatusCreated, code)
		s.Equal("active", booked.Status)
	})

	s.Run("overlapping bookings are refused until cancelled", func() {
		room := s.createRoom("SEM-2")
		start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)

		first, code := s.book(room.RoomID, start, start.Add(2*time.Hour))
		s.Require().Equal(http.StatusCreated, code)

		_, code = s.book(room.RoomID, start.Add(time.Hour), start.Add(3*time.Hour))
		s.Equal(http.StatusConflict, code)

		ownerToken := s.jwt.GenerateToken(s.T(), first.BookedBy, user.RoleStudent)
		w := helper.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/roomBooking/bookings/"+first.ID.String()+"/cancel", nil, ownerToken)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		_, code = s.book(room.RoomID, start.Add(time.Hour), start.Add(3*time.Hour))
		s.Equal(http.StatusCreated, code)
	})

	s.Run("suspended and retired rooms take no bookings", func() {
		room := s.createRoom("LH-201")
		start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)

		w := helper.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/room/"+room.RoomID+"/suspend", nil, s.adminToken())
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

		_, code := s.book(room.RoomID, start, start.Add(time.Hour))
		s.Equal(http.StatusConflict, code)

		w = helper.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/room/"+room.RoomID, nil, s.adminToken())
		s.Require().Equal(http.StatusNoContent, w.Code)

		_, code = s.book(room.RoomID, start, start.Add(time.Hour))
		s.Equal(http.StatusConflict, code)
	})

	s.Run("duplicate room id is rejected", func() {
		dbtest.CreateTestRoom(s.T(), s.DB, "LH-301", "lecture-hall", 120)

		w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/room", map[string]any{
			"room_id":   "LH-301",
			"room_type": "seminar",
			"capacity":  30,
		}, s.adminToken())
		s.Equal(http.StatusConflict, w.Code)
	})
}
