//go:build e2e

package lab

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
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

type equipmentBody struct {
	ID              uuid.UUID `json:"id"`
	EquipmentNumber int64     `json:"equipmentNumber"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
}

type bookingBody struct {
	ID              uuid.UUID `json:"id"`
	BookingNumber   int64     `json:"bookingNumber"`
	EquipmentNumber int64     `json:"equipmentNumber"`
	BookedBy        uuid.UUID `json:"bookedBy"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Status          string    `json:"status"`
}

type freeSlotBody struct {
	FreeFrom time.Time `json:"freeFrom"`
	FreeTo   time.Time `json:"freeTo"`
}

type LabSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestLabSuite(t *testing.T) {
	suite.Run(t, new(LabSuite))
}

func (s *LabSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *LabSuite) labAdminToken() string {
	return s.jwt.GenerateToken(s.T(), uuid.New(), user.RoleLabAdmin)
}

func (s *LabSuite) studentToken(id uuid.UUID) string {
	return s.jwt.GenerateToken(s.T(), id, user.RoleStudent)
}

func (s *LabSuite) createEquipment(name string) equipmentBody {
	w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/lab/equipment", map[string]any{
		"name":     name,
		"lab_name": "Signals Lab",
	}, s.labAdminToken())
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var eq equipmentBody
	helper.DecodeBody(s.T(), w, &eq)
	return eq
}

func (s *LabSuite) book(token string, number int64, start, end time.Time) (*bookingBody, int) {
	w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/lab/bookings", map[string]any{
		"equipment_number": number,
		"start_time":       start.Format(time.RFC3339),
		"end_time":         end.Format(time.RFC3339),
	}, token)
	if w.Code != http.StatusCreated {
		return nil, w.Code
	}
	var b bookingBody
	helper.DecodeBody(s.T(), w, &b)
	return &b, w.Code
}

func (s *LabSuite) TestEquipmentBooking() {
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)

	s.Run("booking lifecycle", func() {
		eq := s.createEquipment("Oscilloscope")
		student := uuid.New()
		token := s.studentToken(student)

		created, code := s.book(token, eq.EquipmentNumber, start, start.Add(time.Hour))
		s.Require().Equal(http.StatusCreated, code)
		s.Equal("active", created.Status)
		s.Equal(student, created.BookedBy)
		s.Positive(created.BookingNumber)

		w := helper.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/lab/bookings/"+created.ID.String(), nil, token)
		s.Equal(http.StatusOK, w.Code)

		// An overlapping slot is refused, a back-to-back one is not.
		_, code = s.book(token, eq.EquipmentNumber, start.Add(30*time.Minute), start.Add(90*time.Minute))
		s.Equal(http.StatusConflict, code)

		_, code = s.book(token, eq.EquipmentNumber, start.Add(time.Hour), start.Add(2*time.Hour))
		s.Equal(http.StatusCreated, code)

		w = helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/lab/bookings/"+created.ID.String()+"/cancel", nil, token)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		var cancelled bookingBody
		helper.DecodeBody(s.T(), w, &cancelled)
		s.Equal("cancelled", cancelled.Status)

		// Cancelling frees the slot for someone else.
		_, code = s.book(s.studentToken(uuid.New()), eq.EquipmentNumber, start, start.Add(time.Hour))
		s.Equal(http.StatusCreated, code)

		w = helper.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/lab/bookings", nil, token)
		s.Require().Equal(http.StatusOK, w.Code)
		var mine []bookingBody
		helper.DecodeBody(s.T(), w, &mine)
		s.Len(mine, 2)
	})

	s.Run("free slots reflect active bookings", func() {
		// Seeded directly rather than through the admin API.
		const number = int64(501)
		dbtest.CreateTestEquipment(s.T(), s.DB, number, "Signal Generator", "available")
		token := s.studentToken(uuid.New())

		_, code := s.book(token, number, start.Add(2*time.Hour), start.Add(3*time.Hour))
		s.Require().Equal(http.StatusCreated, code)

		from := start
		to := start.Add(8 * time.Hour)
		w := helper.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/lab/equipment/"+itoa(number)+"/freeSlots?from="+from.Format(time.RFC3339)+"&to="+to.Format(time.RFC3339),
			nil, token)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		var slots []freeSlotBody
		helper.DecodeBody(s.T(), w, &slots)
		s.Require().Len(slots, 2)
		s.True(slots[0].FreeFrom.Equal(from))
		s.True(slots[0].FreeTo.Equal(start.Add(2 * time.Hour)))
		s.True(slots[1].FreeFrom.Equal(start.Add(3 * time.Hour)))
		s.True(slots[1].FreeTo.Equal(to))
	})

	s.Run("maintenance blocks new bookings", func() {
		eq := s.createEquipment("Spectrum Analyzer")

		w := helper.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/lab/equipment/"+itoa(eq.EquipmentNumber)+"/status",
			map[string]any{"status": "maintenance"}, s.labAdminToken())
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		_, code := s.book(s.studentToken(uuid.New()), eq.EquipmentNumber, start, start.Add(time.Hour))
		s.Equal(http.StatusConflict, code)
	})

	s.Run("concurrent requests for one slot admit exactly one", func() {
		eq := s.createEquipment("Laser Cutter")

		body, err := json.Marshal(map[string]any{
			"equipment_number": eq.EquipmentNumber,
			"start_time":       start.Format(time.RFC3339),
			"end_time":         start.Add(time.Hour).Format(time.RFC3339),
		})
		s.Require().NoError(err)

		const workers = 8
		tokens := make([]string, workers)
		for i := range tokens {
			tokens[i] = s.studentToken(uuid.New())
		}

		codes := make(chan int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := httptest.NewRequest(http.MethodPost, "/api/lab/bookings", bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+tokens[i])
				w := httptest.NewRecorder()
				s.Router.ServeHTTP(w, req)
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		var created, conflicted int
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		s.Equal(1, created)
		s.Equal(workers-1, conflicted)
	})

	s.Run("authentication and authorization", func() {
		w := helper.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/lab/bookings", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)

		expired := s.jwt.CreateExpiredToken(s.T(), uuid.New(), user.RoleStudent)
		w = helper.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/lab/bookings", nil, expired)
		s.Equal(http.StatusUnauthorized, w.Code)

		// Students cannot register equipment.
		w = helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/lab/equipment", map[string]any{
			"name":     "Multimeter",
			"lab_name": "Signals Lab",
		}, s.studentToken(uuid.New()))
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
