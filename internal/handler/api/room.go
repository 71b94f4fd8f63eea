package api

import (
	"errors"
	"net/http"

	"campushub/internal/domain/booking"
	reqdto "campushub/internal/handler/dto/request"
	resdto "campushub/internal/handler/dto/response"
	"campushub/internal/handler/middleware"
	"campushub/internal/pkg/clock"
	"campushub/internal/pkg/config"
	"campushub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomUseCase usecase.RoomUseCase
	clock       clock.Clock
	cfg         config.BookingConfig
}

func NewRoomHandler(roomUseCase usecase.RoomUseCase, clock clock.Clock, cfg config.BookingConfig) *RoomHandler {
	return &RoomHandler{
		roomUseCase: roomUseCase,
		clock:       clock,
		cfg:         cfg,
	}
}

// @Summary Book a room
// @Description Book a room for a time slot; rejects overlaps with bookings and timetable entries
// @Tags roomBooking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomBookingRequest true "Booking request"
// @Success 201 {object} resdto.RoomBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /roomBooking/bookings [post]
func (h *RoomHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateRoomBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	v, err := h.roomUseCase.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, usecase.ErrRoomNotBookable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room is not accepting bookings",
			})
		case errors.Is(err, usecase.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time slot",
			})
		case errors.Is(err, usecase.ErrTimetableClash):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot clashes with a timetable entry",
			})
		case errors.Is(err, usecase.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot conflicts with an existing booking",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomBookingView(v))
}

// @Summary Cancel room booking
// @Tags roomBooking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.RoomBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /roomBooking/bookings/{id}/cancel [post]
func (h *RoomHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	v, err := h.roomUseCase.CancelBooking(c.Request.Context(), id, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomBookingView(v))
}

// @Summary Get room booking
// @Tags roomBooking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.RoomBookingResponse
// @Failure 404 {object} map[string]string
// @Router /roomBooking/bookings/{id} [get]
func (h *RoomHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	v, err := h.roomUseCase.GetBooking(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomBookingView(v))
}

// @Summary List own room bookings
// @Tags roomBooking
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomBookingResponse
// @Router /roomBooking/bookings [get]
func (h *RoomHandler) ListMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.roomUseCase.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomBookingViews(views))
}

// @Summary List active room bookings
// @Tags roomBooking
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomBookingResponse
// @Router /roomBooking/active [get]
func (h *RoomHandler) ListActiveBookings(c *gin.Context) {
	views, err := h.roomUseCase.ListActiveBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomBookingViews(views))
}

// @Summary Register a room
// @Tags room
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /room [post]
func (h *RoomHandler) AddRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	room, err := h.roomUseCase.AddRoom(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateRoom):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room ID already registered",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoom(room))
}

// @Summary List rooms
// @Tags room
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomResponse
// @Router /room [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomUseCase.ListRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRooms(rooms))
}

// @Summary Deactivate a room
// @Description Retire the room; existing bookings are left to expire
// @Tags room
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /room/{roomId} [delete]
func (h *RoomHandler) DeactivateRoom(c *gin.Context) {
	if err := h.roomUseCase.DeactivateRoom(c.Request.Context(), c.Param("roomId")); err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Suspend bookings for a room
// @Description Keep the room active but stop accepting new bookings
// @Tags room
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /room/{roomId}/suspend [post]
func (h *RoomHandler) SuspendRoomBooking(c *gin.Context) {
	if err := h.roomUseCase.SuspendRoomBooking(c.Request.Context(), c.Param("roomId")); err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Free slots for a room
// @Tags room
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {array} resdto.FreeSlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /room/{roomId}/freeSlots [get]
func (h *RoomHandler) FreeSlots(c *gin.Context) {
	window, err := h.bindWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time window",
		})
		return
	}

	slots, err := h.roomUseCase.FreeSlots(c.Request.Context(), c.Param("roomId"), window)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFreeSlots(slots))
}

// @Summary Add timetable entry
// @Description Register a fixed weekly occupancy for a room
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTimetableEntryRequest true "Timetable entry"
// @Success 201 {object} resdto.TimetableEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /timetable/entries [post]
func (h *RoomHandler) AddTimetableEntry(c *gin.Context) {
	var req reqdto.CreateTimetableEntryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entry, err := h.roomUseCase.AddTimetableEntry(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, usecase.ErrInvalidClockTime):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Times must be HH:MM with start before end",
			})
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Times must be HH:MM with start before end",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTimetableEntry(entry))
}

// @Summary List timetable entries for a room
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Param room_id query string true "Room ID"
// @Success 200 {array} resdto.TimetableEntryResponse
// @Failure 400 {object} map[string]string
// @Router /timetable/entries [get]
func (h *RoomHandler) ListTimetable(c *gin.Context) {
	roomID := c.Query("room_id")
	if roomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "room_id query parameter required",
		})
		return
	}

	entries, err := h.roomUseCase.ListTimetable(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTimetableEntries(entries))
}

func (h *RoomHandler) bindWindow(c *gin.Context) (booking.TimeSlot, error) {
	if c.Query("from") == "" && c.Query("to") == "" {
		now := h.clock.Now()
		return booking.NewTimeSlot(now, now.Add(h.cfg.FreeSlotWindow))
	}

	var req reqdto.FreeSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return booking.TimeSlot{}, err
	}
	return req.ToWindow()
}
