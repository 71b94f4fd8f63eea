package api

import (
	"errors"
	"net/http"
	"strconv"

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

type LabHandler struct {
	labUseCase usecase.LabUseCase
	clock      clock.Clock
	cfg        config.BookingConfig
}

func NewLabHandler(labUseCase usecase.LabUseCase, clock clock.Clock, cfg config.BookingConfig) *LabHandler {
	return &LabHandler{
		labUseCase: labUseCase,
		clock:      clock,
		cfg:        cfg,
	}
}

// @Summary Book lab equipment
// @Description Book a piece of lab equipment for a time slot
// @Tags lab
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLabBookingRequest true "Booking request"
// @Success 201 {object} resdto.EquipmentBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lab/bookings [post]
func (h *LabHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateLabBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	v, err := h.labUseCase.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Equipment not found",
			})
		case errors.Is(err, usecase.ErrEquipmentUnderMaintenance):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Equipment is under maintenance",
			})
		case errors.Is(err, usecase.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time slot",
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

	c.JSON(http.StatusCreated, resdto.FromEquipmentBookingView(v))
}

// @Summary Cancel lab booking
// @Description Cancel an equipment booking
// @Tags lab
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.EquipmentBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lab/bookings/{id}/cancel [post]
func (h *LabHandler) CancelBooking(c *gin.Context) {
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

	v, err := h.labUseCase.CancelBooking(c.Request.Context(), id, userID, role)
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

	c.JSON(http.StatusOK, resdto.FromEquipmentBookingView(v))
}

// @Summary Get lab booking
// @Tags lab
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.EquipmentBookingResponse
// @Failure 404 {object} map[string]string
// @Router /lab/bookings/{id} [get]
func (h *LabHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	v, err := h.labUseCase.GetBooking(c.Request.Context(), id)
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

	c.JSON(http.StatusOK, resdto.FromEquipmentBookingView(v))
}

// @Summary List own lab bookings
// @Tags lab
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EquipmentBookingResponse
// @Router /lab/bookings [get]
func (h *LabHandler) ListMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.labUseCase.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipmentBookingViews(views))
}

// @Summary List active lab bookings
// @Tags lab
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EquipmentBookingResponse
// @Router /lab/active [get]
func (h *LabHandler) ListActiveBookings(c *gin.Context) {
	views, err := h.labUseCase.ListActiveBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipmentBookingViews(views))
}

// @Summary Free slots for equipment
// @Description List the gaps in which the equipment is free within a window
// @Tags lab
// @Produce json
// @Security BearerAuth
// @Param number path int true "Equipment number"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {array} resdto.FreeSlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lab/equipment/{number}/freeSlots [get]
func (h *LabHandler) FreeSlots(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid equipment number",
		})
		return
	}

	window, err := h.bindWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time window",
		})
		return
	}

	slots, err := h.labUseCase.FreeSlots(c.Request.Context(), number, window)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Equipment not found",
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

// @Summary Register equipment
// @Tags lab
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEquipmentRequest true "Equipment"
// @Success 201 {object} resdto.EquipmentResponse
// @Failure 400 {object} map[string]string
// @Router /lab/equipment [post]
func (h *LabHandler) AddEquipment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateEquipmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	equipment, err := h.labUseCase.AddEquipment(c.Request.Context(), req, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEquipment(equipment))
}

// @Summary Update equipment status
// @Description Manual status override, including maintenance
// @Tags lab
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param number path int true "Equipment number"
// @Param request body reqdto.UpdateEquipmentStatusRequest true "New status"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lab/equipment/{number}/status [patch]
func (h *LabHandler) UpdateEquipmentStatus(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid equipment number",
		})
		return
	}

	var req reqdto.UpdateEquipmentStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	equipment, err := h.labUseCase.UpdateEquipmentStatus(c.Request.Context(), number, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Equipment not found",
			})
		case errors.Is(err, usecase.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid equipment status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipment(equipment))
}

// @Summary List equipment
// @Tags lab
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EquipmentResponse
// @Router /lab/equipment [get]
func (h *LabHandler) ListEquipment(c *gin.Context) {
	list, err := h.labUseCase.ListEquipment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipmentList(list))
}

// bindWindow reads the optional from/to query params, defaulting to the
// configured look-ahead starting now.
func (h *LabHandler) bindWindow(c *gin.Context) (booking.TimeSlot, error) {
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
