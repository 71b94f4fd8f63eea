package request

import (
	"time"

	"campushub/internal/domain/booking"
	"campushub/internal/domain/resource"

	"github.com/google/uuid"
)

type CreateLabBookingRequest struct {
	EquipmentNumber int64     `json:"equipment_number" binding:"required"`
	StartTime       time.Time `json:"start_time" binding:"required"`
	EndTime         time.Time `json:"end_time" binding:"required"`
}

func (r CreateLabBookingRequest) ToSlot() (booking.TimeSlot, error) {
	return booking.NewTimeSlot(r.StartTime, r.EndTime)
}

type CreateEquipmentRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
	LabName     string `json:"lab_name" binding:"required,max=200"`
	Location    string `json:"location" binding:"max=200"`
}

func (r CreateEquipmentRequest) ToDomain(equipmentNumber int64, maintainedBy uuid.UUID) *resource.Equipment {
	return resource.NewEquipment(equipmentNumber, r.Name, r.Description, r.LabName, r.Location, maintainedBy)
}

type UpdateEquipmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available in-use maintenance"`
}

type FreeSlotsRequest struct {
	From time.Time `form:"from" binding:"required"`
	To   time.Time `form:"to" binding:"required"`
}

func (r FreeSlotsRequest) ToWindow() (booking.TimeSlot, error) {
	return booking.NewTimeSlot(r.From, r.To)
}
