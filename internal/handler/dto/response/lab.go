package response

import (
	"time"

	"campushub/internal/domain/resource"
	"campushub/internal/usecase/view"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EquipmentBookingResponse struct {
	ID              uuid.UUID `json:"id"`
	BookingNumber   int64     `json:"bookingNumber"`
	EquipmentID     uuid.UUID `json:"equipmentId"`
	EquipmentNumber int64     `json:"equipmentNumber"`
	EquipmentName   string    `json:"equipmentName"`
	BookedBy        uuid.UUID `json:"bookedBy"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromEquipmentBookingView(v *view.EquipmentBookingView) *EquipmentBookingResponse {
	resp := &EquipmentBookingResponse{}
	_ = copier.Copy(resp, v)
	return resp
}

func FromEquipmentBookingViews(views []*view.EquipmentBookingView) []*EquipmentBookingResponse {
	result := make([]*EquipmentBookingResponse, len(views))
	for i, v := range views {
		result[i] = FromEquipmentBookingView(v)
	}
	return result
}

type EquipmentResponse struct {
	ID              uuid.UUID `json:"id"`
	EquipmentNumber int64     `json:"equipmentNumber"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	LabName         string    `json:"labName"`
	Location        string    `json:"location"`
	MaintainedBy    uuid.UUID `json:"maintainedBy"`
	Status          string    `json:"status"`
}

func FromEquipment(e *resource.Equipment) *EquipmentResponse {
	return &EquipmentResponse{
		ID:              e.ID(),
		EquipmentNumber: e.EquipmentNumber(),
		Name:            e.Name(),
		Description:     e.Description(),
		LabName:         e.LabName(),
		Location:        e.Location(),
		MaintainedBy:    e.MaintainedBy(),
		Status:          string(e.Status()),
	}
}

func FromEquipmentList(list []*resource.Equipment) []*EquipmentResponse {
	result := make([]*EquipmentResponse, len(list))
	for i, e := range list {
		result[i] = FromEquipment(e)
	}
	return result
}

type FreeSlotResponse struct {
	FreeFrom time.Time `json:"freeFrom"`
	FreeTo   time.Time `json:"freeTo"`
}

func FromFreeSlots(slots []view.FreeSlot) []FreeSlotResponse {
	result := make([]FreeSlotResponse, len(slots))
	for i, s := range slots {
		result[i] = FreeSlotResponse{FreeFrom: s.FreeFrom, FreeTo: s.FreeTo}
	}
	return result
}
