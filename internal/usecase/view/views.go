// Package view holds read models returned to handlers. Repositories fill
// them directly from joined queries; the write side works with domain
// entities instead.
package view

import (
	"time"

	"github.com/google/uuid"
)

type EquipmentBookingView struct {
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

type RoomBookingView struct {
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

type IssueView struct {
	ID              uuid.UUID  `json:"id"`
	IssueNumber     int64      `json:"issueNumber"`
	AccessionNumber string     `json:"accessionNumber"`
	BookTitle       string     `json:"bookTitle"`
	UserID          uuid.UUID  `json:"userId"`
	IssuedAt        time.Time  `json:"issuedAt"`
	DueAt           time.Time  `json:"dueAt"`
	ReturnedAt      *time.Time `json:"returnedAt,omitempty"`
	Status          string     `json:"status"`
	FineAmount      int64      `json:"fineAmount"`
}

type ReturnReceipt struct {
	IssueNumber     int64     `json:"issueNumber"`
	AccessionNumber string    `json:"accessionNumber"`
	FineAmount      int64     `json:"fineAmount"`
	ReturnedAt      time.Time `json:"returnedAt"`
}

type FreeSlot struct {
	FreeFrom time.Time `json:"freeFrom"`
	FreeTo   time.Time `json:"freeTo"`
}
