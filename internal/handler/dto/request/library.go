package request

import (
	"github.com/google/uuid"
)

type IssueBookRequest struct {
	AccessionNumber string    `json:"accession_number" binding:"required,max=50"`
	UserID          uuid.UUID `json:"user_id" binding:"required"`
}

type ReturnBookRequest struct {
	AccessionNumber string `json:"accession_number" binding:"required,max=50"`
}

type AddBooksRequest struct {
	Title         string `json:"title" binding:"required,max=300"`
	Author        string `json:"author" binding:"required,max=200"`
	ISBN          string `json:"isbn" binding:"max=20"`
	Category      string `json:"category" binding:"required,max=10"`
	Publisher     string `json:"publisher" binding:"max=200"`
	PublishedYear int    `json:"published_year" binding:"required,min=1400"`
	Copies        int    `json:"copies" binding:"required,min=1,max=500"`
}

type UpdateBookStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=AVAILABLE LOST DAMAGED"`
}
