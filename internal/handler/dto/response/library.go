package response

import (
	"time"

	"campushub/internal/domain/library"
	"campushub/internal/usecase/view"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookResponse struct {
	ID              uuid.UUID `json:"id"`
	AccessionNumber string    `json:"accessionNumber"`
	BookNumber      string    `json:"bookNumber"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	Category        string    `json:"category"`
	Publisher       string    `json:"publisher"`
	PublishedYear   int       `json:"publishedYear"`
	Status          string    `json:"status"`
}

func FromBook(b *library.Book) *BookResponse {
	return &BookResponse{
		ID:              b.ID(),
		AccessionNumber: b.AccessionNumber(),
		BookNumber:      b.BookNumber(),
		Title:           b.Title(),
		Author:          b.Author(),
		ISBN:            b.ISBN(),
		Category:        b.Category(),
		Publisher:       b.Publisher(),
		PublishedYear:   b.PublishedYear(),
		Status:          string(b.Status()),
	}
}

func FromBooks(books []*library.Book) []*BookResponse {
	result := make([]*BookResponse, len(books))
	for i, b := range books {
		result[i] = FromBook(b)
	}
	return result
}

type IssueResponse struct {
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

func FromIssueView(v *view.IssueView) *IssueResponse {
	resp := &IssueResponse{}
	_ = copier.Copy(resp, v)
	return resp
}

func FromIssueViews(views []*view.IssueView) []*IssueResponse {
	result := make([]*IssueResponse, len(views))
	for i, v := range views {
		result[i] = FromIssueView(v)
	}
	return result
}

type ReturnReceiptResponse struct {
	IssueNumber     int64     `json:"issueNumber"`
	AccessionNumber string    `json:"accessionNumber"`
	FineAmount      int64     `json:"fineAmount"`
	ReturnedAt      time.Time `json:"returnedAt"`
}

func FromReturnReceipt(r *view.ReturnReceipt) *ReturnReceiptResponse {
	return &ReturnReceiptResponse{
		IssueNumber:     r.IssueNumber,
		AccessionNumber: r.AccessionNumber,
		FineAmount:      r.FineAmount,
		ReturnedAt:      r.ReturnedAt,
	}
}
