package library

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidBookStatus = errors.New("invalid book status")
	ErrNoCopies          = errors.New("copies must be greater than zero")
)

type BookStatus string

const (
	BookAvailable BookStatus = "AVAILABLE"
	BookIssued    BookStatus = "ISSUED"
	BookLost      BookStatus = "LOST"
	BookDamaged   BookStatus = "DAMAGED"
)

func (s BookStatus) IsValid() bool {
	switch s {
	case BookAvailable, BookIssued, BookLost, BookDamaged:
		return true
	default:
		return false
	}
}

// IsOverride reports whether the status is one of the administrative
// overrides that bypass circulation.
func (s BookStatus) IsOverride() bool {
	return s == BookLost || s == BookDamaged
}

type Book struct {
	id              uuid.UUID
	accessionNumber string
	bookNumber      string
	title           string
	author          string
	isbn            string
	category        string
	publisher       string
	publishedYear   int
	status          BookStatus
}

func NewBook(ids CopyIdentifiers, title, author, isbn, category, publisher string, publishedYear int) *Book {
	return &Book{
		id:              uuid.New(),
		accessionNumber: ids.AccessionNumber,
		bookNumber:      ids.BookNumber,
		title:           title,
		author:          author,
		isbn:            isbn,
		category:        category,
		publisher:       publisher,
		publishedYear:   publishedYear,
		status:          BookAvailable,
	}
}

func ReconstructBook(
	id uuid.UUID,
	accessionNumber, bookNumber string,
	title, author, isbn, category, publisher string,
	publishedYear int,
	status BookStatus,
) *Book {
	return &Book{
		id:              id,
		accessionNumber: accessionNumber,
		bookNumber:      bookNumber,
		title:           title,
		author:          author,
		isbn:            isbn,
		category:        category,
		publisher:       publisher,
		publishedYear:   publishedYear,
		status:          status,
	}
}

func (b *Book) IsAvailable() bool {
	return b.status == BookAvailable
}

func (b *Book) ID() uuid.UUID           { return b.id }
func (b *Book) AccessionNumber() string { return b.accessionNumber }
func (b *Book) BookNumber() string      { return b.bookNumber }
func (b *Book) Title() string           { return b.title }
func (b *Book) Author() string          { return b.author }
func (b *Book) ISBN() string            { return b.isbn }
func (b *Book) Category() string        { return b.category }
func (b *Book) Publisher() string       { return b.publisher }
func (b *Book) PublishedYear() int      { return b.publishedYear }
func (b *Book) Status() BookStatus      { return b.status }

// CopyIdentifiers is the pair of human-facing identifiers assigned to each
// physical copy.
type CopyIdentifiers struct {
	AccessionNumber string
	BookNumber      string
}

// GenerateCopyIdentifiers continues the per-category accession sequence from
// the last known accession number, e.g. ACC-2026-CS-000124 / LIB-CS-000124.
func GenerateCopyIdentifiers(lastAccessionNumber string, count int, category string, year int) ([]CopyIdentifiers, error) {
	if count <= 0 {
		return nil, ErrNoCopies
	}

	start := 1
	if lastAccessionNumber != "" {
		parts := strings.Split(lastAccessionNumber, "-")
		if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			start = n + 1
		}
	}

	ids := make([]CopyIdentifiers, count)
	for i := range ids {
		seq := start + i
		ids[i] = CopyIdentifiers{
			AccessionNumber: fmt.Sprintf("ACC-%d-%s-%06d", year, category, seq),
			BookNumber:      fmt.Sprintf("LIB-%s-%06d", category, seq),
		}
	}
	return ids, nil
}
