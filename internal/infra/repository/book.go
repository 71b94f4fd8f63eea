package repository

import (
	"context"

	"campushub/internal/domain/library"
	"campushub/internal/infra"
	"campushub/internal/infra/db"

	"github.com/google/uuid"
)

type BookRepository struct {
	db db.DBTX
}

func NewBookRepository(pool db.DBTX) *BookRepository {
	return &BookRepository{db: pool}
}

const createBookSQL = `
INSERT INTO books (id, accession_number, book_number, title, author, isbn, category, publisher, published_year, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (r *BookRepository) CreateMany(ctx context.Context, tx db.DBTX, books []*library.Book) error {
	if tx == nil {
		tx = r.db
	}

	for _, b := range books {
		_, err := tx.Exec(ctx, createBookSQL,
			b.ID(), b.AccessionNumber(), b.BookNumber(), b.Title(), b.Author(), b.ISBN(),
			b.Category(), b.Publisher(), b.PublishedYear(), b.Status())
		if err != nil {
			return infra.WrapRepoErr("failed to create book", err)
		}
	}
	return nil
}

const findBookByAccessionSQL = `
SELECT id, accession_number, book_number, title, author, isbn, category, publisher, published_year, status
FROM books
WHERE accession_number = $1`

func (r *BookRepository) FindByAccession(ctx context.Context, accessionNumber string) (*library.Book, error) {
	return scanBook(r.db.QueryRow(ctx, findBookByAccessionSQL, accessionNumber))
}

const findBookByAccessionForUpdateSQL = `
SELECT id, accession_number, book_number, title, author, isbn, category, publisher, published_year, status
FROM books
WHERE accession_number = $1
FOR UPDATE`

// FindByAccessionForUpdate locks the copy row so concurrent issue requests
// for the same copy serialize and only one sees it available.
func (r *BookRepository) FindByAccessionForUpdate(ctx context.Context, tx db.DBTX, accessionNumber string) (*library.Book, error) {
	if tx == nil {
		tx = r.db
	}
	return scanBook(tx.QueryRow(ctx, findBookByAccessionForUpdateSQL, accessionNumber))
}

const updateBookStatusSQL = `
UPDATE books SET status = $2, updated_at = now() WHERE id = $1`

func (r *BookRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status library.BookStatus) error {
	if tx == nil {
		tx = r.db
	}

	tag, err := tx.Exec(ctx, updateBookStatusSQL, id, status)
	if err != nil {
		return infra.WrapRepoErr("failed to update book status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}

// LastAccessionNumber returns the highest accession number registered for the
// category, or empty when the category has no copies yet. Accession numbers
// carry a zero-padded sequence suffix, so lexical max matches numeric max.
const lastAccessionNumberSQL = `
SELECT COALESCE(MAX(accession_number), '') FROM books WHERE category = $1`

func (r *BookRepository) LastAccessionNumber(ctx context.Context, tx db.DBTX, category string) (string, error) {
	if tx == nil {
		tx = r.db
	}

	var last string
	if err := tx.QueryRow(ctx, lastAccessionNumberSQL, category).Scan(&last); err != nil {
		return "", infra.WrapRepoErr("failed to read last accession number", err)
	}
	return last, nil
}

const listBooksSQL = `
SELECT id, accession_number, book_number, title, author, isbn, category, publisher, published_year, status
FROM books
ORDER BY accession_number`

func (r *BookRepository) List(ctx context.Context) ([]*library.Book, error) {
	rows, err := r.db.Query(ctx, listBooksSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books", err)
	}
	defer rows.Close()

	var result []*library.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate book rows", err)
	}
	return result, nil
}

func scanBook(row rowScanner) (*library.Book, error) {
	var (
		id              uuid.UUID
		accessionNumber string
		bookNumber      string
		title           string
		author          string
		isbn            string
		category        string
		publisher       string
		publishedYear   int
		status          string
	)
	err := row.Scan(&id, &accessionNumber, &bookNumber, &title, &author, &isbn,
		&category, &publisher, &publishedYear, &status)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan book", err)
	}

	return library.ReconstructBook(
		id, accessionNumber, bookNumber, title, author, isbn, category, publisher, publishedYear,
		library.BookStatus(status),
	), nil
}
