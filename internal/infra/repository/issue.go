package repository

import (
	"context"
	"time"

	"campushub/internal/domain/library"
	"campushub/internal/infra"
	"campushub/internal/infra/db"
	"campushub/internal/usecase/view"

	"github.com/google/uuid"
)

type IssueRepository struct {
	db db.DBTX
}

func NewIssueRepository(pool db.DBTX) *IssueRepository {
	return &IssueRepository{db: pool}
}

const createIssueSQL = `
INSERT INTO issues (id, issue_number, book_id, user_id, issued_at, due_at, status, fine_amount)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *IssueRepository) Create(ctx context.Context, tx db.DBTX, issue *library.Issue) error {
	if tx == nil {
		tx = r.db
	}

	_, err := tx.Exec(ctx, createIssueSQL,
		issue.ID(), issue.IssueNumber(), issue.BookID(), issue.UserID(),
		issue.IssuedAt(), issue.DueAt(), issue.Status(), issue.FineAmount())
	if err != nil {
		return infra.WrapRepoErr("failed to create issue", err)
	}
	return nil
}

const findOpenIssueByBookForUpdateSQL = `
SELECT id, issue_number, book_id, user_id, issued_at, due_at, returned_at, status, fine_amount
FROM issues
WHERE book_id = $1 AND status IN ('ISSUED', 'OVERDUE')
FOR UPDATE`

// FindOpenByBookForUpdate locks the single open loan for the copy. The
// partial unique index guarantees at most one row matches.
func (r *IssueRepository) FindOpenByBookForUpdate(ctx context.Context, tx db.DBTX, bookID uuid.UUID) (*library.Issue, error) {
	if tx == nil {
		tx = r.db
	}
	return scanIssue(tx.QueryRow(ctx, findOpenIssueByBookForUpdateSQL, bookID))
}

const markIssueReturnedSQL = `
UPDATE issues
SET status = 'RETURNED', returned_at = $2, fine_amount = $3, updated_at = now()
WHERE id = $1 AND status IN ('ISSUED', 'OVERDUE')`

func (r *IssueRepository) MarkReturned(ctx context.Context, tx db.DBTX, id uuid.UUID, returnedAt time.Time, fineAmount int64) error {
	if tx == nil {
		tx = r.db
	}

	tag, err := tx.Exec(ctx, markIssueReturnedSQL, id, returnedAt, fineAmount)
	if err != nil {
		return infra.WrapRepoErr("failed to mark issue returned", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("open issue not found", nil, infra.KindNotFound)
	}
	return nil
}

// Sweeper pass: promote issued loans past their due date to OVERDUE. The
// copy status stays ISSUED; only the loan record reflects lateness.
const promoteOverdueIssuesSQL = `
UPDATE issues
SET status = 'OVERDUE', updated_at = now()
WHERE status = 'ISSUED' AND due_at < $1`

func (r *IssueRepository) PromoteOverdue(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, promoteOverdueIssuesSQL, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to promote overdue issues", err)
	}
	return tag.RowsAffected(), nil
}

const findIssueViewByIDSQL = `
SELECT i.id, i.issue_number, b.accession_number, b.title, i.user_id,
       i.issued_at, i.due_at, i.returned_at, i.status, i.fine_amount
FROM issues i
JOIN books b ON b.id = i.book_id
WHERE i.id = $1`

func (r *IssueRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*view.IssueView, error) {
	views, err := r.queryViews(ctx, findIssueViewByIDSQL, id)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("issue not found", nil, infra.KindNotFound)
	}
	return views[0], nil
}

const listIssuesByUserSQL = `
SELECT i.id, i.issue_number, b.accession_number, b.title, i.user_id,
       i.issued_at, i.due_at, i.returned_at, i.status, i.fine_amount
FROM issues i
JOIN books b ON b.id = i.book_id
WHERE i.user_id = $1
ORDER BY i.issued_at DESC`

func (r *IssueRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*view.IssueView, error) {
	return r.queryViews(ctx, listIssuesByUserSQL, userID)
}

const listOpenIssuesSQL = `
SELECT i.id, i.issue_number, b.accession_number, b.title, i.user_id,
       i.issued_at, i.due_at, i.returned_at, i.status, i.fine_amount
FROM issues i
JOIN books b ON b.id = i.book_id
WHERE i.status IN ('ISSUED', 'OVERDUE')
ORDER BY i.due_at`

func (r *IssueRepository) ListOpen(ctx context.Context) ([]*view.IssueView, error) {
	return r.queryViews(ctx, listOpenIssuesSQL)
}

func (r *IssueRepository) queryViews(ctx context.Context, sql string, args ...any) ([]*view.IssueView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query issues", err)
	}
	defer rows.Close()

	var result []*view.IssueView
	for rows.Next() {
		v := &view.IssueView{}
		err := rows.Scan(&v.ID, &v.IssueNumber, &v.AccessionNumber, &v.BookTitle, &v.UserID,
			&v.IssuedAt, &v.DueAt, &v.ReturnedAt, &v.Status, &v.FineAmount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan issue view", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate issue views", err)
	}
	return result, nil
}

func scanIssue(row rowScanner) (*library.Issue, error) {
	var (
		id          uuid.UUID
		issueNumber int64
		bookID      uuid.UUID
		userID      uuid.UUID
		issuedAt    time.Time
		dueAt       time.Time
		returnedAt  *time.Time
		status      string
		fineAmount  int64
	)
	err := row.Scan(&id, &issueNumber, &bookID, &userID, &issuedAt, &dueAt, &returnedAt, &status, &fineAmount)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("open issue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan issue", err)
	}

	return library.ReconstructIssue(
		id, issueNumber, bookID, userID, issuedAt, dueAt, returnedAt,
		library.IssueStatus(status), fineAmount,
	), nil
}
