package library

import (
	"time"

	"github.com/google/uuid"
)

type IssueStatus string

const (
	IssueIssued   IssueStatus = "ISSUED"
	IssueReturned IssueStatus = "RETURNED"
	IssueOverdue  IssueStatus = "OVERDUE"
)

// LoanPeriod is the fixed lending window added to issuedAt to get dueAt.
const LoanPeriod = 30 * 24 * time.Hour

// FinePerDay is charged per started day past dueAt.
const FinePerDay int64 = 2

type Issue struct {
	id          uuid.UUID
	issueNumber int64
	bookID      uuid.UUID
	userID      uuid.UUID
	issuedAt    time.Time
	dueAt       time.Time
	returnedAt  *time.Time
	status      IssueStatus
	fineAmount  int64
}

func NewIssue(issueNumber int64, bookID, userID uuid.UUID, issuedAt time.Time) *Issue {
	return NewIssueWithPeriod(issueNumber, bookID, userID, issuedAt, LoanPeriod)
}

func NewIssueWithPeriod(issueNumber int64, bookID, userID uuid.UUID, issuedAt time.Time, loanPeriod time.Duration) *Issue {
	return &Issue{
		id:          uuid.New(),
		issueNumber: issueNumber,
		bookID:      bookID,
		userID:      userID,
		issuedAt:    issuedAt,
		dueAt:       issuedAt.Add(loanPeriod),
		status:      IssueIssued,
	}
}

func ReconstructIssue(
	id uuid.UUID,
	issueNumber int64,
	bookID, userID uuid.UUID,
	issuedAt, dueAt time.Time,
	returnedAt *time.Time,
	status IssueStatus,
	fineAmount int64,
) *Issue {
	return &Issue{
		id:          id,
		issueNumber: issueNumber,
		bookID:      bookID,
		userID:      userID,
		issuedAt:    issuedAt,
		dueAt:       dueAt,
		returnedAt:  returnedAt,
		status:      status,
		fineAmount:  fineAmount,
	}
}

// IsOpen reports whether the loan is still out, overdue or not.
func (i *Issue) IsOpen() bool {
	return i.status == IssueIssued || i.status == IssueOverdue
}

func (i *Issue) IsOverdueAt(now time.Time) bool {
	return i.IsOpen() && i.dueAt.Before(now)
}

func (i *Issue) ID() uuid.UUID          { return i.id }
func (i *Issue) IssueNumber() int64     { return i.issueNumber }
func (i *Issue) BookID() uuid.UUID      { return i.bookID }
func (i *Issue) UserID() uuid.UUID      { return i.userID }
func (i *Issue) IssuedAt() time.Time    { return i.issuedAt }
func (i *Issue) DueAt() time.Time       { return i.dueAt }
func (i *Issue) ReturnedAt() *time.Time { return i.returnedAt }
func (i *Issue) Status() IssueStatus    { return i.status }
func (i *Issue) FineAmount() int64      { return i.fineAmount }

// Fine computes the late charge at returnedAt: zero when on time, otherwise
// FinePerDay per started day past dueAt (partial days round up).
func Fine(dueAt, returnedAt time.Time) int64 {
	return FineAt(dueAt, returnedAt, FinePerDay)
}

func FineAt(dueAt, returnedAt time.Time, perDay int64) int64 {
	if !returnedAt.After(dueAt) {
		return 0
	}
	late := returnedAt.Sub(dueAt)
	const day = 24 * time.Hour
	daysLate := int64((late + day - 1) / day)
	return daysLate * perDay
}
