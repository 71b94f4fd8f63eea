//go:build unit

package library_test

import (
	"testing"
	"time"

	"campushub/internal/domain/library"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssue(t *testing.T) {
	issuedAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	bookID := uuid.New()
	userID := uuid.New()

	issue := library.NewIssue(7, bookID, userID, issuedAt)
	require.NotNil(t, issue)

	assert.NotEqual(t, uuid.Nil, issue.ID())
	assert.Equal(t, int64(7), issue.IssueNumber())
	assert.Equal(t, bookID, issue.BookID())
	assert.Equal(t, userID, issue.UserID())
	assert.Equal(t, issuedAt, issue.IssuedAt())
	assert.Equal(t, issuedAt.Add(library.LoanPeriod), issue.DueAt())
	assert.Equal(t, library.IssueIssued, issue.Status())
	assert.Nil(t, issue.ReturnedAt())
	assert.True(t, issue.IsOpen())
}

func TestNewIssueWithPeriod(t *testing.T) {
	issuedAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	issue := library.NewIssueWithPeriod(1, uuid.New(), uuid.New(), issuedAt, 14*24*time.Hour)
	assert.Equal(t, issuedAt.Add(14*24*time.Hour), issue.DueAt())
}

func TestIssue_IsOpen(t *testing.T) {
	returnedAt := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		status library.IssueStatus
		open   bool
	}{
		{name: "issued is open", status: library.IssueIssued, open: true},
		{name: "overdue is still open", status: library.IssueOverdue, open: true},
		{name: "returned is closed", status: library.IssueReturned, open: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var ret *time.Time
			if tc.status == library.IssueReturned {
				ret = &returnedAt
			}
			issue := library.ReconstructIssue(
				uuid.New(), 1, uuid.New(), uuid.New(),
				returnedAt.Add(-30*24*time.Hour), returnedAt.Add(-24*time.Hour),
				ret, tc.status, 0,
			)
			assert.Equal(t, tc.open, issue.IsOpen())
		})
	}
}

func TestIssue_IsOverdueAt(t *testing.T) {
	issuedAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	issue := library.NewIssueWithPeriod(1, uuid.New(), uuid.New(), issuedAt, 7*24*time.Hour)
	dueAt := issue.DueAt()

	assert.False(t, issue.IsOverdueAt(dueAt.Add(-time.Minute)))
	assert.False(t, issue.IsOverdueAt(dueAt), "due instant itself is not overdue")
	assert.True(t, issue.IsOverdueAt(dueAt.Add(time.Minute)))
}

func TestFineAt(t *testing.T) {
	dueAt := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	const perDay = int64(2)

	testCases := []struct {
		name       string
		returnedAt time.Time
		want       int64
	}{
		{name: "returned early", returnedAt: dueAt.Add(-48 * time.Hour), want: 0},
		{name: "returned exactly on time", returnedAt: dueAt, want: 0},
		{name: "one second late charges a full day", returnedAt: dueAt.Add(time.Second), want: perDay},
		{name: "just under a day late", returnedAt: dueAt.Add(24*time.Hour - time.Second), want: perDay},
		{name: "exactly one day late", returnedAt: dueAt.Add(24 * time.Hour), want: perDay},
		{name: "a day and a half rounds up to two days", returnedAt: dueAt.Add(36 * time.Hour), want: 2 * perDay},
		{name: "ten days late", returnedAt: dueAt.Add(10 * 24 * time.Hour), want: 10 * perDay},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, library.FineAt(dueAt, tc.returnedAt, perDay))
		})
	}
}

func TestFine_UsesDefaultRate(t *testing.T) {
	dueAt := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 3*library.FinePerDay, library.Fine(dueAt, dueAt.Add(3*24*time.Hour)))
}
