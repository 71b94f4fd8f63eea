//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"campushub/internal/domain/library"
	"campushub/internal/pkg/clock"
	"campushub/internal/pkg/config"
	"campushub/internal/usecase"
	"campushub/internal/usecase/view"
	usecasemock "campushub/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type libraryMocks struct {
	book     *usecasemock.MockBookRepository
	issue    *usecasemock.MockIssueRepository
	sequence *usecasemock.MockSequenceRepository
}

func newLibraryUseCase(t *testing.T) (usecase.LibraryUseCase, libraryMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := libraryMocks{
		book:     usecasemock.NewMockBookRepository(ctrl),
		issue:    usecasemock.NewMockIssueRepository(ctrl),
		sequence: usecasemock.NewMockSequenceRepository(ctrl),
	}
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	cfg := config.LibraryConfig{LoanPeriod: 30 * 24 * time.Hour, FinePerDay: 2}
	uc := usecase.NewLibraryUseCase(m.book, m.issue, m.sequence, nil, clock.NewMockClock(now), cfg)
	return uc, m
}

func testBook(status library.BookStatus) *library.Book {
	return library.ReconstructBook(
		uuid.New(), "ACC-2026-CS-000001", "LIB-CS-000001",
		"The Go Programming Language", "Donovan", "978-0134190440", "CS", "Addison-Wesley",
		2015, status,
	)
}

func TestLibraryUpdateBookStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unknown status", func(t *testing.T) {
		uc, _ := newLibraryUseCase(t)

		_, err := uc.UpdateBookStatus(ctx, "ACC-2026-CS-000001", "MISSING")
		assert.ErrorIs(t, err, usecase.ErrInvalidStatus)
	})

	t.Run("rejects ISSUED as a manual target", func(t *testing.T) {
		uc, _ := newLibraryUseCase(t)

		_, err := uc.UpdateBookStatus(ctx, "ACC-2026-CS-000001", "ISSUED")
		assert.ErrorIs(t, err, usecase.ErrInvalidStatus)
	})

	t.Run("unknown book", func(t *testing.T) {
		uc, m := newLibraryUseCase(t)
		m.book.EXPECT().FindByAccession(ctx, "ACC-404").Return(nil, notFoundErr())

		_, err := uc.UpdateBookStatus(ctx, "ACC-404", "LOST")
		assert.ErrorIs(t, err, usecase.ErrBookNotFound)
	})

	t.Run("marks a copy lost", func(t *testing.T) {
		uc, m := newLibraryUseCase(t)
		book := testBook(library.BookAvailable)
		lost := library.ReconstructBook(
			book.ID(), book.AccessionNumber(), book.BookNumber(), book.Title(), book.Author(),
			book.ISBN(), book.Category(), book.Publisher(), book.PublishedYear(), library.BookLost,
		)

		m.book.EXPECT().FindByAccession(ctx, book.AccessionNumber()).Return(book, nil)
		m.book.EXPECT().UpdateStatus(ctx, nil, book.ID(), library.BookLost).Return(nil)
		m.book.EXPECT().FindByAccession(ctx, book.AccessionNumber()).Return(lost, nil)

		got, err := uc.UpdateBookStatus(ctx, book.AccessionNumber(), "LOST")
		require.NoError(t, err)
		assert.Equal(t, library.BookLost, got.Status())
		assert.False(t, got.IsAvailable())
	})

	t.Run("restores a damaged copy", func(t *testing.T) {
		uc, m := newLibraryUseCase(t)
		book := testBook(library.BookDamaged)
		restored := library.ReconstructBook(
			book.ID(), book.AccessionNumber(), book.BookNumber(), book.Title(), book.Author(),
			book.ISBN(), book.Category(), book.Publisher(), book.PublishedYear(), library.BookAvailable,
		)

		m.book.EXPECT().FindByAccession(ctx, book.AccessionNumber()).Return(book, nil)
		m.book.EXPECT().UpdateStatus(ctx, nil, book.ID(), library.BookAvailable).Return(nil)
		m.book.EXPECT().FindByAccession(ctx, book.AccessionNumber()).Return(restored, nil)

		got, err := uc.UpdateBookStatus(ctx, book.AccessionNumber(), "AVAILABLE")
		require.NoError(t, err)
		assert.True(t, got.IsAvailable())
	})
}

func TestLibraryGetBook(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		uc, m := newLibraryUseCase(t)
		book := testBook(library.BookAvailable)
		m.book.EXPECT().FindByAccession(ctx, book.AccessionNumber()).Return(book, nil)

		got, err := uc.GetBook(ctx, book.AccessionNumber())
		require.NoError(t, err)
		assert.Equal(t, book.ID(), got.ID())
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newLibraryUseCase(t)
		m.book.EXPECT().FindByAccession(ctx, "ACC-404").Return(nil, notFoundErr())

		_, err := uc.GetBook(ctx, "ACC-404")
		assert.ErrorIs(t, err, usecase.ErrBookNotFound)
	})
}

func TestLibraryGetIssue(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		uc, m := newLibraryUseCase(t)
		id := uuid.New()
		m.issue.EXPECT().FindViewByID(ctx, id).Return(&view.IssueView{ID: id, Status: "ISSUED"}, nil)

		got, err := uc.GetIssue(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newLibraryUseCase(t)
		id := uuid.New()
		m.issue.EXPECT().FindViewByID(ctx, id).Return(nil, notFoundErr())

		_, err := uc.GetIssue(ctx, id)
		assert.ErrorIs(t, err, usecase.ErrIssueNotFound)
	})
}

func TestLibraryListUserIssues(t *testing.T) {
	ctx := context.Background()
	uc, m := newLibraryUseCase(t)
	userID := uuid.New()

	views := []*view.IssueView{
		{ID: uuid.New(), UserID: userID, Status: "ISSUED"},
		{ID: uuid.New(), UserID: userID, Status: "OVERDUE"},
	}
	m.issue.EXPECT().ListByUser(ctx, userID).Return(views, nil)

	got, err := uc.ListUserIssues(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
