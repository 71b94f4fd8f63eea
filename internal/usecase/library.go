package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"campushub/internal/domain/library"
	reqdto "campushub/internal/handler/dto/request"
	"campushub/internal/infra"
	"campushub/internal/infra/db"
	"campushub/internal/pkg/clock"
	"campushub/internal/pkg/config"
	"campushub/internal/pkg/errs"
	"campushub/internal/usecase/view"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrBookNotAvailable = errors.New("book is not available for issue")
	ErrNoOpenIssue      = errors.New("book has no open issue")
	ErrIssueNotFound    = errors.New("issue not found")
)

const counterIssue = "issue"

type BookRepository interface {
	CreateMany(ctx context.Context, tx db.DBTX, books []*library.Book) error
	FindByAccession(ctx context.Context, accessionNumber string) (*library.Book, error)
	FindByAccessionForUpdate(ctx context.Context, tx db.DBTX, accessionNumber string) (*library.Book, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status library.BookStatus) error
	LastAccessionNumber(ctx context.Context, tx db.DBTX, category string) (string, error)
	List(ctx context.Context) ([]*library.Book, error)
}

type IssueRepository interface {
	Create(ctx context.Context, tx db.DBTX, issue *library.Issue) error
	FindOpenByBookForUpdate(ctx context.Context, tx db.DBTX, bookID uuid.UUID) (*library.Issue, error)
	MarkReturned(ctx context.Context, tx db.DBTX, id uuid.UUID, returnedAt time.Time, fineAmount int64) error
	FindViewByID(ctx context.Context, id uuid.UUID) (*view.IssueView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*view.IssueView, error)
	ListOpen(ctx context.Context) ([]*view.IssueView, error)
}

type LibraryUseCase interface {
	IssueBook(ctx context.Context, req reqdto.IssueBookRequest) (*view.IssueView, error)
	ReturnBook(ctx context.Context, req reqdto.ReturnBookRequest) (*view.ReturnReceipt, error)
	AddBooks(ctx context.Context, req reqdto.AddBooksRequest) ([]*library.Book, error)
	UpdateBookStatus(ctx context.Context, accessionNumber, status string) (*library.Book, error)
	GetBook(ctx context.Context, accessionNumber string) (*library.Book, error)
	ListBooks(ctx context.Context) ([]*library.Book, error)
	GetIssue(ctx context.Context, issueID uuid.UUID) (*view.IssueView, error)
	ListUserIssues(ctx context.Context, userID uuid.UUID) ([]*view.IssueView, error)
	ListOpenIssues(ctx context.Context) ([]*view.IssueView, error)
}

type libraryUseCaseImpl struct {
	bookRepo     BookRepository
	issueRepo    IssueRepository
	sequenceRepo SequenceRepository
	db           *pgxpool.Pool
	clock        clock.Clock
	cfg          config.LibraryConfig
}

func NewLibraryUseCase(
	bookRepo BookRepository,
	issueRepo IssueRepository,
	sequenceRepo SequenceRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
	cfg config.LibraryConfig,
) LibraryUseCase {
	return &libraryUseCaseImpl{
		bookRepo:     bookRepo,
		issueRepo:    issueRepo,
		sequenceRepo: sequenceRepo,
		db:           db,
		clock:        clock,
		cfg:          cfg,
	}
}

// IssueBook lends a copy to a user. The copy row is locked so concurrent
// issue requests for the same copy serialize; the partial unique index on
// open issues backstops the availability check.
func (u *libraryUseCaseImpl) IssueBook(ctx context.Context, req reqdto.IssueBookRequest) (*view.IssueView, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	book, err := u.bookRepo.FindByAccessionForUpdate(ctx, tx, req.AccessionNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Wrap(err, "failed to find book")
	}
	if !book.IsAvailable() {
		return nil, ErrBookNotAvailable
	}

	number, err := u.sequenceRepo.NextValue(ctx, tx, counterIssue)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	issue := library.NewIssueWithPeriod(number, book.ID(), req.UserID, u.clock.Now(), u.cfg.LoanPeriod)
	if err := u.issueRepo.Create(ctx, tx, issue); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrBookNotAvailable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := u.bookRepo.UpdateStatus(ctx, tx, book.ID(), library.BookIssued); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.issueRepo.FindViewByID(ctx, issue.ID())
}

// ReturnBook closes the open loan, on time or overdue, and computes the fine
// at return time. A copy under a LOST or DAMAGED override keeps its status;
// only ISSUED copies flip back to AVAILABLE.
func (u *libraryUseCaseImpl) ReturnBook(ctx context.Context, req reqdto.ReturnBookRequest) (*view.ReturnReceipt, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	book, err := u.bookRepo.FindByAccessionForUpdate(ctx, tx, req.AccessionNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Wrap(err, "failed to find book")
	}

	issue, err := u.issueRepo.FindOpenByBookForUpdate(ctx, tx, book.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoOpenIssue
		}
		return nil, errs.Wrap(err, "failed to find open issue")
	}

	returnedAt := u.clock.Now()
	fine := library.FineAt(issue.DueAt(), returnedAt, u.cfg.FinePerDay)

	if err := u.issueRepo.MarkReturned(ctx, tx, issue.ID(), returnedAt, fine); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if book.Status() == library.BookIssued {
		if err := u.bookRepo.UpdateStatus(ctx, tx, book.ID(), library.BookAvailable); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &view.ReturnReceipt{
		IssueNumber:     issue.IssueNumber(),
		AccessionNumber: book.AccessionNumber(),
		FineAmount:      fine,
		ReturnedAt:      returnedAt,
	}, nil
}

// AddBooks registers one catalog title as N physical copies, continuing the
// per-category accession sequence inside a single transaction.
func (u *libraryUseCaseImpl) AddBooks(ctx context.Context, req reqdto.AddBooksRequest) ([]*library.Book, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	last, err := u.bookRepo.LastAccessionNumber(ctx, tx, req.Category)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	ids, err := library.GenerateCopyIdentifiers(last, req.Copies, req.Category, u.clock.Now().Year())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	books := make([]*library.Book, len(ids))
	for i, id := range ids {
		books[i] = library.NewBook(id, req.Title, req.Author, req.ISBN, req.Category, req.Publisher, req.PublishedYear)
	}

	if err := u.bookRepo.CreateMany(ctx, tx, books); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return books, nil
}

// UpdateBookStatus is the librarian override path for LOST, DAMAGED and
// manual restoration to AVAILABLE. Overrides stick until changed here; the
// return flow never clears them.
func (u *libraryUseCaseImpl) UpdateBookStatus(ctx context.Context, accessionNumber, status string) (*library.Book, error) {
	newStatus := library.BookStatus(status)
	if !newStatus.IsValid() || newStatus == library.BookIssued {
		return nil, errs.Mark(library.ErrInvalidBookStatus, ErrInvalidStatus)
	}

	book, err := u.bookRepo.FindByAccession(ctx, accessionNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Wrap(err, "failed to find book")
	}

	if err := u.bookRepo.UpdateStatus(ctx, nil, book.ID(), newStatus); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.bookRepo.FindByAccession(ctx, accessionNumber)
}

func (u *libraryUseCaseImpl) GetBook(ctx context.Context, accessionNumber string) (*library.Book, error) {
	book, err := u.bookRepo.FindByAccession(ctx, accessionNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Wrap(err, "failed to find book")
	}
	return book, nil
}

func (u *libraryUseCaseImpl) ListBooks(ctx context.Context) ([]*library.Book, error) {
	books, err := u.bookRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list books")
	}
	return books, nil
}

func (u *libraryUseCaseImpl) GetIssue(ctx context.Context, issueID uuid.UUID) (*view.IssueView, error) {
	v, err := u.issueRepo.FindViewByID(ctx, issueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, errs.Wrap(err, "failed to find issue")
	}
	return v, nil
}

func (u *libraryUseCaseImpl) ListUserIssues(ctx context.Context, userID uuid.UUID) ([]*view.IssueView, error) {
	views, err := u.issueRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user issues")
	}
	return views, nil
}

func (u *libraryUseCaseImpl) ListOpenIssues(ctx context.Context) ([]*view.IssueView, error) {
	views, err := u.issueRepo.ListOpen(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list open issues")
	}
	return views, nil
}
