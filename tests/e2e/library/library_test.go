//go:build e2e

package library

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"campushub/internal/domain/user"
	"campushub/internal/infra/repository"
	"campushub/tests/common/authtest"
	"campushub/tests/common/helper"
	"campushub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type bookBody struct {
	ID              uuid.UUID `json:"id"`
	AccessionNumber string    `json:"accessionNumber"`
	BookNumber      string    `json:"bookNumber"`
	Title           string    `json:"title"`
	Status          string    `json:"status"`
}

type issueBody struct {
	ID              uuid.UUID  `json:"id"`
	IssueNumber     int64      `json:"issueNumber"`
	AccessionNumber string     `json:"accessionNumber"`
	UserID          uuid.UUID  `json:"userId"`
	IssuedAt        time.Time  `json:"issuedAt"`
	DueAt           time.Time  `json:"dueAt"`
	ReturnedAt      *time.Time `json:"returnedAt"`
	Status          string     `json:"status"`
	FineAmount      int64      `json:"fineAmount"`
}

type receiptBody struct {
	IssueNumber     int64     `json:"issueNumber"`
	AccessionNumber string    `json:"accessionNumber"`
	FineAmount      int64     `json:"fineAmount"`
	ReturnedAt      time.Time `json:"returnedAt"`
}

type LibrarySuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestLibrarySuite(t *testing.T) {
	suite.Run(t, new(LibrarySuite))
}

func (s *LibrarySuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *LibrarySuite) librarianToken() string {
	return s.jwt.GenerateToken(s.T(), uuid.New(), user.RoleLibrarian)
}

func (s *LibrarySuite) addBooks(title string, copies int) []bookBody {
	w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/library/books", map[string]any{
		"title":          title,
		"author":         "Alan Donovan",
		"category":       "CS",
		"published_year": 2015,
		"copies":         copies,
	}, s.librarianToken())
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var books []bookBody
	helper.DecodeBody(s.T(), w, &books)
	s.Require().Len(books, copies)
	return books
}

func (s *LibrarySuite) issue(accession string, userID uuid.UUID) (*issueBody, int) {
	w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/library/issues", map[string]any{
		"accession_number": accession,
		"user_id":          userID,
	}, s.librarianToken())
	if w.Code != http.StatusCreated {
		return nil, w.Code
	}
	var iss issueBody
	helper.DecodeBody(s.T(), w, &iss)
	return &iss, w.Code
}

func (s *LibrarySuite) returnBook(accession string) (*receiptBody, int) {
	w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/library/returns", map[string]any{
		"accession_number": accession,
	}, s.librarianToken())
	if w.Code != http.StatusOK {
		return nil, w.Code
	}
	var r receiptBody
	helper.DecodeBody(s.T(), w, &r)
	return &r, w.Code
}

func (s *LibrarySuite) getBook(accession string) bookBody {
	w := helper.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/library/books/"+accession, nil, s.librarianToken())
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var b bookBody
	helper.DecodeBody(s.T(), w, &b)
	return b
}

func (s *LibrarySuite) TestCirculation() {
	s.Run("issue and return lifecycle", func() {
		books := s.addBooks("The Go Programming Language", 2)
		member := uuid.New()

		year := time.Now().UTC().Year()
		s.Equal(fmt.Sprintf("ACC-%d-CS-000001", year), books[0].AccessionNumber)
		s.Equal(fmt.Sprintf("ACC-%d-CS-000002", year), books[1].AccessionNumber)
		s.Equal("AVAILABLE", books[0].Status)

		iss, code := s.issue(books[0].AccessionNumber, member)
		s.Require().Equal(http.StatusCreated, code)
		s.Equal("ISSUED", iss.Status)
		s.Equal(member, iss.UserID)
		s.Equal(30*24*time.Hour, iss.DueAt.Sub(iss.IssuedAt))

		s.Equal("ISSUED", s.getBook(books[0].AccessionNumber).Status)

		// A copy with an open loan cannot be issued again.
		_, code = s.issue(books[0].AccessionNumber, uuid.New())
		s.Equal(http.StatusConflict, code)

		// The other copy still circulates.
		_, code = s.issue(books[1].AccessionNumber, uuid.New())
		s.Equal(http.StatusCreated, code)

		receipt, code := s.returnBook(books[0].AccessionNumber)
		s.Require().Equal(http.StatusOK, code)
		s.Equal(iss.IssueNumber, receipt.IssueNumber)
		s.Zero(receipt.FineAmount)

		s.Equal("AVAILABLE", s.getBook(books[0].AccessionNumber).Status)

		// No open loan left to close.
		_, code = s.returnBook(books[0].AccessionNumber)
		s.Equal(http.StatusConflict, code)
	})

	s.Run("accession numbers continue across batches", func() {
		s.addBooks("SICP", 2)
		more := s.addBooks("TAOCP", 1)

		year := time.Now().UTC().Year()
		s.Equal(fmt.Sprintf("ACC-%d-CS-000003", year), more[0].AccessionNumber)
	})

	s.Run("member sees own loans", func() {
		books := s.addBooks("Designing Data-Intensive Applications", 2)
		member := uuid.New()

		for _, b := range books {
			_, code := s.issue(b.AccessionNumber, member)
			s.Require().Equal(http.StatusCreated, code)
		}

		memberToken := s.jwt.GenerateToken(s.T(), member, user.RoleStudent)
		w := helper.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/library/issues", nil, memberToken)
		s.Require().Equal(http.StatusOK, w.Code)
		var mine []issueBody
		helper.DecodeBody(s.T(), w, &mine)
		s.Len(mine, 2)

		w = helper.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/library/openIssues", nil, s.librarianToken())
		s.Require().Equal(http.StatusOK, w.Code)
		var open []issueBody
		helper.DecodeBody(s.T(), w, &open)
		s.Len(open, 2)
	})

	s.Run("overdue loans are promoted and fined on return", func() {
		books := s.addBooks("Operating System Concepts", 1)
		member := uuid.New()

		iss, code := s.issue(books[0].AccessionNumber, member)
		s.Require().Equal(http.StatusCreated, code)

		// Age the loan 36 hours past due.
		_, err := s.DB.Exec(context.Background(),
			"UPDATE issues SET due_at = now() - interval '36 hours' WHERE id = $1", iss.ID)
		s.Require().NoError(err)

		promoted, err := repository.NewIssueRepository(s.DB).PromoteOverdue(context.Background(), time.Now())
		s.Require().NoError(err)
		s.Equal(int64(1), promoted)

		w := helper.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/library/issues/"+iss.ID.String(), nil, s.librarianToken())
		s.Require().Equal(http.StatusOK, w.Code)
		var overdue issueBody
		helper.DecodeBody(s.T(), w, &overdue)
		s.Equal("OVERDUE", overdue.Status)

		// 36h late is the second started day at 2 per day.
		receipt, code := s.returnBook(books[0].AccessionNumber)
		s.Require().Equal(http.StatusOK, code)
		s.Equal(int64(4), receipt.FineAmount)

		s.Equal("AVAILABLE", s.getBook(books[0].AccessionNumber).Status)
	})

	s.Run("status override gates circulation", func() {
		books := s.addBooks("Clean Architecture", 1)
		accession := books[0].AccessionNumber

		w := helper.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/library/books/"+accession+"/status",
			map[string]any{"status": "LOST"}, s.librarianToken())
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		_, code := s.issue(accession, uuid.New())
		s.Equal(http.StatusConflict, code)

		w = helper.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/library/books/"+accession+"/status",
			map[string]any{"status": "AVAILABLE"}, s.librarianToken())
		s.Require().Equal(http.StatusOK, w.Code)

		_, code = s.issue(accession, uuid.New())
		s.Equal(http.StatusCreated, code)
	})

	s.Run("students cannot run the circulation desk", func() {
		token := s.jwt.GenerateToken(s.T(), uuid.New(), user.RoleStudent)
		w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/library/books", map[string]any{
			"title":          "Gödel, Escher, Bach",
			"author":         "Hofstadter",
			"category":       "CS",
			"published_year": 1979,
			"copies":         1,
		}, token)
		s.Equal(http.StatusForbidden, w.Code)
	})
}
