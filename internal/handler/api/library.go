package api

import (
	"errors"
	"net/http"

	reqdto "campushub/internal/handler/dto/request"
	resdto "campushub/internal/handler/dto/response"
	"campushub/internal/handler/middleware"
	"campushub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LibraryHandler struct {
	libraryUseCase usecase.LibraryUseCase
}

func NewLibraryHandler(libraryUseCase usecase.LibraryUseCase) *LibraryHandler {
	return &LibraryHandler{
		libraryUseCase: libraryUseCase,
	}
}

// @Summary Issue a book
// @Description Lend an available copy to a user
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueBookRequest true "Issue request"
// @Success 201 {object} resdto.IssueResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /library/issues [post]
func (h *LibraryHandler) IssueBook(c *gin.Context) {
	var req reqdto.IssueBookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	v, err := h.libraryUseCase.IssueBook(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Book not found",
			})
		case errors.Is(err, usecase.ErrBookNotAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Book is not available for issue",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromIssueView(v))
}

// @Summary Return a book
// @Description Close the open loan and compute the fine
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReturnBookRequest true "Return request"
// @Success 200 {object} resdto.ReturnReceiptResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /library/returns [post]
func (h *LibraryHandler) ReturnBook(c *gin.Context) {
	var req reqdto.ReturnBookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	receipt, err := h.libraryUseCase.ReturnBook(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Book not found",
			})
		case errors.Is(err, usecase.ErrNoOpenIssue):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Book has no open issue",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReturnReceipt(receipt))
}

// @Summary Register book copies
// @Description Register a title as one or more physical copies
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddBooksRequest true "Title and copy count"
// @Success 201 {array} resdto.BookResponse
// @Failure 400 {object} map[string]string
// @Router /library/books [post]
func (h *LibraryHandler) AddBooks(c *gin.Context) {
	var req reqdto.AddBooksRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	books, err := h.libraryUseCase.AddBooks(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid copy count",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooks(books))
}

// @Summary Update book status
// @Description Librarian override: AVAILABLE, LOST or DAMAGED
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param accession path string true "Accession number"
// @Param request body reqdto.UpdateBookStatusRequest true "New status"
// @Success 200 {object} resdto.BookResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /library/books/{accession}/status [patch]
func (h *LibraryHandler) UpdateBookStatus(c *gin.Context) {
	var req reqdto.UpdateBookStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	book, err := h.libraryUseCase.UpdateBookStatus(c.Request.Context(), c.Param("accession"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Book not found",
			})
		case errors.Is(err, usecase.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid book status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBook(book))
}

// @Summary Get book by accession number
// @Tags library
// @Produce json
// @Security BearerAuth
// @Param accession path string true "Accession number"
// @Success 200 {object} resdto.BookResponse
// @Failure 404 {object} map[string]string
// @Router /library/books/{accession} [get]
func (h *LibraryHandler) GetBook(c *gin.Context) {
	book, err := h.libraryUseCase.GetBook(c.Request.Context(), c.Param("accession"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Book not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBook(book))
}

// @Summary List books
// @Tags library
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookResponse
// @Router /library/books [get]
func (h *LibraryHandler) ListBooks(c *gin.Context) {
	books, err := h.libraryUseCase.ListBooks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooks(books))
}

// @Summary Get issue
// @Tags library
// @Produce json
// @Security BearerAuth
// @Param id path string true "Issue ID"
// @Success 200 {object} resdto.IssueResponse
// @Failure 404 {object} map[string]string
// @Router /library/issues/{id} [get]
func (h *LibraryHandler) GetIssue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid issue ID format",
		})
		return
	}

	v, err := h.libraryUseCase.GetIssue(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrIssueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Issue not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromIssueView(v))
}

// @Summary List own issues
// @Tags library
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.IssueResponse
// @Router /library/issues [get]
func (h *LibraryHandler) ListMyIssues(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.libraryUseCase.ListUserIssues(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromIssueViews(views))
}

// @Summary List open issues
// @Description All loans currently out, ordered by due date
// @Tags library
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.IssueResponse
// @Router /library/openIssues [get]
func (h *LibraryHandler) ListOpenIssues(c *gin.Context) {
	views, err := h.libraryUseCase.ListOpenIssues(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromIssueViews(views))
}
