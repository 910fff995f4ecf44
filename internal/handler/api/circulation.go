package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "library-circulation/internal/handler/dto/request"
	resdto "library-circulation/internal/handler/dto/response"
	"library-circulation/internal/handler/middleware"
	"library-circulation/internal/usecase/commands"
	"library-circulation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CirculationHandler struct {
	circulation *commands.CirculationCommands
	loans       *queries.LoanQueries
}

func NewCirculationHandler(circulation *commands.CirculationCommands, loans *queries.LoanQueries) *CirculationHandler {
	return &CirculationHandler{circulation: circulation, loans: loans}
}

// @Summary Borrow a book
// @Description Lend a copy to a member, or queue a reservation when none is available
// @Tags loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BorrowRequest true "Borrow request"
// @Success 201 {object} resdto.LoanResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /loans [post]
func (h *CirculationHandler) Borrow(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	loanID, err := h.circulation.Borrow(c.Request.Context(), actor, req.BookID, req.MemberID)
	if err != nil {
		var queued commands.ReservationQueuedError
		switch {
		case errors.As(err, &queued):
			middleware.CountBorrow("queued")
			c.JSON(http.StatusAccepted, resdto.BorrowQueuedResponse{
				ReservationID: queued.ReservationID,
				Message:       "No copies available, reservation queued",
			})
		case errors.Is(err, commands.ErrBookNotFound):
			middleware.CountBorrow("rejected")
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		case errors.Is(err, commands.ErrMemberNotFound):
			middleware.CountBorrow("rejected")
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, commands.ErrMemberInactive):
			middleware.CountBorrow("rejected")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Member is not active"})
		case errors.Is(err, commands.ErrLoanLimitReached):
			middleware.CountBorrow("rejected")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Active loan limit reached"})
		case errors.Is(err, commands.ErrOverdueLoans):
			middleware.CountBorrow("rejected")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Member has overdue loans"})
		case errors.Is(err, commands.ErrNoCopiesAvailable):
			middleware.CountBorrow("rejected")
			c.JSON(http.StatusConflict, gin.H{"error": "No copies available"})
		default:
			middleware.CountBorrow("error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	middleware.CountBorrow("lent")

	view, err := h.loans.GetLoan(c.Request.Context(), loanID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLoanView(view))
}

// @Summary Return a book
// @Description Close the loan, shelve the copy and fulfill the next reservation
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Success 200 {object} resdto.LoanResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /loans/{id}/return [post]
func (h *CirculationHandler) Return(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan ID"})
		return
	}

	if err := h.circulation.Return(c.Request.Context(), actor, loanID); err != nil {
		switch {
		case errors.Is(err, commands.ErrLoanNotFound):
			middleware.CountReturn("rejected")
			c.JSON(http.StatusNotFound, gin.H{"error": "Loan not found"})
		case errors.Is(err, commands.ErrLoanAlreadyReturned):
			middleware.CountReturn("rejected")
			c.JSON(http.StatusConflict, gin.H{"error": "Loan already returned"})
		default:
			middleware.CountReturn("error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	middleware.CountReturn("returned")

	view, err := h.loans.GetLoan(c.Request.Context(), loanID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoanView(view))
}

// @Summary Get a loan
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Success 200 {object} resdto.LoanResponse
// @Failure 404 {object} map[string]string
// @Router /loans/{id} [get]
func (h *CirculationHandler) GetLoan(c *gin.Context) {
	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan ID"})
		return
	}

	view, err := h.loans.GetLoan(c.Request.Context(), loanID)
	if err != nil {
		if errors.Is(err, queries.ErrLoanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Loan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoanView(view))
}

// @Summary Search loans
// @Description Filter loans by member, book, status and borrow window
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param member_id query string false "Member ID"
// @Param book_id query string false "Book ID"
// @Param status query string false "ACTIVE, RETURNED or OVERDUE"
// @Param from query string false "Borrowed at or after (RFC3339)"
// @Param to query string false "Borrowed before (RFC3339)"
// @Success 200 {array} resdto.LoanResponse
// @Failure 400 {object} map[string]string
// @Router /loans [get]
func (h *CirculationHandler) SearchLoans(c *gin.Context) {
	filter, err := parseLoanFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	views, err := h.loans.SearchLoans(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidLoanStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp, err := resdto.FromLoanViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func parseLoanFilter(c *gin.Context) (queries.LoanSearchFilter, error) {
	var filter queries.LoanSearchFilter

	if v := c.Query("member_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errors.New("invalid member_id")
		}
		filter.MemberID = &id
	}
	if v := c.Query("book_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errors.New("invalid book_id")
		}
		filter.BookID = &id
	}
	filter.Status = c.Query("status")
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("invalid from timestamp")
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("invalid to timestamp")
		}
		filter.To = &t
	}
	filter.Limit, filter.Offset = parsePaging(c)

	return filter, nil
}
