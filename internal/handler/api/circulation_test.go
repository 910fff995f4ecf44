//go:build unit

package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"library-circulation/internal/handler/api"
	resdto "library-circulation/internal/handler/dto/response"
	"library-circulation/internal/pkg/clock"
	"library-circulation/internal/pkg/config"
	"library-circulation/internal/usecase/commands"
	"library-circulation/internal/usecase/queries"
	"library-circulation/internal/usecase/shared"
	"library-circulation/tests/common/builder"
	"library-circulation/tests/common/httptest"
	queriesmock "library-circulation/tests/mock/queries"
	sharedmock "library-circulation/tests/mock/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CirculationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	books        *sharedmock.MockBookCommandRepository
	loans        *sharedmock.MockLoanCommandRepository
	reservations *sharedmock.MockReservationCommandRepository
	loanReads    *queriesmock.MockLoanReadStore
	clk          *clock.MockClock
}

func (s *CirculationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	uow := sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.reads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.books = sharedmock.NewMockBookCommandRepository(s.mockCtrl)
	s.loans = sharedmock.NewMockLoanCommandRepository(s.mockCtrl)
	s.reservations = sharedmock.NewMockReservationCommandRepository(s.mockCtrl)
	audit := sharedmock.NewMockAuditRecorder(s.mockCtrl)
	s.loanReads = queriesmock.NewMockLoanReadStore(s.mockCtrl)
	s.clk = clock.NewMockClock(testNow)

	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Books().Return(s.books).AnyTimes()
	s.tx.EXPECT().Loans().Return(s.loans).AnyTimes()
	s.tx.EXPECT().Reservations().Return(s.reservations).AnyTimes()
	s.tx.EXPECT().Audit().Return(audit).AnyTimes()
	audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := config.BorrowingConfig{MaxActiveLoansPerMember: 5, MaxLoanDays: 14}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	circulation := commands.NewCirculationCommands(uow, s.clk, cfg, log)
	loanQueries := queries.NewLoanQueries(s.loanReads, s.clk)
	handler := api.NewCirculationHandler(circulation, loanQueries)

	// stand-in for the jwt middleware: header present -> fixed actor
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("actor", builder.NewMemberBuilder().AsLibrarian().BuildActor())
		c.Next()
	}

	s.router.POST("/loans", authMiddleware, handler.Borrow)
	s.router.GET("/loans", authMiddleware, handler.SearchLoans)
	s.router.GET("/loans/:id", authMiddleware, handler.GetLoan)
	s.router.POST("/loans/:id/return", authMiddleware, handler.Return)
}

func (s *CirculationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCirculationHandlerSuite(t *testing.T) {
	suite.Run(t, new(CirculationHandlerTestSuite))
}

func (s *CirculationHandlerTestSuite) expectEligibleMember(bk *shared.BookSnapshot, mem *shared.MemberSnapshot) {
	s.reads.EXPECT().BookByID(gomock.Any(), bk.ID).Return(bk, nil)
	s.reads.EXPECT().MemberByID(gomock.Any(), mem.ID).Return(mem, nil)
	s.reads.EXPECT().CountActiveLoans(gomock.Any(), mem.ID).Return(int64(0), nil)
	s.reads.EXPECT().HasOverdueLoan(gomock.Any(), mem.ID, gomock.Any()).Return(false, nil)
}

func (s *CirculationHandlerTestSuite) TestBorrow() {
	s.Run("lends a copy", func() {
		bk := builder.NewBookBuilder().BuildSnapshot()
		mem := builder.NewMemberBuilder().BuildSnapshot()
		loanID := uuid.New()
		view := builder.NewLoanBuilder().WithBookID(bk.ID).WithMemberID(mem.ID).BuildView()
		view.ID = loanID

		s.expectEligibleMember(bk, mem)
		s.books.EXPECT().ConsumeCopy(gomock.Any(), bk.ID).Return(true, nil)
		s.loans.EXPECT().Create(gomock.Any(), gomock.Any()).Return(loanID, nil)
		s.loanReads.EXPECT().FindByID(gomock.Any(), loanID).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/loans",
			map[string]any{"book_id": bk.ID, "member_id": mem.ID}, "token")

		s.Equal(http.StatusCreated, w.Code)

		var resp resdto.LoanResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal(loanID, resp.ID)
		s.Equal("ACTIVE", resp.Status)
	})

	s.Run("queues a reservation when out of stock", func() {
		bk := builder.NewBookBuilder().AsOutOfStock().BuildSnapshot()
		mem := builder.NewMemberBuilder().BuildSnapshot()
		reservationID := uuid.New()

		s.reads.EXPECT().BookByID(gomock.Any(), bk.ID).Return(bk, nil)
		s.reads.EXPECT().MemberByID(gomock.Any(), mem.ID).Return(mem, nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(reservationID, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/loans",
			map[string]any{"book_id": bk.ID, "member_id": mem.ID}, "token")

		s.Equal(http.StatusAccepted, w.Code)

		var resp resdto.BorrowQueuedResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal(reservationID, resp.ReservationID)
	})

	s.Run("unknown book", func() {
		bookID := uuid.New()
		s.reads.EXPECT().BookByID(gomock.Any(), bookID).Return(nil, notFoundErr("book not found"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/loans",
			map[string]any{"book_id": bookID, "member_id": uuid.New()}, "token")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("inactive member", func() {
		bk := builder.NewBookBuilder().BuildSnapshot()
		mem := builder.NewMemberBuilder().AsInactive().BuildSnapshot()

		s.reads.EXPECT().BookByID(gomock.Any(), bk.ID).Return(bk, nil)
		s.reads.EXPECT().MemberByID(gomock.Any(), mem.ID).Return(mem, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/loans",
			map[string]any{"book_id": bk.ID, "member_id": mem.ID}, "token")

		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("last copy race maps to conflict", func() {
		bk := builder.NewBookBuilder().WithCopies(3, 1).BuildSnapshot()
		mem := builder.NewMemberBuilder().BuildSnapshot()

		s.expectEligibleMember(bk, mem)
		s.books.EXPECT().ConsumeCopy(gomock.Any(), bk.ID).Return(false, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/loans",
			map[string]any{"book_id": bk.ID, "member_id": mem.ID}, "token")

		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("missing body fields", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/loans",
			map[string]any{"book_id": uuid.New()}, "token")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/loans",
			map[string]any{"book_id": uuid.New(), "member_id": uuid.New()}, "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *CirculationHandlerTestSuite) TestReturn() {
	s.Run("closes the loan", func() {
		l := builder.NewLoanBuilder().BuildSnapshot()
		returnedView := builder.NewLoanBuilder().AsReturned(testNow).BuildView()
		returnedView.ID = l.ID

		s.reads.EXPECT().LoanByID(gomock.Any(), l.ID).Return(l, nil)
		s.loans.EXPECT().MarkReturned(gomock.Any(), l.ID, gomock.Any()).Return(true, nil)
		s.books.EXPECT().ReleaseCopy(gomock.Any(), l.BookID).Return(true, nil)
		s.reservations.EXPECT().NextPending(gomock.Any(), l.BookID).Return(nil, nil)
		s.loanReads.EXPECT().FindByID(gomock.Any(), l.ID).Return(returnedView, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/loans/"+l.ID.String()+"/return", nil, "token")

		s.Equal(http.StatusOK, w.Code)

		var resp resdto.LoanResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal("RETURNED", resp.Status)
	})

	s.Run("already returned maps to conflict", func() {
		l := builder.NewLoanBuilder().BuildSnapshot()

		s.reads.EXPECT().LoanByID(gomock.Any(), l.ID).Return(l, nil)
		s.loans.EXPECT().MarkReturned(gomock.Any(), l.ID, gomock.Any()).Return(false, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/loans/"+l.ID.String()+"/return", nil, "token")

		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("unknown loan", func() {
		loanID := uuid.New()
		s.reads.EXPECT().LoanByID(gomock.Any(), loanID).Return(nil, notFoundErr("loan not found"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/loans/"+loanID.String()+"/return", nil, "token")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/loans/not-a-uuid/return", nil, "token")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *CirculationHandlerTestSuite) TestSearchLoans() {
	s.Run("passes filters through", func() {
		memberID := uuid.New()
		views := []queries.LoanView{*builder.NewLoanBuilder().WithMemberID(memberID).BuildView()}

		s.loanReads.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filter queries.LoanSearchFilter) ([]queries.LoanView, error) {
				s.Require().NotNil(filter.MemberID)
				s.Equal(memberID, *filter.MemberID)
				s.Equal("OVERDUE", filter.Status)
				return views, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/loans?member_id="+memberID.String()+"&status=OVERDUE", nil, "token")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("rejects an unknown status", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/loans?status=LOST", nil, "token")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("rejects a malformed member id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/loans?member_id=nope", nil, "token")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}
