//go:build e2e

package circulation_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"library-circulation/internal/handler/dto/request"
	"library-circulation/internal/handler/dto/response"
	"library-circulation/tests/common/dbtest"
	"library-circulation/tests/common/httptest"
	"library-circulation/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL = "/api/auth/login"
	loansURL = "/api/loans"
)

type circulationSuite struct {
	e2e.SharedSuite
}

func TestCirculationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(circulationSuite))
}

func (s *circulationSuite) login(email string) string {
	t := s.T()

	reqBody := request.LoginRequest{
		Email:    email,
		Password: dbtest.TestPassword,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed for %s", email)

	var loginRes response.LoginResponse
	httptest.DecodeResponseBody(t, w.Body, &loginRes)
	return loginRes.Token
}

func (s *circulationSuite) borrow(token string, bookID, memberID uuid.UUID) *response.LoanResponse {
	t := s.T()

	reqBody := request.BorrowRequest{BookID: bookID, MemberID: memberID}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, loansURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, "borrow failed: %s", w.Body.String())

	var loan response.LoanResponse
	httptest.DecodeResponseBody(t, w.Body, &loan)
	return &loan
}

func (s *circulationSuite) availableCopies(bookID uuid.UUID) int {
	t := s.T()

	var available int
	err := s.DB.QueryRow(t.Context(), "SELECT available_copies FROM books WHERE id = $1", bookID).Scan(&available)
	require.NoError(t, err)
	return available
}

func (s *circulationSuite) TestBorrowAndReturn() {
	s.Run("borrow decrements stock and return restores it", func() {
		t := s.T()

		bookID := dbtest.CreateTestBook(t, s.DB, "Distributed Systems", "978-1543057386", 2, 2)
		memberID := dbtest.CreateTestMember(t, s.DB, "reader@example.com", "MEMBER")
		token := s.login("reader@example.com")

		loan := s.borrow(token, bookID, memberID)

		expected := &response.LoanResponse{
			BookID:     bookID,
			BookTitle:  "Distributed Systems",
			MemberID:   memberID,
			MemberName: "Test MEMBER",
			Status:     "ACTIVE",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.LoanResponse{}, "ID", "BorrowedAt", "DueDate"),
		}
		if diff := cmp.Diff(expected, loan, opts...); diff != "" {
			t.Errorf("Loan response mismatch (-want +got):\n%s", diff)
		}
		require.WithinDuration(t, loan.BorrowedAt.AddDate(0, 0, s.Config.Borrowing.MaxLoanDays), loan.DueDate, time.Second)
		require.Equal(t, 1, s.availableCopies(bookID))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/return", loansURL, loan.ID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var returned response.LoanResponse
		httptest.DecodeResponseBody(t, w.Body, &returned)
		require.Equal(t, "RETURNED", returned.Status)
		require.NotNil(t, returned.ReturnedAt)
		require.Equal(t, 2, s.availableCopies(bookID))
	})
}

func (s *circulationSuite) TestBorrowRejections() {
	s.Run("unknown book", func() {
		t := s.T()

		memberID := dbtest.CreateTestMember(t, s.DB, "reader@example.com", "MEMBER")
		token := s.login("reader@example.com")

		reqBody := request.BorrowRequest{BookID: uuid.New(), MemberID: memberID}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loansURL, reqBody, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("deactivated member", func() {
		t := s.T()

		bookID := dbtest.CreateTestBook(t, s.DB, "Distributed Systems", "978-1543057386", 2, 2)
		dbtest.CreateTestMember(t, s.DB, "librarian@example.com", "LIBRARIAN")
		inactiveID := dbtest.CreateTestMember(t, s.DB, "gone@example.com", "MEMBER")
		_, err := s.DB.Exec(t.Context(), "UPDATE members SET is_active = false WHERE id = $1", inactiveID)
		require.NoError(t, err)

		token := s.login("librarian@example.com")

		reqBody := request.BorrowRequest{BookID: bookID, MemberID: inactiveID}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loansURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("active loan limit", func() {
		t := s.T()

		memberID := dbtest.CreateTestMember(t, s.DB, "heavy@example.com", "MEMBER")
		token := s.login("heavy@example.com")

		now := time.Now().UTC()
		for i := range s.Config.Borrowing.MaxActiveLoansPerMember {
			bookID := dbtest.CreateTestBook(t, s.DB, fmt.Sprintf("Volume %d", i), fmt.Sprintf("isbn-limit-%d", i), 1, 0)
			dbtest.CreateTestLoan(t, s.DB, bookID, memberID, now, now.AddDate(0, 0, 14))
		}

		bookID := dbtest.CreateTestBook(t, s.DB, "One More", "isbn-limit-extra", 1, 1)
		reqBody := request.BorrowRequest{BookID: bookID, MemberID: memberID}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loansURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("member with overdue loan", func() {
		t := s.T()

		memberID := dbtest.CreateTestMember(t, s.DB, "late@example.com", "MEMBER")
		token := s.login("late@example.com")

		now := time.Now().UTC()
		overdueBook := dbtest.CreateTestBook(t, s.DB, "Never Returned", "isbn-overdue-1", 1, 0)
		dbtest.CreateTestLoan(t, s.DB, overdueBook, memberID, now.AddDate(0, 0, -30), now.AddDate(0, 0, -16))

		bookID := dbtest.CreateTestBook(t, s.DB, "Wanted Next", "isbn-overdue-2", 1, 1)
		reqBody := request.BorrowRequest{BookID: bookID, MemberID: memberID}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loansURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func (s *circulationSuite) TestBorrowQueuesWhenOutOfStock() {
	s.Run("exhausted title queues a reservation with the role snapshot", func() {
		t := s.T()

		bookID := dbtest.CreateTestBook(t, s.DB, "Sold Out", "isbn-queue-1", 1, 0)
		memberID := dbtest.CreateTestMember(t, s.DB, "librarian@example.com", "LIBRARIAN")
		token := s.login("librarian@example.com")

		reqBody := request.BorrowRequest{BookID: bookID, MemberID: memberID}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loansURL, reqBody, token)
		require.Equal(t, http.StatusAccepted, w.Code)

		var queued response.BorrowQueuedResponse
		httptest.DecodeResponseBody(t, w.Body, &queued)
		require.NotEqual(t, uuid.Nil, queued.ReservationID)

		var status, roleName string
		err := s.DB.QueryRow(t.Context(),
			"SELECT status, role_name FROM reservations WHERE id = $1", queued.ReservationID).
			Scan(&status, &roleName)
		require.NoError(t, err)
		require.Equal(t, "PENDING", status)
		require.Equal(t, "LIBRARIAN", roleName)
	})
}

func (s *circulationSuite) TestConcurrentBorrowLastCopy() {
	s.Run("only one borrower wins the last copy", func() {
		t := s.T()

		bookID := dbtest.CreateTestBook(t, s.DB, "Contested", "isbn-race-1", 1, 1)

		const borrowers = 4
		type attempt struct {
			memberID uuid.UUID
			token    string
		}
		attempts := make([]attempt, borrowers)
		for i := range attempts {
			email := fmt.Sprintf("racer%d@example.com", i)
			attempts[i] = attempt{
				memberID: dbtest.CreateTestMember(t, s.DB, email, "MEMBER"),
				token:    s.login(email),
			}
		}

		codes := make(chan int, borrowers)
		var wg sync.WaitGroup
		for _, a := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reqBody := request.BorrowRequest{BookID: bookID, MemberID: a.memberID}
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, loansURL, reqBody, a.token)
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		created := 0
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusAccepted, http.StatusConflict:
				// losers either queued or hit the consume race
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		require.Equal(t, 1, created)
		require.Equal(t, 0, s.availableCopies(bookID))
	})
}

func (s *circulationSuite) TestReturnFulfillsHighestPriorityReservation() {
	s.Run("freed copy goes to the admin ahead of an older member reservation", func() {
		t := s.T()

		bookID := dbtest.CreateTestBook(t, s.DB, "In Demand", "isbn-priority-1", 1, 1)
		borrowerID := dbtest.CreateTestMember(t, s.DB, "holder@example.com", "MEMBER")
		waiterID := dbtest.CreateTestMember(t, s.DB, "waiter@example.com", "MEMBER")
		adminID := dbtest.CreateTestMember(t, s.DB, "boss@example.com", "ADMIN")
		token := s.login("holder@example.com")

		loan := s.borrow(token, bookID, borrowerID)

		now := time.Now().UTC()
		memberResID := dbtest.CreateTestReservation(t, s.DB, bookID, waiterID, "MEMBER", now.Add(-2*time.Hour))
		adminResID := dbtest.CreateTestReservation(t, s.DB, bookID, adminID, "ADMIN", now.Add(-1*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/return", loansURL, loan.ID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var adminStatus, memberStatus string
		err := s.DB.QueryRow(t.Context(), "SELECT status FROM reservations WHERE id = $1", adminResID).Scan(&adminStatus)
		require.NoError(t, err)
		err = s.DB.QueryRow(t.Context(), "SELECT status FROM reservations WHERE id = $1", memberResID).Scan(&memberStatus)
		require.NoError(t, err)
		require.Equal(t, "FULFILLED", adminStatus)
		require.Equal(t, "PENDING", memberStatus)

		var activeLoans int
		err = s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM loans WHERE book_id = $1 AND member_id = $2 AND returned_at IS NULL",
			bookID, adminID).Scan(&activeLoans)
		require.NoError(t, err)
		require.Equal(t, 1, activeLoans)

		// the freed copy went straight to the reservation
		require.Equal(t, 0, s.availableCopies(bookID))
	})

	s.Run("fifo breaks ties within the same role", func() {
		t := s.T()

		bookID := dbtest.CreateTestBook(t, s.DB, "In Demand", "isbn-priority-2", 1, 1)
		borrowerID := dbtest.CreateTestMember(t, s.DB, "holder@example.com", "MEMBER")
		firstID := dbtest.CreateTestMember(t, s.DB, "first@example.com", "MEMBER")
		secondID := dbtest.CreateTestMember(t, s.DB, "second@example.com", "MEMBER")
		token := s.login("holder@example.com")

		loan := s.borrow(token, bookID, borrowerID)

		now := time.Now().UTC()
		firstResID := dbtest.CreateTestReservation(t, s.DB, bookID, firstID, "MEMBER", now.Add(-2*time.Hour))
		secondResID := dbtest.CreateTestReservation(t, s.DB, bookID, secondID, "MEMBER", now.Add(-1*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/return", loansURL, loan.ID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var firstStatus, secondStatus string
		err := s.DB.QueryRow(t.Context(), "SELECT status FROM reservations WHERE id = $1", firstResID).Scan(&firstStatus)
		require.NoError(t, err)
		err = s.DB.QueryRow(t.Context(), "SELECT status FROM reservations WHERE id = $1", secondResID).Scan(&secondStatus)
		require.NoError(t, err)
		require.Equal(t, "FULFILLED", firstStatus)
		require.Equal(t, "PENDING", secondStatus)
	})
}

func (s *circulationSuite) TestReturnRejections() {
	s.Run("returning twice conflicts", func() {
		t := s.T()

		bookID := dbtest.CreateTestBook(t, s.DB, "Once Only", "isbn-return-1", 1, 1)
		memberID := dbtest.CreateTestMember(t, s.DB, "reader@example.com", "MEMBER")
		token := s.login("reader@example.com")

		loan := s.borrow(token, bookID, memberID)
		returnURL := fmt.Sprintf("%s/%s/return", loansURL, loan.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, returnURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, returnURL, nil, token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("unknown loan", func() {
		t := s.T()

		dbtest.CreateTestMember(t, s.DB, "reader@example.com", "MEMBER")
		token := s.login("reader@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/return", loansURL, uuid.New()), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *circulationSuite) TestSearchLoans() {
	s.Run("overdue filter derives status from due date", func() {
		t := s.T()

		memberID := dbtest.CreateTestMember(t, s.DB, "late@example.com", "MEMBER")
		token := s.login("late@example.com")

		now := time.Now().UTC()
		overdueBook := dbtest.CreateTestBook(t, s.DB, "Long Gone", "isbn-search-1", 1, 0)
		overdueLoanID := dbtest.CreateTestLoan(t, s.DB, overdueBook, memberID, now.AddDate(0, 0, -30), now.AddDate(0, 0, -16))

		currentBook := dbtest.CreateTestBook(t, s.DB, "Fresh", "isbn-search-2", 1, 0)
		dbtest.CreateTestLoan(t, s.DB, currentBook, memberID, now, now.AddDate(0, 0, 14))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, loansURL+"?status=OVERDUE", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var loans []response.LoanResponse
		httptest.DecodeResponseBody(t, w.Body, &loans)
		require.Len(t, loans, 1)
		require.Equal(t, overdueLoanID, loans[0].ID)
		require.Equal(t, "OVERDUE", loans[0].Status)
	})

	s.Run("member filter", func() {
		t := s.T()

		aliceID := dbtest.CreateTestMember(t, s.DB, "alice@example.com", "MEMBER")
		bobID := dbtest.CreateTestMember(t, s.DB, "bob@example.com", "MEMBER")
		token := s.login("alice@example.com")

		now := time.Now().UTC()
		bookA := dbtest.CreateTestBook(t, s.DB, "For Alice", "isbn-search-3", 1, 0)
		bookB := dbtest.CreateTestBook(t, s.DB, "For Bob", "isbn-search-4", 1, 0)
		dbtest.CreateTestLoan(t, s.DB, bookA, aliceID, now, now.AddDate(0, 0, 14))
		dbtest.CreateTestLoan(t, s.DB, bookB, bobID, now, now.AddDate(0, 0, 14))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, loansURL+"?member_id="+aliceID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var loans []response.LoanResponse
		httptest.DecodeResponseBody(t, w.Body, &loans)
		require.Len(t, loans, 1)
		require.Equal(t, aliceID, loans[0].MemberID)
	})

	s.Run("invalid status filter", func() {
		t := s.T()

		dbtest.CreateTestMember(t, s.DB, "reader@example.com", "MEMBER")
		token := s.login("reader@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, loansURL+"?status=LOST", nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
