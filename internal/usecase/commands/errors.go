package commands

import (
	"library-circulation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookNotFound        = errs.New("book not found")
	ErrMemberNotFound      = errs.New("member not found")
	ErrLoanNotFound        = errs.New("loan not found")
	ErrReservationNotFound = errs.New("reservation not found")

	ErrMemberInactive      = errs.New("member is not active")
	ErrNoCopiesAvailable   = errs.New("no copies available")
	ErrLoanLimitReached    = errs.New("active loan limit reached")
	ErrOverdueLoans        = errs.New("member has overdue loans")
	ErrLoanAlreadyReturned = errs.New("loan already returned")
	// Covers both a missing reservation and one already fulfilled or
	// canceled; the conditional update cannot tell them apart.
	ErrReservationNotPending = errs.New("reservation not found or already processed")

	ErrDuplicateISBN  = errs.New("isbn already registered")
	ErrDuplicateEmail = errs.New("email already registered")

	ErrTotalBelowAvailable = errs.New("total copies cannot drop below copies on the shelf")
	ErrBookInUse           = errs.New("book has loans or reservations")

	ErrInvalidCredentials = errs.New("invalid email or password")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ReservationQueuedError reports a borrow that could not be served and was
// queued instead. It matches ErrNoCopiesAvailable so callers can branch on
// the outcome while still reaching the reservation id.
type ReservationQueuedError struct {
	ReservationID uuid.UUID
}

func (e ReservationQueuedError) Error() string {
	return "no copies available, reservation queued: " + e.ReservationID.String()
}

func (e ReservationQueuedError) Is(target error) bool {
	return target == ErrNoCopiesAvailable
}
