package shared

import (
	"context"
	"time"

	"library-circulation/internal/domain/book"
	"library-circulation/internal/domain/loan"
	"library-circulation/internal/domain/member"
	"library-circulation/internal/domain/reservation"

	"github.com/google/uuid"
)

// UnitOfWork runs fn inside a single database transaction. Everything done
// through the Tx commits or rolls back together, so multi-step workflows like
// borrow (consume copy + insert loan) can never half-apply.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the write repositories and command-side reads bound to one
// transaction.
type Tx interface {
	Books() BookCommandRepository
	Loans() LoanCommandRepository
	Reservations() ReservationCommandRepository
	Members() MemberCommandRepository
	Audit() AuditRecorder
	Reads() CommandReads
}

// BookCommandRepository mutates inventory. ConsumeCopy and ReleaseCopy are
// conditional: applied=false means the guard did not hold (no copy left, or
// all copies already on the shelf) and no row changed.
type BookCommandRepository interface {
	ConsumeCopy(ctx context.Context, bookID uuid.UUID) (bool, error)
	ReleaseCopy(ctx context.Context, bookID uuid.UUID) (bool, error)
	Create(ctx context.Context, b *book.Book) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, title, author, isbn string, totalCopies int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type LoanCommandRepository interface {
	Create(ctx context.Context, l *loan.Loan) (uuid.UUID, error)
	// MarkReturned is conditional on the loan still being active.
	MarkReturned(ctx context.Context, loanID uuid.UUID, now time.Time) (bool, error)
}

type ReservationCommandRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	// Cancel and MarkFulfilled are conditional on status = PENDING.
	Cancel(ctx context.Context, reservationID uuid.UUID, now time.Time) (bool, error)
	MarkFulfilled(ctx context.Context, reservationID uuid.UUID, now time.Time) (bool, error)
	// NextPending returns nil when the book has no pending reservations.
	NextPending(ctx context.Context, bookID uuid.UUID) (*reservation.Reservation, error)
}

type MemberCommandRepository interface {
	Create(ctx context.Context, m *member.Member) error
	Update(ctx context.Context, m *member.Member) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type AuditRecorder interface {
	Record(ctx context.Context, entry AuditEntry) error
}

// CommandReads are the lookups command workflows make before deciding.
// They run on the same transaction as the writes that follow them.
type CommandReads interface {
	BookByID(ctx context.Context, id uuid.UUID) (*BookSnapshot, error)
	MemberByID(ctx context.Context, id uuid.UUID) (*MemberSnapshot, error)
	LoanByID(ctx context.Context, id uuid.UUID) (*LoanSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	CountActiveLoans(ctx context.Context, memberID uuid.UUID) (int64, error)
	HasOverdueLoan(ctx context.Context, memberID uuid.UUID, asOf time.Time) (bool, error)
}
