package loan

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPeriod   = errors.New("loan period must be at least one day")
	ErrAlreadyReturned = errors.New("loan already returned")
)

// Loan references a book and a member by id; it does not own their lifecycle.
// The only transition is active -> returned, exactly once.
type Loan struct {
	id         uuid.UUID
	bookID     uuid.UUID
	memberID   uuid.UUID
	borrowedAt time.Time
	dueDate    time.Time
	returnedAt *time.Time
}

func NewLoan(bookID, memberID uuid.UUID, now time.Time, periodDays int) (*Loan, error) {
	if periodDays < 1 {
		return nil, ErrInvalidPeriod
	}
	return &Loan{
		id:         uuid.New(),
		bookID:     bookID,
		memberID:   memberID,
		borrowedAt: now,
		dueDate:    now.AddDate(0, 0, periodDays),
	}, nil
}

func ReconstructLoan(
	id, bookID, memberID uuid.UUID,
	borrowedAt, dueDate time.Time,
	returnedAt *time.Time,
) *Loan {
	return &Loan{
		id:         id,
		bookID:     bookID,
		memberID:   memberID,
		borrowedAt: borrowedAt,
		dueDate:    dueDate,
		returnedAt: returnedAt,
	}
}

func (l *Loan) IsActive() bool {
	return l.returnedAt == nil
}

func (l *Loan) IsOverdue(now time.Time) bool {
	return l.returnedAt == nil && l.dueDate.Before(now)
}

// MarkReturned is the in-memory mirror of the conditional returned_at update.
func (l *Loan) MarkReturned(now time.Time) error {
	if l.returnedAt != nil {
		return ErrAlreadyReturned
	}
	t := now
	l.returnedAt = &t
	return nil
}

func (l *Loan) Status() Status {
	if l.returnedAt == nil {
		return StatusActive
	}
	return StatusReturned
}

func (l *Loan) ID() uuid.UUID          { return l.id }
func (l *Loan) BookID() uuid.UUID      { return l.bookID }
func (l *Loan) MemberID() uuid.UUID    { return l.memberID }
func (l *Loan) BorrowedAt() time.Time  { return l.borrowedAt }
func (l *Loan) DueDate() time.Time     { return l.dueDate }
func (l *Loan) ReturnedAt() *time.Time { return l.returnedAt }
