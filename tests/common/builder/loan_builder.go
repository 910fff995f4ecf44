//go:build unit || e2e

package builder

import (
	"time"

	domloan "library-circulation/internal/domain/loan"
	"library-circulation/internal/usecase/queries"
	"library-circulation/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoanBuilder struct {
	ID         uuid.UUID
	BookID     uuid.UUID
	BookTitle  string
	MemberID   uuid.UUID
	MemberName string
	BorrowedAt time.Time
	PeriodDays int
	ReturnedAt *time.Time
}

func NewLoanBuilder() *LoanBuilder {
	return &LoanBuilder{
		ID:         uuid.New(),
		BookID:     uuid.New(),
		BookTitle:  "The Go Programming Language",
		MemberID:   uuid.New(),
		MemberName: "Alice Reader",
		BorrowedAt: time.Now(),
		PeriodDays: 14,
	}
}

func (l *LoanBuilder) With(mutate func(*LoanBuilder)) *LoanBuilder {
	mutate(l)
	return l
}

func (l *LoanBuilder) BuildDomain() (*domloan.Loan, error) {
	return domloan.NewLoan(l.BookID, l.MemberID, l.BorrowedAt, l.PeriodDays)
}

func (l *LoanBuilder) dueDate() time.Time {
	return l.BorrowedAt.AddDate(0, 0, l.PeriodDays)
}

func (l *LoanBuilder) BuildSnapshot() *shared.LoanSnapshot {
	return &shared.LoanSnapshot{
		ID:         l.ID,
		BookID:     l.BookID,
		MemberID:   l.MemberID,
		BorrowedAt: l.BorrowedAt,
		DueDate:    l.dueDate(),
		ReturnedAt: l.ReturnedAt,
	}
}

func (l *LoanBuilder) BuildView() *queries.LoanView {
	status := queries.StatusActive
	if l.ReturnedAt != nil {
		status = queries.StatusReturned
	}
	return &queries.LoanView{
		ID:         l.ID,
		BookID:     l.BookID,
		BookTitle:  l.BookTitle,
		MemberID:   l.MemberID,
		MemberName: l.MemberName,
		BorrowedAt: l.BorrowedAt,
		DueDate:    l.dueDate(),
		ReturnedAt: l.ReturnedAt,
		Status:     status,
	}
}

func (l *LoanBuilder) WithBookID(id uuid.UUID) *LoanBuilder {
	l.BookID = id
	return l
}

func (l *LoanBuilder) WithMemberID(id uuid.UUID) *LoanBuilder {
	l.MemberID = id
	return l
}

func (l *LoanBuilder) WithPeriodDays(days int) *LoanBuilder {
	l.PeriodDays = days
	return l
}

func (l *LoanBuilder) AsReturned(at time.Time) *LoanBuilder {
	l.ReturnedAt = &at
	return l
}

// AsOverdue shifts the borrow date so the due date lies in the past.
func (l *LoanBuilder) AsOverdue() *LoanBuilder {
	l.BorrowedAt = time.Now().AddDate(0, 0, -(l.PeriodDays + 7))
	return l
}
