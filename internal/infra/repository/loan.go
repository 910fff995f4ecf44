package repository

import (
	"context"
	"time"

	"library-circulation/internal/domain/loan"
	"library-circulation/internal/infra"
	"library-circulation/internal/infra/db"

	"github.com/google/uuid"
)

// LoanRepository is the sole writer of loans rows.
type LoanRepository struct{}

func NewLoanRepository() *LoanRepository {
	return &LoanRepository{}
}

func (r *LoanRepository) Create(ctx context.Context, dbtx db.DBTX, l *loan.Loan) (uuid.UUID, error) {
	tag, err := dbtx.Exec(ctx,
		`INSERT INTO loans (id, book_id, member_id, borrowed_at, due_date, returned_at)
		 VALUES ($1, $2, $3, $4, $5, NULL)`,
		l.ID(), l.BookID(), l.MemberID(), l.BorrowedAt(), l.DueDate(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create loan", err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, infra.NewRepositoryError("loan insert affected no rows", infra.KindUpdateFailed)
	}
	return l.ID(), nil
}

// MarkReturned sets returned_at iff the loan is still active. The conditional
// guard makes double returns race-safe: the second caller sees applied=false.
func (r *LoanRepository) MarkReturned(ctx context.Context, dbtx db.DBTX, loanID uuid.UUID, now time.Time) (bool, error) {
	tag, err := dbtx.Exec(ctx,
		`UPDATE loans SET returned_at = $2 WHERE id = $1 AND returned_at IS NULL`,
		loanID, now,
	)
	if err != nil {
		return false, wrapWriteErr("failed to mark loan returned", err)
	}
	return tag.RowsAffected() == 1, nil
}
