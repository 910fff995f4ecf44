package uow

import (
	"context"
	"time"

	"library-circulation/internal/infra"
	"library-circulation/internal/pkg/clock"
	"library-circulation/internal/pkg/pgconv"
	"library-circulation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// commandReads serves the lookups command workflows make before writing.
// Running them on the write transaction keeps decisions and mutations on one
// database snapshot.
type commandReads struct {
	tx  pgx.Tx
	clk clock.Clock
}

func (r *commandReads) BookByID(ctx context.Context, id uuid.UUID) (*shared.BookSnapshot, error) {
	row := r.tx.QueryRow(ctx,
		`SELECT id, title, author, isbn, total_copies, available_copies FROM books WHERE id = $1`,
		id,
	)

	var snap shared.BookSnapshot
	err := row.Scan(&snap.ID, &snap.Title, &snap.Author, &snap.ISBN, &snap.TotalCopies, &snap.AvailableCopies)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepositoryError("book not found", infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read book", err)
	}
	return &snap, nil
}

func (r *commandReads) MemberByID(ctx context.Context, id uuid.UUID) (*shared.MemberSnapshot, error) {
	row := r.tx.QueryRow(ctx,
		`SELECT id, name, email, role, is_active FROM members WHERE id = $1`,
		id,
	)

	var snap shared.MemberSnapshot
	err := row.Scan(&snap.ID, &snap.Name, &snap.Email, &snap.Role, &snap.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepositoryError("member not found", infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read member", err)
	}
	return &snap, nil
}

func (r *commandReads) LoanByID(ctx context.Context, id uuid.UUID) (*shared.LoanSnapshot, error) {
	row := r.tx.QueryRow(ctx,
		`SELECT id, book_id, member_id, borrowed_at, due_date, returned_at FROM loans WHERE id = $1`,
		id,
	)

	var snap shared.LoanSnapshot
	err := row.Scan(&snap.ID, &snap.BookID, &snap.MemberID, &snap.BorrowedAt, &snap.DueDate, &snap.ReturnedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepositoryError("loan not found", infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read loan", err)
	}
	return &snap, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	row := r.tx.QueryRow(ctx,
		`SELECT id, book_id, member_id, role_name, status, created_at FROM reservations WHERE id = $1`,
		id,
	)

	var snap shared.ReservationSnapshot
	err := row.Scan(&snap.ID, &snap.BookID, &snap.MemberID, &snap.RoleName, &snap.Status, &snap.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepositoryError("reservation not found", infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read reservation", err)
	}
	return &snap, nil
}

func (r *commandReads) CountActiveLoans(ctx context.Context, memberID uuid.UUID) (int64, error) {
	row := r.tx.QueryRow(ctx,
		`SELECT count(*) FROM loans WHERE member_id = $1 AND returned_at IS NULL`,
		memberID,
	)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count active loans", err)
	}
	return count, nil
}

func (r *commandReads) HasOverdueLoan(ctx context.Context, memberID uuid.UUID, asOf time.Time) (bool, error) {
	row := r.tx.QueryRow(ctx,
		`SELECT EXISTS (
		    SELECT 1 FROM loans
		     WHERE member_id = $1 AND returned_at IS NULL AND due_date < $2
		 )`,
		memberID, asOf,
	)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check overdue loans", err)
	}
	return exists, nil
}
