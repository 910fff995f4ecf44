package uow

import (
	"context"
	"time"

	"library-circulation/internal/domain/book"
	"library-circulation/internal/domain/loan"
	"library-circulation/internal/domain/member"
	"library-circulation/internal/domain/reservation"
	"library-circulation/internal/infra/repository"
	"library-circulation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// The adapters below close over the transaction so repository methods stay
// free of transaction plumbing.

type bookTxRepo struct {
	tx   pgx.Tx
	repo *repository.BookRepository
}

func (r *bookTxRepo) ConsumeCopy(ctx context.Context, bookID uuid.UUID) (bool, error) {
	return r.repo.ConsumeCopy(ctx, r.tx, bookID)
}

func (r *bookTxRepo) ReleaseCopy(ctx context.Context, bookID uuid.UUID) (bool, error) {
	return r.repo.ReleaseCopy(ctx, r.tx, bookID)
}

func (r *bookTxRepo) Create(ctx context.Context, b *book.Book) (uuid.UUID, error) {
	return r.repo.Create(ctx, r.tx, b)
}

func (r *bookTxRepo) Update(ctx context.Context, id uuid.UUID, title, author, isbn string, totalCopies int) error {
	return r.repo.Update(ctx, r.tx, id, title, author, isbn, totalCopies)
}

func (r *bookTxRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, r.tx, id)
}

type loanTxRepo struct {
	tx   pgx.Tx
	repo *repository.LoanRepository
}

func (r *loanTxRepo) Create(ctx context.Context, l *loan.Loan) (uuid.UUID, error) {
	return r.repo.Create(ctx, r.tx, l)
}

func (r *loanTxRepo) MarkReturned(ctx context.Context, loanID uuid.UUID, now time.Time) (bool, error) {
	return r.repo.MarkReturned(ctx, r.tx, loanID, now)
}

type reservationTxRepo struct {
	tx   pgx.Tx
	repo *repository.ReservationRepository
}

func (r *reservationTxRepo) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	return r.repo.Create(ctx, r.tx, res)
}

func (r *reservationTxRepo) Cancel(ctx context.Context, reservationID uuid.UUID, now time.Time) (bool, error) {
	return r.repo.Cancel(ctx, r.tx, reservationID, now)
}

func (r *reservationTxRepo) MarkFulfilled(ctx context.Context, reservationID uuid.UUID, now time.Time) (bool, error) {
	return r.repo.MarkFulfilled(ctx, r.tx, reservationID, now)
}

func (r *reservationTxRepo) NextPending(ctx context.Context, bookID uuid.UUID) (*reservation.Reservation, error) {
	return r.repo.NextPending(ctx, r.tx, bookID)
}

type memberTxRepo struct {
	tx   pgx.Tx
	repo *repository.MemberRepository
}

func (r *memberTxRepo) Create(ctx context.Context, m *member.Member) error {
	return r.repo.Create(ctx, r.tx, m)
}

func (r *memberTxRepo) Update(ctx context.Context, m *member.Member) error {
	return r.repo.Update(ctx, r.tx, m)
}

func (r *memberTxRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.repo.Deactivate(ctx, r.tx, id)
}

type auditTxRepo struct {
	tx   pgx.Tx
	repo *repository.AuditRepository
}

func (r *auditTxRepo) Record(ctx context.Context, entry shared.AuditEntry) error {
	return r.repo.Record(ctx, r.tx, entry)
}
