package uow

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"library-circulation/internal/infra"
	"library-circulation/internal/infra/repository"
	"library-circulation/internal/pkg/clock"
	"library-circulation/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxRetries  = 3
	baseBackoff = 10 * time.Millisecond

	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

// PostgresUnitOfWork runs command workflows in a single transaction and
// retries the whole function on serialization failures and deadlocks. fn must
// therefore be safe to re-run from the top.
type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
	clk  clock.Clock
}

func NewPostgresUnitOfWork(pool *pgxpool.Pool, clk clock.Clock) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{pool: pool, clk: clk}
}

func (u *PostgresUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if waitErr := sleepWithBackoff(ctx, attempt); waitErr != nil {
				return waitErr
			}
		}

		err = u.runInTx(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
	}
	return infra.WrapRepoErr("transaction retries exhausted", err)
}

func (u *PostgresUnitOfWork) runInTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		// no-op if the tx already committed
		_ = pgxTx.Rollback(ctx)
	}()

	if err := fn(ctx, newTx(pgxTx, u.clk)); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
	}
	return false
}

// sleepWithBackoff waits base*2^(attempt-1) plus jitter, honoring ctx.
func sleepWithBackoff(ctx context.Context, attempt int) error {
	backoff := baseBackoff << (attempt - 1)
	jitter := time.Duration(rand.Int63n(int64(backoff)))

	timer := time.NewTimer(backoff + jitter)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// postgresTx binds the write repositories and command reads to one pgx
// transaction.
type postgresTx struct {
	tx           pgx.Tx
	books        *repository.BookRepository
	loans        *repository.LoanRepository
	reservations *repository.ReservationRepository
	members      *repository.MemberRepository
	audit        *repository.AuditRepository
	reads        *commandReads
}

func newTx(tx pgx.Tx, clk clock.Clock) *postgresTx {
	return &postgresTx{
		tx:           tx,
		books:        repository.NewBookRepository(),
		loans:        repository.NewLoanRepository(),
		reservations: repository.NewReservationRepository(),
		members:      repository.NewMemberRepository(),
		audit:        repository.NewAuditRepository(),
		reads:        &commandReads{tx: tx, clk: clk},
	}
}

func (t *postgresTx) Books() shared.BookCommandRepository {
	return &bookTxRepo{tx: t.tx, repo: t.books}
}

func (t *postgresTx) Loans() shared.LoanCommandRepository {
	return &loanTxRepo{tx: t.tx, repo: t.loans}
}

func (t *postgresTx) Reservations() shared.ReservationCommandRepository {
	return &reservationTxRepo{tx: t.tx, repo: t.reservations}
}

func (t *postgresTx) Members() shared.MemberCommandRepository {
	return &memberTxRepo{tx: t.tx, repo: t.members}
}

func (t *postgresTx) Audit() shared.AuditRecorder {
	return &auditTxRepo{tx: t.tx, repo: t.audit}
}

func (t *postgresTx) Reads() shared.CommandReads {
	return t.reads
}
