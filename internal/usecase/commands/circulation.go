package commands

import (
	"context"
	"log/slog"
	"time"

	"library-circulation/internal/domain/loan"
	"library-circulation/internal/domain/reservation"
	"library-circulation/internal/infra"
	"library-circulation/internal/pkg/clock"
	"library-circulation/internal/pkg/config"
	"library-circulation/internal/pkg/errs"
	"library-circulation/internal/usecase/shared"

	"github.com/google/uuid"
)

// CirculationCommands orchestrates borrow and return. Each workflow runs its
// reads, gates and writes inside one unit-of-work transaction so a borrow can
// never consume a copy without a loan row appearing, and vice versa.
type CirculationCommands struct {
	uow shared.UnitOfWork
	clk clock.Clock
	cfg config.BorrowingConfig
	log *slog.Logger
}

func NewCirculationCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.BorrowingConfig, log *slog.Logger) *CirculationCommands {
	return &CirculationCommands{uow: uow, clk: clk, cfg: cfg, log: log}
}

// Borrow lends a copy of the book to the member. When no copy is available it
// enqueues a reservation instead and reports it via ReservationQueuedError.
// The eligibility gates run in order: existence, active membership, loan
// limit, overdue check; the conditional decrement is the authoritative
// availability gate under concurrency.
func (c *CirculationCommands) Borrow(ctx context.Context, actor shared.Actor, bookID, memberID uuid.UUID) (uuid.UUID, error) {
	var (
		loanID   uuid.UUID
		queuedID *uuid.UUID
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bk, err := tx.Reads().BookByID(ctx, bookID)
		if err != nil {
			return markRead(err, ErrBookNotFound)
		}
		mem, err := tx.Reads().MemberByID(ctx, memberID)
		if err != nil {
			return markRead(err, ErrMemberNotFound)
		}
		if !mem.IsActive {
			return ErrMemberInactive
		}

		now := c.clk.Now()

		if bk.AvailableCopies <= 0 {
			res := reservation.NewReservation(bookID, memberID, mem.Role, now)
			id, err := tx.Reservations().Create(ctx, res)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			queuedID = &id
			return recordAuditEntry(ctx, tx, actor, "RESERVATION_QUEUED", "reservation", &id, map[string]any{
				"book_id":   bookID.String(),
				"member_id": memberID.String(),
			}, now)
		}

		count, err := tx.Reads().CountActiveLoans(ctx, memberID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if count >= int64(c.cfg.MaxActiveLoansPerMember) {
			return ErrLoanLimitReached
		}

		overdue, err := tx.Reads().HasOverdueLoan(ctx, memberID, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if overdue {
			return ErrOverdueLoans
		}

		applied, err := tx.Books().ConsumeCopy(ctx, bookID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !applied {
			// another borrower took the last copy after the fast-path check
			return ErrNoCopiesAvailable
		}

		l, err := loan.NewLoan(bookID, memberID, now, c.cfg.MaxLoanDays)
		if err != nil {
			return err
		}
		id, err := tx.Loans().Create(ctx, l)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		loanID = id

		return recordAuditEntry(ctx, tx, actor, "BORROW_BOOK", "loan", &id, map[string]any{
			"book_id":   bookID.String(),
			"member_id": memberID.String(),
			"due_date":  l.DueDate(),
		}, now)
	})
	if err != nil {
		return uuid.Nil, err
	}
	if queuedID != nil {
		return uuid.Nil, ReservationQueuedError{ReservationID: *queuedID}
	}
	return loanID, nil
}

// Return closes the loan, puts the copy back on the shelf and hands it to the
// next waiting reservation if there is one. The shelf increment and the
// fulfillment are best effort: their business non-applicability is swallowed,
// store failures abort the transaction.
func (c *CirculationCommands) Return(ctx context.Context, actor shared.Actor, loanID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Reads().LoanByID(ctx, loanID)
		if err != nil {
			return markRead(err, ErrLoanNotFound)
		}

		now := c.clk.Now()

		applied, err := tx.Loans().MarkReturned(ctx, loanID, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !applied {
			return ErrLoanAlreadyReturned
		}

		released, err := tx.Books().ReleaseCopy(ctx, l.BookID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !released {
			c.log.WarnContext(ctx, "copy release skipped, shelf already full",
				slog.String("book_id", l.BookID.String()),
				slog.String("loan_id", loanID.String()))
		}

		fulfilled, err := c.fulfillNext(ctx, tx, l.BookID, now)
		if err != nil {
			return err
		}

		detail := map[string]any{
			"book_id":   l.BookID.String(),
			"member_id": l.MemberID.String(),
		}
		if fulfilled != nil {
			detail["fulfilled_reservation_id"] = fulfilled.String()
		}
		return recordAuditEntry(ctx, tx, actor, "RETURN_BOOK", "loan", &loanID, detail, now)
	})
}

// fulfillNext hands the just-returned copy to the highest-priority pending
// reservation. The reserved member's loan limit and overdue state are not
// re-checked here; eligibility was validated when the reservation was made.
// If the copy is gone again by the time the reservation is picked, the
// reservation still completes as fulfilled, without a loan.
func (c *CirculationCommands) fulfillNext(ctx context.Context, tx shared.Tx, bookID uuid.UUID, now time.Time) (*uuid.UUID, error) {
	next, err := tx.Reservations().NextPending(ctx, bookID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if next == nil {
		return nil, nil
	}

	applied, err := tx.Reservations().MarkFulfilled(ctx, next.ID(), now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !applied {
		// lost a race with a concurrent return, nothing to do
		return nil, nil
	}

	consumed, err := tx.Books().ConsumeCopy(ctx, bookID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	resID := next.ID()
	if !consumed {
		c.log.WarnContext(ctx, "reservation fulfilled without loan, no copy left",
			slog.String("reservation_id", resID.String()),
			slog.String("book_id", bookID.String()))
		return &resID, nil
	}

	l, err := loan.NewLoan(bookID, next.MemberID(), now, c.cfg.MaxLoanDays)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Loans().Create(ctx, l); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &resID, nil
}

// recordAuditEntry writes the audit row on the same transaction as the action
// it describes.
func recordAuditEntry(ctx context.Context, tx shared.Tx, actor shared.Actor, action, entity string, entityID *uuid.UUID, detail map[string]any, now time.Time) error {
	entry := shared.AuditEntry{
		ActorEmail: actor.Email,
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		Detail:     detail,
		RecordedAt: now,
	}
	if actor.ID != uuid.Nil {
		id := actor.ID
		entry.ActorID = &id
	}
	if err := tx.Audit().Record(ctx, entry); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// markRead maps a not-found read onto its sentinel and everything else onto
// the store-failure sentinel.
func markRead(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
