package commands

import (
	"context"

	"library-circulation/internal/domain/reservation"
	"library-circulation/internal/pkg/clock"
	"library-circulation/internal/pkg/errs"
	"library-circulation/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationCommands struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock) *ReservationCommands {
	return &ReservationCommands{uow: uow, clk: clk}
}

// Create enqueues a pending reservation. The member's role is snapshotted at
// enqueue time; later role changes do not reorder the queue.
func (c *ReservationCommands) Create(ctx context.Context, actor shared.Actor, bookID, memberID uuid.UUID) (uuid.UUID, error) {
	var reservationID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().BookByID(ctx, bookID); err != nil {
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
		res := reservation.NewReservation(bookID, memberID, mem.Role, now)
		id, err := tx.Reservations().Create(ctx, res)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		reservationID = id

		return recordAuditEntry(ctx, tx, actor, "CREATE_RESERVATION", "reservation", &id, map[string]any{
			"book_id":   bookID.String(),
			"member_id": memberID.String(),
		}, now)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reservationID, nil
}

// Cancel transitions a pending reservation to canceled. A reservation that
// does not exist and one already fulfilled or canceled produce the same
// error; the conditional update cannot tell them apart.
func (c *ReservationCommands) Cancel(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clk.Now()

		applied, err := tx.Reservations().Cancel(ctx, reservationID, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !applied {
			return ErrReservationNotPending
		}

		return recordAuditEntry(ctx, tx, actor, "CANCEL_RESERVATION", "reservation", &reservationID, nil, now)
	})
}
