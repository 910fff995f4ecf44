package repository

import (
	"context"
	"time"

	"library-circulation/internal/domain/reservation"
	"library-circulation/internal/infra"
	"library-circulation/internal/infra/db"
	"library-circulation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// ReservationRepository is the sole writer of reservations rows.
type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	tag, err := dbtx.Exec(ctx,
		`INSERT INTO reservations (id, book_id, member_id, role_name, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		res.ID(), res.BookID(), res.MemberID(), res.RoleName(), res.Status().String(), res.CreatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, infra.NewRepositoryError("reservation insert affected no rows", infra.KindUpdateFailed)
	}
	return res.ID(), nil
}

// Cancel transitions PENDING -> CANCELED. applied=false covers both "does not
// exist" and "already fulfilled/canceled" without distinguishing them.
func (r *ReservationRepository) Cancel(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID, now time.Time) (bool, error) {
	tag, err := dbtx.Exec(ctx,
		`UPDATE reservations
		    SET status = 'CANCELED', canceled_at = $2
		  WHERE id = $1 AND status = 'PENDING'`,
		reservationID, now,
	)
	if err != nil {
		return false, wrapWriteErr("failed to cancel reservation", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkFulfilled transitions PENDING -> FULFILLED. Two concurrent return events
// can race to fulfill the same reservation; the guard lets only one win.
func (r *ReservationRepository) MarkFulfilled(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID, now time.Time) (bool, error) {
	tag, err := dbtx.Exec(ctx,
		`UPDATE reservations
		    SET status = 'FULFILLED', fulfilled_at = $2
		  WHERE id = $1 AND status = 'PENDING'`,
		reservationID, now,
	)
	if err != nil {
		return false, wrapWriteErr("failed to fulfill reservation", err)
	}
	return tag.RowsAffected() == 1, nil
}

// NextPending returns the pending reservation with the lowest priority key
// (role rank, then arrival time) for the book, or nil if the queue is empty.
// The role CASE mirrors member.FulfillmentRank.
func (r *ReservationRepository) NextPending(ctx context.Context, dbtx db.DBTX, bookID uuid.UUID) (*reservation.Reservation, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT id, book_id, member_id, role_name, status, created_at, fulfilled_at, canceled_at
		   FROM reservations
		  WHERE book_id = $1 AND status = 'PENDING'
		  ORDER BY CASE role_name WHEN 'ADMIN' THEN 1 WHEN 'LIBRARIAN' THEN 2 ELSE 3 END,
		           created_at ASC
		  LIMIT 1`,
		bookID,
	)

	var (
		id, bID, memberID     uuid.UUID
		roleName, status      string
		createdAt             time.Time
		fulfilledAt, canceled *time.Time
	)
	if err := row.Scan(&id, &bID, &memberID, &roleName, &status, &createdAt, &fulfilledAt, &canceled); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find next pending reservation", err)
	}

	res, err := reservation.ReconstructReservation(id, bID, memberID, roleName, reservation.Status(status), createdAt, fulfilledAt, canceled)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation row", err)
	}
	return res, nil
}
