package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyProcessed = errors.New("reservation already processed")
	ErrInvalidStatus    = errors.New("invalid reservation status")
)

// Reservation snapshots the member's role name at creation time; fulfillment
// ordering uses the snapshot, never the member's current role.
type Reservation struct {
	id          uuid.UUID
	bookID      uuid.UUID
	memberID    uuid.UUID
	roleName    string
	status      Status
	createdAt   time.Time
	fulfilledAt *time.Time
	canceledAt  *time.Time
}

func NewReservation(bookID, memberID uuid.UUID, roleName string, now time.Time) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		bookID:    bookID,
		memberID:  memberID,
		roleName:  roleName,
		status:    StatusPending,
		createdAt: now,
	}
}

func ReconstructReservation(
	id, bookID, memberID uuid.UUID,
	roleName string,
	status Status,
	createdAt time.Time,
	fulfilledAt, canceledAt *time.Time,
) (*Reservation, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Reservation{
		id:          id,
		bookID:      bookID,
		memberID:    memberID,
		roleName:    roleName,
		status:      status,
		createdAt:   createdAt,
		fulfilledAt: fulfilledAt,
		canceledAt:  canceledAt,
	}, nil
}

func (r *Reservation) Fulfill(now time.Time) error {
	if r.status != StatusPending {
		return ErrAlreadyProcessed
	}
	r.status = StatusFulfilled
	t := now
	r.fulfilledAt = &t
	return nil
}

func (r *Reservation) Cancel(now time.Time) error {
	if r.status != StatusPending {
		return ErrAlreadyProcessed
	}
	r.status = StatusCanceled
	t := now
	r.canceledAt = &t
	return nil
}

func (r *Reservation) IsPending() bool {
	return r.status == StatusPending
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) BookID() uuid.UUID       { return r.bookID }
func (r *Reservation) MemberID() uuid.UUID     { return r.memberID }
func (r *Reservation) RoleName() string        { return r.roleName }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) FulfilledAt() *time.Time { return r.fulfilledAt }
func (r *Reservation) CanceledAt() *time.Time  { return r.canceledAt }
