//go:build unit || e2e

package builder

import (
	"time"

	dommember "library-circulation/internal/domain/member"
	domreservation "library-circulation/internal/domain/reservation"
	"library-circulation/internal/usecase/queries"
	"library-circulation/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	BookID     uuid.UUID
	BookTitle  string
	MemberID   uuid.UUID
	MemberName string
	RoleName   string
	Status     domreservation.Status
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.New(),
		BookID:     uuid.New(),
		BookTitle:  "The Go Programming Language",
		MemberID:   uuid.New(),
		MemberName: "Alice Reader",
		RoleName:   dommember.RoleMember.String(),
		Status:     domreservation.StatusPending,
		CreatedAt:  time.Now(),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildDomain() *domreservation.Reservation {
	return domreservation.NewReservation(r.BookID, r.MemberID, r.RoleName, r.CreatedAt)
}

func (r *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:        r.ID,
		BookID:    r.BookID,
		MemberID:  r.MemberID,
		RoleName:  r.RoleName,
		Status:    r.Status.String(),
		CreatedAt: r.CreatedAt,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:         r.ID,
		BookID:     r.BookID,
		BookTitle:  r.BookTitle,
		MemberID:   r.MemberID,
		MemberName: r.MemberName,
		RoleName:   r.RoleName,
		Status:     r.Status.String(),
		CreatedAt:  r.CreatedAt,
	}
}

func (r *ReservationBuilder) WithBookID(id uuid.UUID) *ReservationBuilder {
	r.BookID = id
	return r
}

func (r *ReservationBuilder) WithMemberID(id uuid.UUID) *ReservationBuilder {
	r.MemberID = id
	return r
}

func (r *ReservationBuilder) WithRoleName(roleName string) *ReservationBuilder {
	r.RoleName = roleName
	return r
}

func (r *ReservationBuilder) WithCreatedAt(at time.Time) *ReservationBuilder {
	r.CreatedAt = at
	return r
}

func (r *ReservationBuilder) AsFulfilled() *ReservationBuilder {
	r.Status = domreservation.StatusFulfilled
	return r
}

func (r *ReservationBuilder) AsCanceled() *ReservationBuilder {
	r.Status = domreservation.StatusCanceled
	return r
}
