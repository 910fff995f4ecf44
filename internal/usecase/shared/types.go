package shared

import (
	"time"

	"github.com/google/uuid"
)

// Snapshots are read models consumed by command workflows. They carry the
// fields decisions are made on and nothing else; list endpoints use the
// richer views in usecase/queries.

type BookSnapshot struct {
	ID              uuid.UUID
	Title           string
	Author          string
	ISBN            string
	TotalCopies     int
	AvailableCopies int
}

type MemberSnapshot struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Role     string
	IsActive bool
}

type LoanSnapshot struct {
	ID         uuid.UUID
	BookID     uuid.UUID
	MemberID   uuid.UUID
	BorrowedAt time.Time
	DueDate    time.Time
	ReturnedAt *time.Time
}

type ReservationSnapshot struct {
	ID        uuid.UUID
	BookID    uuid.UUID
	MemberID  uuid.UUID
	RoleName  string
	Status    string
	CreatedAt time.Time
}

// Actor identifies the authenticated member performing a command. It is
// populated by the auth middleware and travels in explicitly; nothing reads
// ambient request state.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  string
}

// AuditEntry attributes a state change to the acting member. ActorID is nil
// for unauthenticated actions such as failed logins.
type AuditEntry struct {
	ActorID    *uuid.UUID
	ActorEmail string
	Action     string
	Entity     string
	EntityID   *uuid.UUID
	Detail     map[string]any
	RecordedAt time.Time
}
