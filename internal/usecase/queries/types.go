package queries

import (
	"time"

	"github.com/google/uuid"
)

// Views are flat read models shaped for API responses. They are produced by
// the read stores directly from SQL rows; no domain entities are materialized
// on the query path.

type BookView struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type MemberView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// LoanView.Status is derived at read time: RETURNED when returned_at is set,
// OVERDUE when active past the due date, ACTIVE otherwise. Overdue is never
// stored.
type LoanView struct {
	ID         uuid.UUID  `json:"id"`
	BookID     uuid.UUID  `json:"book_id"`
	BookTitle  string     `json:"book_title"`
	MemberID   uuid.UUID  `json:"member_id"`
	MemberName string     `json:"member_name"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueDate    time.Time  `json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	Status     string     `json:"status"`
}

type ReservationView struct {
	ID          uuid.UUID  `json:"id"`
	BookID      uuid.UUID  `json:"book_id"`
	BookTitle   string     `json:"book_title"`
	MemberID    uuid.UUID  `json:"member_id"`
	MemberName  string     `json:"member_name"`
	RoleName    string     `json:"role_name"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	FulfilledAt *time.Time `json:"fulfilled_at,omitempty"`
	CanceledAt  *time.Time `json:"canceled_at,omitempty"`
}

type AuditView struct {
	ID         uuid.UUID  `json:"id"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty"`
	ActorEmail string     `json:"actor_email"`
	Action     string     `json:"action"`
	Entity     string     `json:"entity"`
	EntityID   *uuid.UUID `json:"entity_id,omitempty"`
	Detail     string     `json:"detail,omitempty"`
	RecordedAt time.Time  `json:"recorded_at"`
}

// Loan status filter values. OVERDUE is a derived state.
const (
	StatusActive   = "ACTIVE"
	StatusReturned = "RETURNED"
	StatusOverdue  = "OVERDUE"
)

// LoanSearchFilter narrows the loan search. Zero values mean "no constraint".
// Status accepts ACTIVE, RETURNED or OVERDUE; OVERDUE selects active loans
// whose due date lies before AsOf.
type LoanSearchFilter struct {
	MemberID *uuid.UUID
	BookID   *uuid.UUID
	Status   string
	From     *time.Time
	To       *time.Time
	AsOf     time.Time
	Limit    int
	Offset   int
}

// AuditSearchFilter narrows the audit trail listing.
type AuditSearchFilter struct {
	ActorEmail string
	Entity     string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}
