package response

import (
	"time"

	"library-circulation/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoanResponse struct {
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

// BorrowQueuedResponse is returned when borrowing fell through to the
// reservation queue.
type BorrowQueuedResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Message       string    `json:"message"`
}

func FromLoanView(v *queries.LoanView) *LoanResponse {
	return &LoanResponse{
		ID:         v.ID,
		BookID:     v.BookID,
		BookTitle:  v.BookTitle,
		MemberID:   v.MemberID,
		MemberName: v.MemberName,
		BorrowedAt: v.BorrowedAt,
		DueDate:    v.DueDate,
		ReturnedAt: v.ReturnedAt,
		Status:     v.Status,
	}
}

func FromLoanViews(vs []queries.LoanView) ([]LoanResponse, error) {
	return copyList[queries.LoanView, LoanResponse](vs)
}
