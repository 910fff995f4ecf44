package response

import (
	"time"

	"library-circulation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
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

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:          v.ID,
		BookID:      v.BookID,
		BookTitle:   v.BookTitle,
		MemberID:    v.MemberID,
		MemberName:  v.MemberName,
		RoleName:    v.RoleName,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
		FulfilledAt: v.FulfilledAt,
		CanceledAt:  v.CanceledAt,
	}
}

func FromReservationViews(vs []queries.ReservationView) ([]ReservationResponse, error) {
	return copyList[queries.ReservationView, ReservationResponse](vs)
}
