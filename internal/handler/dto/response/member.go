package response

import (
	"time"

	"library-circulation/internal/usecase/queries"

	"github.com/google/uuid"
)

type MemberResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromMemberView(v *queries.MemberView) *MemberResponse {
	return &MemberResponse{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Role:      v.Role,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
	}
}

func FromMemberViews(vs []queries.MemberView) ([]MemberResponse, error) {
	return copyList[queries.MemberView, MemberResponse](vs)
}
