package response

import (
	"library-circulation/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	Token    string    `json:"token"`
	MemberID uuid.UUID `json:"member_id"`
	Role     string    `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:    r.Token,
		MemberID: r.MemberID,
		Role:     r.Role,
	}
}
