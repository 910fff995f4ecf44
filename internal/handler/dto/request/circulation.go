package request

import "github.com/google/uuid"

type BorrowRequest struct {
	BookID   uuid.UUID `json:"book_id" binding:"required"`
	MemberID uuid.UUID `json:"member_id" binding:"required"`
}

type CreateReservationRequest struct {
	BookID   uuid.UUID `json:"book_id" binding:"required"`
	MemberID uuid.UUID `json:"member_id" binding:"required"`
}
