package response

import (
	"time"

	"library-circulation/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromBookView(v *queries.BookView) *BookResponse {
	return &BookResponse{
		ID:              v.ID,
		Title:           v.Title,
		Author:          v.Author,
		ISBN:            v.ISBN,
		TotalCopies:     v.TotalCopies,
		AvailableCopies: v.AvailableCopies,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromBookViews(vs []queries.BookView) ([]BookResponse, error) {
	return copyList[queries.BookView, BookResponse](vs)
}
