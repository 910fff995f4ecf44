//go:build unit || e2e

package builder

import (
	"time"

	dombook "library-circulation/internal/domain/book"
	reqdto "library-circulation/internal/handler/dto/request"
	"library-circulation/internal/usecase/queries"
	"library-circulation/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookBuilder struct {
	ID              uuid.UUID
	Title           string
	Author          string
	ISBN            string
	TotalCopies     int
	AvailableCopies int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookBuilder() *BookBuilder {
	now := time.Now()
	return &BookBuilder{
		ID:              uuid.New(),
		Title:           "The Go Programming Language",
		Author:          "Donovan, Kernighan",
		ISBN:            "978-0134190440",
		TotalCopies:     3,
		AvailableCopies: 3,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

func (b *BookBuilder) BuildDomain() (*dombook.Book, error) {
	return dombook.NewBook(b.Title, b.Author, b.ISBN, b.TotalCopies, b.AvailableCopies)
}

func (b *BookBuilder) BuildSnapshot() *shared.BookSnapshot {
	return &shared.BookSnapshot{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
	}
}

func (b *BookBuilder) BuildView() *queries.BookView {
	return &queries.BookView{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookBuilder) BuildCreateRequestDTO() reqdto.CreateBookRequest {
	return reqdto.CreateBookRequest{
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		TotalCopies: b.TotalCopies,
	}
}

func (b *BookBuilder) WithTitle(title string) *BookBuilder {
	b.Title = title
	return b
}

func (b *BookBuilder) WithISBN(isbn string) *BookBuilder {
	b.ISBN = isbn
	return b
}

func (b *BookBuilder) WithCopies(total, available int) *BookBuilder {
	b.TotalCopies = total
	b.AvailableCopies = available
	return b
}

func (b *BookBuilder) AsOutOfStock() *BookBuilder {
	b.AvailableCopies = 0
	return b
}
