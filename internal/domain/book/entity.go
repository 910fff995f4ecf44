package book

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle         = errors.New("book title must not be empty")
	ErrEmptyISBN          = errors.New("book isbn must not be empty")
	ErrNegativeCopies     = errors.New("copy counts cannot be negative")
	ErrCopiesExceedTotal  = errors.New("available copies cannot exceed total copies")
	ErrNoAvailableCopies  = errors.New("no available copies")
	ErrAllCopiesAvailable = errors.New("all copies are already available")
)

// Book holds the inventory invariant 0 <= availableCopies <= totalCopies.
// The persisted copy count is only ever mutated through conditional updates;
// the in-memory transitions below exist for catalog validation and tests.
type Book struct {
	id              uuid.UUID
	title           string
	author          string
	isbn            string
	totalCopies     int
	availableCopies int
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBook(title, author, isbn string, totalCopies, availableCopies int) (*Book, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(isbn) == "" {
		return nil, ErrEmptyISBN
	}
	if totalCopies < 0 || availableCopies < 0 {
		return nil, ErrNegativeCopies
	}
	if availableCopies > totalCopies {
		return nil, ErrCopiesExceedTotal
	}
	return &Book{
		id:              uuid.New(),
		title:           title,
		author:          author,
		isbn:            isbn,
		totalCopies:     totalCopies,
		availableCopies: availableCopies,
	}, nil
}

func ReconstructBook(
	id uuid.UUID,
	title, author, isbn string,
	totalCopies, availableCopies int,
	createdAt, updatedAt time.Time,
) *Book {
	return &Book{
		id:              id,
		title:           title,
		author:          author,
		isbn:            isbn,
		totalCopies:     totalCopies,
		availableCopies: availableCopies,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Book) HasAvailableCopies() bool {
	return b.availableCopies > 0
}

// ConsumeCopy is the in-memory mirror of the conditional decrement.
func (b *Book) ConsumeCopy() error {
	if b.availableCopies <= 0 {
		return ErrNoAvailableCopies
	}
	b.availableCopies--
	return nil
}

// ReleaseCopy is the in-memory mirror of the conditional increment.
func (b *Book) ReleaseCopy() error {
	if b.availableCopies >= b.totalCopies {
		return ErrAllCopiesAvailable
	}
	b.availableCopies++
	return nil
}

func (b *Book) ID() uuid.UUID        { return b.id }
func (b *Book) Title() string        { return b.title }
func (b *Book) Author() string       { return b.author }
func (b *Book) ISBN() string         { return b.isbn }
func (b *Book) TotalCopies() int     { return b.totalCopies }
func (b *Book) AvailableCopies() int { return b.availableCopies }
func (b *Book) CreatedAt() time.Time { return b.createdAt }
func (b *Book) UpdatedAt() time.Time { return b.updatedAt }
