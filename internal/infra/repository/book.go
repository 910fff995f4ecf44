package repository

import (
	"context"

	"library-circulation/internal/domain/book"
	"library-circulation/internal/infra"
	"library-circulation/internal/infra/db"

	"github.com/google/uuid"
)

// BookRepository is the sole writer of books rows. Copy counts are mutated
// only through the conditional ConsumeCopy/ReleaseCopy statements; a plain
// read-then-write would let two concurrent borrows both observe the last copy.
type BookRepository struct{}

func NewBookRepository() *BookRepository {
	return &BookRepository{}
}

// ConsumeCopy decrements available_copies iff it is still positive. The WHERE
// guard makes the check-and-decrement a single atomic statement; at most one
// of N concurrent callers succeeds for the last copy.
func (r *BookRepository) ConsumeCopy(ctx context.Context, dbtx db.DBTX, bookID uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx,
		`UPDATE books
		    SET available_copies = available_copies - 1, updated_at = now()
		  WHERE id = $1 AND available_copies > 0`,
		bookID,
	)
	if err != nil {
		return false, wrapWriteErr("failed to consume book copy", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseCopy increments available_copies iff it is below total_copies,
// guarding against double-return bugs pushing the count past the catalog
// total.
func (r *BookRepository) ReleaseCopy(ctx context.Context, dbtx db.DBTX, bookID uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx,
		`UPDATE books
		    SET available_copies = available_copies + 1, updated_at = now()
		  WHERE id = $1 AND available_copies < total_copies`,
		bookID,
	)
	if err != nil {
		return false, wrapWriteErr("failed to release book copy", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *BookRepository) Create(ctx context.Context, dbtx db.DBTX, b *book.Book) (uuid.UUID, error) {
	tag, err := dbtx.Exec(ctx,
		`INSERT INTO books (id, title, author, isbn, total_copies, available_copies)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID(), b.Title(), b.Author(), b.ISBN(), b.TotalCopies(), b.AvailableCopies(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create book", err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, infra.NewRepositoryError("book insert affected no rows", infra.KindUpdateFailed)
	}
	return b.ID(), nil
}

// Update rewrites catalog fields. Copy counts stay under the conditional
// mutators and are deliberately absent here.
func (r *BookRepository) Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, title, author, isbn string, totalCopies int) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE books
		    SET title = $2, author = $3, isbn = $4, total_copies = $5, updated_at = now()
		  WHERE id = $1 AND available_copies <= $5`,
		id, title, author, isbn, totalCopies,
	)
	if err != nil {
		return wrapWriteErr("failed to update book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError("book not found or total below available copies", infra.KindNotFound)
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError("book not found", infra.KindNotFound)
	}
	return nil
}
