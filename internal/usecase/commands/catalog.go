package commands

import (
	"context"

	"library-circulation/internal/domain/book"
	"library-circulation/internal/infra"
	"library-circulation/internal/pkg/clock"
	"library-circulation/internal/pkg/errs"
	"library-circulation/internal/usecase/shared"

	"github.com/google/uuid"
)

// CatalogCommands maintains the book catalog. Copy counts are only touched
// here at creation; circulation owns them afterwards.
type CatalogCommands struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock) *CatalogCommands {
	return &CatalogCommands{uow: uow, clk: clk}
}

type CreateBookInput struct {
	Title       string
	Author      string
	ISBN        string
	TotalCopies int
}

func (c *CatalogCommands) CreateBook(ctx context.Context, actor shared.Actor, in CreateBookInput) (uuid.UUID, error) {
	// a new title starts with every copy on the shelf
	b, err := book.NewBook(in.Title, in.Author, in.ISBN, in.TotalCopies, in.TotalCopies)
	if err != nil {
		return uuid.Nil, err
	}

	var bookID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Books().Create(ctx, b)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateISBN)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		bookID = id

		return recordAuditEntry(ctx, tx, actor, "CREATE_BOOK", "book", &id, map[string]any{
			"isbn":  in.ISBN,
			"title": in.Title,
		}, c.clk.Now())
	})
	if err != nil {
		return uuid.Nil, err
	}
	return bookID, nil
}

type UpdateBookInput struct {
	ID          uuid.UUID
	Title       string
	Author      string
	ISBN        string
	TotalCopies int
}

func (c *CatalogCommands) UpdateBook(ctx context.Context, actor shared.Actor, in UpdateBookInput) error {
	if _, err := book.NewBook(in.Title, in.Author, in.ISBN, in.TotalCopies, 0); err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().BookByID(ctx, in.ID); err != nil {
			return markRead(err, ErrBookNotFound)
		}

		err := tx.Books().Update(ctx, in.ID, in.Title, in.Author, in.ISBN, in.TotalCopies)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				// book exists, so the guarded update can only have been
				// blocked by the shelf count
				return errs.Mark(err, ErrTotalBelowAvailable)
			case infra.IsKind(err, infra.KindDuplicateKey):
				return errs.Mark(err, ErrDuplicateISBN)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return recordAuditEntry(ctx, tx, actor, "UPDATE_BOOK", "book", &in.ID, map[string]any{
			"isbn":  in.ISBN,
			"title": in.Title,
		}, c.clk.Now())
	})
}

func (c *CatalogCommands) DeleteBook(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Books().Delete(ctx, id)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrBookNotFound)
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.Mark(err, ErrBookInUse)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return recordAuditEntry(ctx, tx, actor, "DELETE_BOOK", "book", &id, nil, c.clk.Now())
	})
}
