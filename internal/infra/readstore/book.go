package readstore

import (
	"context"

	"library-circulation/internal/infra"
	"library-circulation/internal/infra/db"
	"library-circulation/internal/pkg/pgconv"
	"library-circulation/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookReadStore struct {
	db db.DBTX
}

func NewBookReadStore(dbtx db.DBTX) *BookReadStore {
	return &BookReadStore{db: dbtx}
}

const bookViewColumns = `id, title, author, isbn, total_copies, available_copies, created_at, updated_at`

func scanBookView(row pgconv.RowScanner) (*queries.BookView, error) {
	var v queries.BookView
	err := row.Scan(&v.ID, &v.Title, &v.Author, &v.ISBN, &v.TotalCopies, &v.AvailableCopies, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *BookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+bookViewColumns+` FROM books WHERE id = $1`, id)
	v, err := scanBookView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepositoryError("book not found", infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book", err)
	}
	return v, nil
}

func (s *BookReadStore) List(ctx context.Context, limit, offset int) ([]queries.BookView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+bookViewColumns+` FROM books ORDER BY title ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books", err)
	}
	defer rows.Close()

	views := make([]queries.BookView, 0)
	for rows.Next() {
		v, err := scanBookView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		views = append(views, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate book rows", err)
	}
	return views, nil
}

func (s *BookReadStore) SearchByTitle(ctx context.Context, title string, limit, offset int) ([]queries.BookView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+bookViewColumns+` FROM books WHERE title ILIKE '%' || $1 || '%' ORDER BY title ASC LIMIT $2 OFFSET $3`,
		title, limit, offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search books", err)
	}
	defer rows.Close()

	views := make([]queries.BookView, 0)
	for rows.Next() {
		v, err := scanBookView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		views = append(views, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate book rows", err)
	}
	return views, nil
}
