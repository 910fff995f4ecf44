package queries

import (
	"context"

	"library-circulation/internal/infra"
	"library-circulation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookNotFound    = errs.New("book not found")
	ErrBookQueryFailed = errs.New("failed to query books")
)

type BookReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	List(ctx context.Context, limit, offset int) ([]BookView, error)
	SearchByTitle(ctx context.Context, title string, limit, offset int) ([]BookView, error)
}

type BookQueries struct {
	reads BookReadStore
}

func NewBookQueries(reads BookReadStore) *BookQueries {
	return &BookQueries{reads: reads}
}

func (q *BookQueries) GetBook(ctx context.Context, id uuid.UUID) (*BookView, error) {
	view, err := q.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookNotFound)
		}
		return nil, errs.Mark(err, ErrBookQueryFailed)
	}
	return view, nil
}

// ListBooks supports an optional title substring match.
func (q *BookQueries) ListBooks(ctx context.Context, title string, limit, offset int) ([]BookView, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	var (
		views []BookView
		err   error
	)
	if title != "" {
		views, err = q.reads.SearchByTitle(ctx, title, limit, offset)
	} else {
		views, err = q.reads.List(ctx, limit, offset)
	}
	if err != nil {
		return nil, errs.Mark(err, ErrBookQueryFailed)
	}
	return views, nil
}
