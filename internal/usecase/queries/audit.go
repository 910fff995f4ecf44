package queries

import (
	"context"

	"library-circulation/internal/pkg/errs"
)

var ErrAuditQueryFailed = errs.New("failed to query audit trail")

type AuditReadStore interface {
	Search(ctx context.Context, filter AuditSearchFilter) ([]AuditView, error)
}

type AuditQueries struct {
	reads AuditReadStore
}

func NewAuditQueries(reads AuditReadStore) *AuditQueries {
	return &AuditQueries{reads: reads}
}

func (q *AuditQueries) SearchAuditTrail(ctx context.Context, filter AuditSearchFilter) ([]AuditView, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultSearchLimit
	}
	views, err := q.reads.Search(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrAuditQueryFailed)
	}
	return views, nil
}
