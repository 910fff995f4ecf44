package readstore

import (
	"context"

	"library-circulation/internal/infra"
	"library-circulation/internal/infra/db"
	"library-circulation/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
)

type AuditReadStore struct {
	db db.DBTX
}

func NewAuditReadStore(dbtx db.DBTX) *AuditReadStore {
	return &AuditReadStore{db: dbtx}
}

func (s *AuditReadStore) Search(ctx context.Context, filter queries.AuditSearchFilter) ([]queries.AuditView, error) {
	ds := dialect.From(goqu.T("audit_log")).
		Select(
			goqu.I("id"), goqu.I("actor_id"), goqu.I("actor_email"),
			goqu.I("action"), goqu.I("entity"), goqu.I("entity_id"),
			goqu.COALESCE(goqu.L("detail::text"), goqu.V("")).As("detail"),
			goqu.I("recorded_at"),
		)

	if filter.ActorEmail != "" {
		ds = ds.Where(goqu.I("actor_email").Eq(filter.ActorEmail))
	}
	if filter.Entity != "" {
		ds = ds.Where(goqu.I("entity").Eq(filter.Entity))
	}
	if filter.From != nil {
		ds = ds.Where(goqu.I("recorded_at").Gte(*filter.From))
	}
	if filter.To != nil {
		ds = ds.Where(goqu.I("recorded_at").Lt(*filter.To))
	}

	ds = ds.Order(goqu.I("recorded_at").Desc()).
		Limit(uint(filter.Limit)).
		Offset(uint(filter.Offset))

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build audit search query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search audit trail", err)
	}
	defer rows.Close()

	views := make([]queries.AuditView, 0)
	for rows.Next() {
		var v queries.AuditView
		err := rows.Scan(&v.ID, &v.ActorID, &v.ActorEmail, &v.Action, &v.Entity, &v.EntityID, &v.Detail, &v.RecordedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan audit row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate audit rows", err)
	}
	return views, nil
}
