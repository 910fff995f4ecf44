package readstore

import (
	"context"
	"time"

	"library-circulation/internal/infra"
	"library-circulation/internal/infra/db"
	"library-circulation/internal/pkg/clock"
	"library-circulation/internal/pkg/pgconv"
	"library-circulation/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
)

var dialect = goqu.Dialect("postgres")

type LoanReadStore struct {
	db  db.DBTX
	clk clock.Clock
}

func NewLoanReadStore(dbtx db.DBTX, clk clock.Clock) *LoanReadStore {
	return &LoanReadStore{db: dbtx, clk: clk}
}

func loanStatus(returnedAt *time.Time, dueDate, asOf time.Time) string {
	switch {
	case returnedAt != nil:
		return queries.StatusReturned
	case dueDate.Before(asOf):
		return queries.StatusOverdue
	default:
		return queries.StatusActive
	}
}

func scanLoanView(row pgconv.RowScanner, asOf time.Time) (*queries.LoanView, error) {
	var v queries.LoanView
	err := row.Scan(&v.ID, &v.BookID, &v.BookTitle, &v.MemberID, &v.MemberName, &v.BorrowedAt, &v.DueDate, &v.ReturnedAt)
	if err != nil {
		return nil, err
	}
	v.Status = loanStatus(v.ReturnedAt, v.DueDate, asOf)
	return &v, nil
}

func (s *LoanReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LoanView, error) {
	row := s.db.QueryRow(ctx,
		`SELECT l.id, l.book_id, b.title, l.member_id, m.name, l.borrowed_at, l.due_date, l.returned_at
		   FROM loans l
		   JOIN books b ON b.id = l.book_id
		   JOIN members m ON m.id = l.member_id
		  WHERE l.id = $1`,
		id,
	)
	v, err := scanLoanView(row, s.clk.Now())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepositoryError("loan not found", infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find loan", err)
	}
	return v, nil
}

// Search builds the filter dynamically. Unset fields add no predicate, so
// the query degrades to a plain paged listing when the filter is empty.
func (s *LoanReadStore) Search(ctx context.Context, filter queries.LoanSearchFilter) ([]queries.LoanView, error) {
	ds := dialect.From(goqu.T("loans").As("l")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("l.book_id")))).
		Join(goqu.T("members").As("m"), goqu.On(goqu.I("m.id").Eq(goqu.I("l.member_id")))).
		Select(
			goqu.I("l.id"), goqu.I("l.book_id"), goqu.I("b.title"),
			goqu.I("l.member_id"), goqu.I("m.name"),
			goqu.I("l.borrowed_at"), goqu.I("l.due_date"), goqu.I("l.returned_at"),
		)

	if filter.MemberID != nil {
		ds = ds.Where(goqu.I("l.member_id").Eq(*filter.MemberID))
	}
	if filter.BookID != nil {
		ds = ds.Where(goqu.I("l.book_id").Eq(*filter.BookID))
	}
	switch filter.Status {
	case queries.StatusActive:
		ds = ds.Where(goqu.I("l.returned_at").IsNull())
	case queries.StatusReturned:
		ds = ds.Where(goqu.I("l.returned_at").IsNotNull())
	case queries.StatusOverdue:
		ds = ds.Where(goqu.I("l.returned_at").IsNull(), goqu.I("l.due_date").Lt(filter.AsOf))
	}
	if filter.From != nil {
		ds = ds.Where(goqu.I("l.borrowed_at").Gte(*filter.From))
	}
	if filter.To != nil {
		ds = ds.Where(goqu.I("l.borrowed_at").Lt(*filter.To))
	}

	ds = ds.Order(goqu.I("l.borrowed_at").Desc()).
		Limit(uint(filter.Limit)).
		Offset(uint(filter.Offset))

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build loan search query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search loans", err)
	}
	defer rows.Close()

	views := make([]queries.LoanView, 0)
	for rows.Next() {
		v, err := scanLoanView(rows, filter.AsOf)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan loan row", err)
		}
		views = append(views, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate loan rows", err)
	}
	return views, nil
}

func (s *LoanReadStore) ListByMember(ctx context.Context, memberID uuid.UUID) ([]queries.LoanView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT l.id, l.book_id, b.title, l.member_id, m.name, l.borrowed_at, l.due_date, l.returned_at
		   FROM loans l
		   JOIN books b ON b.id = l.book_id
		   JOIN members m ON m.id = l.member_id
		  WHERE l.member_id = $1
		  ORDER BY l.borrowed_at DESC`,
		memberID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list member loans", err)
	}
	defer rows.Close()

	now := s.clk.Now()
	views := make([]queries.LoanView, 0)
	for rows.Next() {
		v, err := scanLoanView(rows, now)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan loan row", err)
		}
		views = append(views, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate loan rows", err)
	}
	return views, nil
}
