package queries

import (
	"context"

	"library-circulation/internal/infra"
	"library-circulation/internal/pkg/clock"
	"library-circulation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrLoanNotFound      = errs.New("loan not found")
	ErrInvalidLoanStatus = errs.New("invalid loan status filter")
	ErrLoanQueryFailed   = errs.New("failed to query loans")
)

const defaultSearchLimit = 50

// LoanReadStore is the read side of the loans table. Implementations join
// book and member names into the views.
type LoanReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LoanView, error)
	Search(ctx context.Context, filter LoanSearchFilter) ([]LoanView, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]LoanView, error)
}

type LoanQueries struct {
	reads LoanReadStore
	clk   clock.Clock
}

func NewLoanQueries(reads LoanReadStore, clk clock.Clock) *LoanQueries {
	return &LoanQueries{reads: reads, clk: clk}
}

func (q *LoanQueries) GetLoan(ctx context.Context, id uuid.UUID) (*LoanView, error) {
	view, err := q.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrLoanNotFound)
		}
		return nil, errs.Mark(err, ErrLoanQueryFailed)
	}
	return view, nil
}

// SearchLoans filters loans by member, book, status and borrow window.
// An unset status matches everything; OVERDUE is evaluated against the
// current clock, not a stored flag.
func (q *LoanQueries) SearchLoans(ctx context.Context, filter LoanSearchFilter) ([]LoanView, error) {
	switch filter.Status {
	case "", StatusActive, StatusReturned, StatusOverdue:
	default:
		return nil, ErrInvalidLoanStatus
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultSearchLimit
	}
	filter.AsOf = q.clk.Now()

	views, err := q.reads.Search(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrLoanQueryFailed)
	}
	return views, nil
}

func (q *LoanQueries) ListMemberLoans(ctx context.Context, memberID uuid.UUID) ([]LoanView, error) {
	views, err := q.reads.ListByMember(ctx, memberID)
	if err != nil {
		return nil, errs.Mark(err, ErrLoanQueryFailed)
	}
	return views, nil
}
