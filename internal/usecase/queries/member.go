package queries

import (
	"context"

	"library-circulation/internal/infra"
	"library-circulation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound    = errs.New("member not found")
	ErrMemberQueryFailed = errs.New("failed to query members")
)

type MemberReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MemberView, error)
	List(ctx context.Context, limit, offset int) ([]MemberView, error)
}

type MemberQueries struct {
	reads MemberReadStore
}

func NewMemberQueries(reads MemberReadStore) *MemberQueries {
	return &MemberQueries{reads: reads}
}

func (q *MemberQueries) GetMember(ctx context.Context, id uuid.UUID) (*MemberView, error) {
	view, err := q.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrMemberNotFound)
		}
		return nil, errs.Mark(err, ErrMemberQueryFailed)
	}
	return view, nil
}

func (q *MemberQueries) ListMembers(ctx context.Context, limit, offset int) ([]MemberView, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	views, err := q.reads.List(ctx, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, ErrMemberQueryFailed)
	}
	return views, nil
}
