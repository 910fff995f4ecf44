package queries

import (
	"context"

	"library-circulation/internal/infra"
	"library-circulation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound    = errs.New("reservation not found")
	ErrReservationQueryFailed = errs.New("failed to query reservations")
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ListPendingByBook returns the queue in fulfillment order: role rank
	// first, then arrival time.
	ListPendingByBook(ctx context.Context, bookID uuid.UUID) ([]ReservationView, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]ReservationView, error)
}

type ReservationQueries struct {
	reads ReservationReadStore
}

func NewReservationQueries(reads ReservationReadStore) *ReservationQueries {
	return &ReservationQueries{reads: reads}
}

func (q *ReservationQueries) GetReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, errs.Mark(err, ErrReservationQueryFailed)
	}
	return view, nil
}

func (q *ReservationQueries) ListBookQueue(ctx context.Context, bookID uuid.UUID) ([]ReservationView, error) {
	views, err := q.reads.ListPendingByBook(ctx, bookID)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationQueryFailed)
	}
	return views, nil
}

func (q *ReservationQueries) ListMemberReservations(ctx context.Context, memberID uuid.UUID) ([]ReservationView, error) {
	views, err := q.reads.ListByMember(ctx, memberID)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationQueryFailed)
	}
	return views, nil
}
