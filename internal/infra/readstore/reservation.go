package readstore

import (
	"context"

	"library-circulation/internal/infra"
	"library-circulation/internal/infra/db"
	"library-circulation/internal/pkg/pgconv"
	"library-circulation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewQuery = `
SELECT r.id, r.book_id, b.title, r.member_id, m.name, r.role_name, r.status,
       r.created_at, r.fulfilled_at, r.canceled_at
  FROM reservations r
  JOIN books b ON b.id = r.book_id
  JOIN members m ON m.id = r.member_id`

func scanReservationView(row pgconv.RowScanner) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(
		&v.ID, &v.BookID, &v.BookTitle, &v.MemberID, &v.MemberName,
		&v.RoleName, &v.Status, &v.CreatedAt, &v.FulfilledAt, &v.CanceledAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, reservationViewQuery+` WHERE r.id = $1`, id)
	v, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepositoryError("reservation not found", infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return v, nil
}

// ListPendingByBook returns the waiting queue in the order FulfillNext will
// drain it.
func (s *ReservationReadStore) ListPendingByBook(ctx context.Context, bookID uuid.UUID) ([]queries.ReservationView, error) {
	rows, err := s.db.Query(ctx,
		reservationViewQuery+`
		 WHERE r.book_id = $1 AND r.status = 'PENDING'
		 ORDER BY CASE r.role_name WHEN 'ADMIN' THEN 1 WHEN 'LIBRARIAN' THEN 2 ELSE 3 END,
		          r.created_at ASC`,
		bookID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list book reservations", err)
	}
	return collectReservationViews(rows)
}

func (s *ReservationReadStore) ListByMember(ctx context.Context, memberID uuid.UUID) ([]queries.ReservationView, error) {
	rows, err := s.db.Query(ctx,
		reservationViewQuery+` WHERE r.member_id = $1 ORDER BY r.created_at DESC`,
		memberID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list member reservations", err)
	}
	return collectReservationViews(rows)
}

func collectReservationViews(rows pgx.Rows) ([]queries.ReservationView, error) {
	defer rows.Close()

	views := make([]queries.ReservationView, 0)
	for rows.Next() {
		v, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		views = append(views, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return views, nil
}
