package readstore

import (
	"context"

	"library-circulation/internal/infra"
	"library-circulation/internal/infra/db"
	"library-circulation/internal/pkg/pgconv"
	"library-circulation/internal/usecase/commands"
	"library-circulation/internal/usecase/queries"

	"github.com/google/uuid"
)

type MemberReadStore struct {
	db db.DBTX
}

func NewMemberReadStore(dbtx db.DBTX) *MemberReadStore {
	return &MemberReadStore{db: dbtx}
}

func (s *MemberReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MemberView, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, name, email, role, is_active, created_at FROM members WHERE id = $1`,
		id,
	)

	var v queries.MemberView
	if err := row.Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.IsActive, &v.CreatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepositoryError("member not found", infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member", err)
	}
	return &v, nil
}

// FindAuthByEmail looks up login credentials for an active member.
func (s *MemberReadStore) FindAuthByEmail(ctx context.Context, email string) (*commands.Credential, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role FROM members WHERE email = $1 AND is_active`,
		email,
	)

	var rec commands.Credential
	if err := row.Scan(&rec.MemberID, &rec.Email, &rec.PasswordHash, &rec.Role); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepositoryError("member not found", infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member by email", err)
	}
	return &rec, nil
}

func (s *MemberReadStore) List(ctx context.Context, limit, offset int) ([]queries.MemberView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, email, role, is_active, created_at
		   FROM members
		  ORDER BY created_at DESC
		  LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list members", err)
	}
	defer rows.Close()

	views := make([]queries.MemberView, 0)
	for rows.Next() {
		var v queries.MemberView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.IsActive, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan member row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate member rows", err)
	}
	return views, nil
}
