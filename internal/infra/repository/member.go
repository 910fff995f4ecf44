package repository

import (
	"context"

	"library-circulation/internal/domain/member"
	"library-circulation/internal/infra"
	"library-circulation/internal/infra/db"

	"github.com/google/uuid"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (r *MemberRepository) Create(ctx context.Context, dbtx db.DBTX, m *member.Member) error {
	_, err := dbtx.Exec(ctx,
		`INSERT INTO members (id, name, email, password_hash, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now(), now())`,
		m.ID(), m.Name(), m.Email().String(), m.PasswordHash(), m.Role().String(), m.IsActive(),
	)
	if err != nil {
		return wrapWriteErr("failed to insert member", err)
	}
	return nil
}

func (r *MemberRepository) Update(ctx context.Context, dbtx db.DBTX, m *member.Member) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE members
		 SET name = $2, email = $3, role = $4, is_active = $5, updated_at = now()
		 WHERE id = $1`,
		m.ID(), m.Name(), m.Email().String(), m.Role().String(), m.IsActive(),
	)
	if err != nil {
		return wrapWriteErr("failed to update member", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError("member not found", infra.KindNotFound)
	}
	return nil
}

// Deactivate soft-deletes. Loans and reservations keep their member rows.
func (r *MemberRepository) Deactivate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE members SET is_active = false, updated_at = now() WHERE id = $1 AND is_active`,
		id,
	)
	if err != nil {
		return wrapWriteErr("failed to deactivate member", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError("member not found", infra.KindNotFound)
	}
	return nil
}
