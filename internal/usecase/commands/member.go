package commands

import (
	"context"
	"strings"
	"time"

	"library-circulation/internal/domain/member"
	"library-circulation/internal/infra"
	"library-circulation/internal/pkg/clock"
	"library-circulation/internal/pkg/errs"
	"library-circulation/internal/pkg/password"
	"library-circulation/internal/usecase/shared"

	"github.com/google/uuid"
)

type MemberCommands struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewMemberCommands(uow shared.UnitOfWork, clk clock.Clock) *MemberCommands {
	return &MemberCommands{uow: uow, clk: clk}
}

type RegisterMemberInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func (c *MemberCommands) Register(ctx context.Context, actor shared.Actor, in RegisterMemberInput) (uuid.UUID, error) {
	email, err := member.NewEmail(in.Email)
	if err != nil {
		return uuid.Nil, err
	}
	role, err := member.NewRole(in.Role)
	if err != nil {
		return uuid.Nil, err
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return uuid.Nil, err
	}
	m, err := member.NewMember(in.Name, email, hash, role)
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Members().Create(ctx, m); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateEmail)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		id := m.ID()
		return recordAuditEntry(ctx, tx, actor, "REGISTER_MEMBER", "member", &id, map[string]any{
			"email": email.String(),
			"role":  role.String(),
		}, c.clk.Now())
	})
	if err != nil {
		return uuid.Nil, err
	}
	return m.ID(), nil
}

type UpdateMemberInput struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Role     string
	IsActive bool
}

func (c *MemberCommands) Update(ctx context.Context, actor shared.Actor, in UpdateMemberInput) error {
	email, err := member.NewEmail(in.Email)
	if err != nil {
		return err
	}
	role, err := member.NewRole(in.Role)
	if err != nil {
		return err
	}
	if strings.TrimSpace(in.Name) == "" {
		return member.ErrEmptyName
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().MemberByID(ctx, in.ID)
		if err != nil {
			return markRead(err, ErrMemberNotFound)
		}

		// password hash is untouched here; only profile fields change
		m := member.ReconstructMember(current.ID, in.Name, email, "", role, in.IsActive, time.Time{}, time.Time{})
		if err := tx.Members().Update(ctx, m); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrMemberNotFound)
			case infra.IsKind(err, infra.KindDuplicateKey):
				return errs.Mark(err, ErrDuplicateEmail)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return recordAuditEntry(ctx, tx, actor, "UPDATE_MEMBER", "member", &in.ID, map[string]any{
			"email": email.String(),
			"role":  role.String(),
		}, c.clk.Now())
	})
}

// Deactivate is the delete operation for members. Rows stay so loan and
// reservation history keeps its references.
func (c *MemberCommands) Deactivate(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Members().Deactivate(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrMemberNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return recordAuditEntry(ctx, tx, actor, "DEACTIVATE_MEMBER", "member", &id, nil, c.clk.Now())
	})
}
