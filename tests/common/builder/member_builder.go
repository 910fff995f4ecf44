//go:build unit || e2e

package builder

import (
	"time"

	dommember "library-circulation/internal/domain/member"
	reqdto "library-circulation/internal/handler/dto/request"
	"library-circulation/internal/usecase/queries"
	"library-circulation/internal/usecase/shared"

	"github.com/google/uuid"
)

type MemberBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Password     string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

func NewMemberBuilder() *MemberBuilder {
	return &MemberBuilder{
		ID:       uuid.New(),
		Name:     "Alice Reader",
		Email:    "alice@example.com",
		Password: "correct-horse-battery",
		// bcrypt of "correct-horse-battery", precomputed to keep tests fast
		PasswordHash: "$2b$12$1VyvM0zEAJ2G.FGNIBsCU.sx7Yaq.6Mhu6sTovxnNvMU0qyv663Yi",
		Role:         dommember.RoleMember.String(),
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
}

func (m *MemberBuilder) With(mutate func(*MemberBuilder)) *MemberBuilder {
	mutate(m)
	return m
}

func (m *MemberBuilder) BuildDomain() (*dommember.Member, error) {
	email, err := dommember.NewEmail(m.Email)
	if err != nil {
		return nil, err
	}
	role, err := dommember.NewRole(m.Role)
	if err != nil {
		return nil, err
	}
	return dommember.NewMember(m.Name, email, m.PasswordHash, role)
}

func (m *MemberBuilder) BuildSnapshot() *shared.MemberSnapshot {
	return &shared.MemberSnapshot{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		Role:     m.Role,
		IsActive: m.IsActive,
	}
}

func (m *MemberBuilder) BuildView() *queries.MemberView {
	return &queries.MemberView{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func (m *MemberBuilder) BuildActor() shared.Actor {
	return shared.Actor{ID: m.ID, Email: m.Email, Role: m.Role}
}

func (m *MemberBuilder) BuildRegisterRequestDTO() reqdto.RegisterMemberRequest {
	return reqdto.RegisterMemberRequest{
		Name:     m.Name,
		Email:    m.Email,
		Password: m.Password,
		Role:     m.Role,
	}
}

func (m *MemberBuilder) WithName(name string) *MemberBuilder {
	m.Name = name
	return m
}

func (m *MemberBuilder) WithEmail(email string) *MemberBuilder {
	m.Email = email
	return m
}

func (m *MemberBuilder) WithRole(role string) *MemberBuilder {
	m.Role = role
	return m
}

func (m *MemberBuilder) AsInactive() *MemberBuilder {
	m.IsActive = false
	return m
}

func (m *MemberBuilder) AsLibrarian() *MemberBuilder {
	m.Role = dommember.RoleLibrarian.String()
	return m
}

func (m *MemberBuilder) AsAdmin() *MemberBuilder {
	m.Role = dommember.RoleAdmin.String()
	return m
}
