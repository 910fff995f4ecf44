package member

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
	ErrEmptyName    = errors.New("member name must not be empty")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	if !emailPattern.MatchString(trimmed) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}

type Member struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	role         Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewMember(name string, email Email, passwordHash string, role Role) (*Member, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &Member{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}, nil
}

func ReconstructMember(
	id uuid.UUID,
	name string,
	email Email,
	passwordHash string,
	role Role,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Member {
	return &Member{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (m *Member) ID() uuid.UUID        { return m.id }
func (m *Member) Name() string         { return m.name }
func (m *Member) Email() Email         { return m.email }
func (m *Member) PasswordHash() string { return m.passwordHash }
func (m *Member) Role() Role           { return m.role }
func (m *Member) IsActive() bool       { return m.isActive }
func (m *Member) CreatedAt() time.Time { return m.createdAt }
func (m *Member) UpdatedAt() time.Time { return m.updatedAt }
