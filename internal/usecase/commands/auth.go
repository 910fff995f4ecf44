package commands

import (
	"context"

	"library-circulation/internal/domain/member"
	"library-circulation/internal/infra"
	"library-circulation/internal/pkg/errs"
	"library-circulation/internal/pkg/jwt"
	"library-circulation/internal/pkg/password"

	"github.com/google/uuid"
)

// Credential is the slice of a member row needed to verify a login.
type Credential struct {
	MemberID     uuid.UUID
	Email        string
	PasswordHash string
	Role         string
}

// CredentialStore looks up login credentials for active members only.
type CredentialStore interface {
	FindAuthByEmail(ctx context.Context, email string) (*Credential, error)
}

type AuthCommands struct {
	creds  CredentialStore
	tokens *jwt.Service
}

func NewAuthCommands(creds CredentialStore, tokens *jwt.Service) *AuthCommands {
	return &AuthCommands{creds: creds, tokens: tokens}
}

type LoginResult struct {
	Token    string
	MemberID uuid.UUID
	Role     string
}

// Login verifies the password and issues a signed token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (a *AuthCommands) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	cred, err := a.creds.FindAuthByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Compare(cred.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := member.NewRole(cred.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	token, err := a.tokens.GenerateToken(cred.MemberID, cred.Email, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}

	return &LoginResult{Token: token, MemberID: cred.MemberID, Role: cred.Role}, nil
}
