//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"library-circulation/internal/pkg/jwt"
	"library-circulation/internal/usecase/commands"
	commandsmock "library-circulation/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// bcrypt of "correct-horse-battery"
const testHash = "$2b$12$1VyvM0zEAJ2G.FGNIBsCU.sx7Yaq.6Mhu6sTovxnNvMU0qyv663Yi"

func newAuthFixture(t *testing.T) (*commandsmock.MockCredentialStore, *commands.AuthCommands, *jwt.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	creds := commandsmock.NewMockCredentialStore(ctrl)
	tokens := jwt.NewService("test-secret", time.Hour)
	return creds, commands.NewAuthCommands(creds, tokens), tokens
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues a valid token", func(t *testing.T) {
		creds, svc, tokens := newAuthFixture(t)
		memberID := uuid.New()

		creds.EXPECT().FindAuthByEmail(ctx, "alice@example.com").Return(&commands.Credential{
			MemberID:     memberID,
			Email:        "alice@example.com",
			PasswordHash: testHash,
			Role:         "LIBRARIAN",
		}, nil)

		result, err := svc.Login(ctx, "alice@example.com", "correct-horse-battery")
		require.NoError(t, err)
		assert.Equal(t, memberID, result.MemberID)
		assert.Equal(t, "LIBRARIAN", result.Role)

		claims, err := tokens.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, memberID, claims.MemberID)
		assert.Equal(t, "alice@example.com", claims.Email)
		assert.Equal(t, "LIBRARIAN", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		creds, svc, _ := newAuthFixture(t)

		creds.EXPECT().FindAuthByEmail(ctx, "alice@example.com").Return(&commands.Credential{
			MemberID:     uuid.New(),
			Email:        "alice@example.com",
			PasswordHash: testHash,
			Role:         "MEMBER",
		}, nil)

		_, err := svc.Login(ctx, "alice@example.com", "not-the-password")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email looks like a wrong password", func(t *testing.T) {
		creds, svc, _ := newAuthFixture(t)

		creds.EXPECT().FindAuthByEmail(ctx, "nobody@example.com").Return(nil, notFoundErr("member not found"))

		_, err := svc.Login(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
