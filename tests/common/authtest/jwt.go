//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"library-circulation/internal/domain/member"
	"library-circulation/internal/pkg/config"
	"library-circulation/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, memberID uuid.UUID, email string, role member.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(memberID, email, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, memberID uuid.UUID, email string, role member.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(memberID, email, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
