//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"queue-engine/internal/domain/staff"
	"queue-engine/internal/pkg/config"
	"queue-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs staff tokens the way the external auth system does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, businessID uuid.UUID, role staff.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return h.sign(t, duration, businessID, role)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, businessID uuid.UUID, role staff.Role) string {
	t.Helper()
	token := h.sign(t, time.Millisecond, businessID, role)
	time.Sleep(10 * time.Millisecond)
	return token
}

func (h *JWTHelper) sign(t *testing.T, d time.Duration, businessID uuid.UUID, role staff.Role) string {
	t.Helper()
	member, err := staff.NewMember(uuid.New(), businessID, role)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, d).GenerateToken(member)
	require.NoError(t, err)
	return token
}
