//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/operator"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/clock"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/config"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, operatorID uuid.UUID, role operator.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, clock.NewRealClock())
	token, err := service.GenerateToken(operatorID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, operatorID uuid.UUID, role operator.Role) string {
	t.Helper()
	// Issue in the past so the token is already expired when validated.
	issuedAt := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Hour, issuedAt)
	token, err := service.GenerateToken(operatorID, role)
	require.NoError(t, err)
	return token
}
