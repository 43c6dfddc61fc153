//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"homeclean-booking/internal/domain/user"
	"homeclean-booking/internal/pkg/clock"
	"homeclean-booking/internal/pkg/config"
	"homeclean-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock())
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token from a clock set one day in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-24 * time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Minute, past)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
