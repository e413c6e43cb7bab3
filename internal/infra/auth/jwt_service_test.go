package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/config"
	domainerrors "fintrack/internal/domain/errors"
)

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			SessionTokenTTL:   ttl,
			MinPasswordLength: 6,
		},
	}
	cfg.SecretKey.Session = "test-session-secret"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	tokenString, err := svc.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(-time.Minute))
	require.NoError(t, err)

	tokenString, err := svc.Generate(uuid.New())
	require.NoError(t, err)

	_, err = svc.Validate(tokenString)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	_, err = svc.Validate("not-a-token")
	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	other := newTestConfig(time.Hour)
	other.SecretKey.Session = "different-secret"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	tokenString, err := otherSvc.Generate(uuid.New())
	require.NoError(t, err)

	_, err = svc.Validate(tokenString)
	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}

func TestJWTService_NonUUIDSubject(t *testing.T) {
	cfg := newTestConfig(time.Hour)
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(cfg.SecretKey.Session))
	require.NoError(t, err)

	_, err = svc.Validate(tokenString)
	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := newTestConfig(time.Hour)
	cfg.SecretKey.Session = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
