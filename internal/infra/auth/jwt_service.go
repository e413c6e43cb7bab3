// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fintrack/config"
	domainerrors "fintrack/internal/domain/errors"
	"fintrack/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Session,
		ttl:    cfg.Auth.SessionTokenTTL,
	}, nil
}

// Generate creates a new signed session token for a given user.
func (s *jwtService) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate checks the signature and expiry of a token string and extracts
// its claims. Expiry maps to ErrTokenExpired; every other failure, including
// a subject that is not a UUID, maps to ErrTokenMalformed.
func (s *jwtService) Validate(tokenString string) (*service.SessionClaims, error) {
	registered := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, registered, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenMalformed
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenMalformed
	}

	userID, err := uuid.Parse(registered.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenMalformed
	}

	return &service.SessionClaims{
		UserID:           userID,
		RegisteredClaims: *registered,
	}, nil
}

// TTL returns the configured session token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
