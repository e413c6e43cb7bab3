package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the custom claims carried by a session token.
type SessionClaims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session
// tokens. Both directions are purely computational: the service never
// consults the store, and verification runs before any store lookup.
type TokenService interface {
	// Generate mints a signed token binding the user ID, issue time and
	// expiry (issue time + TTL).
	Generate(userID uuid.UUID) (string, error)

	// Validate checks signature and expiry. It returns
	// domainerrors.ErrTokenExpired for a well-signed but expired token and
	// domainerrors.ErrTokenMalformed for anything else that fails.
	Validate(tokenString string) (*SessionClaims, error)

	// TTL returns the configured session token lifetime.
	TTL() time.Duration
}
