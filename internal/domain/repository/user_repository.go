// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"fintrack/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence. The application layer handles
// these without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when an insert violates the unique email index.
	ErrEmailTaken = errors.New("email already registered")
	// ErrResetTokenNotFound is returned when no row matches an unexpired reset
	// token. Expired, consumed and never-issued tokens are indistinguishable.
	ErrResetTokenNotFound = errors.New("reset token not found or expired")
)

// UserRepository defines the standard operations for user persistence.
// All credential-state mutations are single atomic updates keyed by primary
// key (or by reset token for the consume path), so concurrent requests
// racing on the same user serialize in the database.
type UserRepository interface {
	// Create persists a new user. A duplicate email surfaces as ErrEmailTaken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateProfile modifies the user's name and email.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// Delete removes the user record entirely.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetSessionToken stores the given token as the user's sole active
	// session, overwriting any previous one.
	SetSessionToken(ctx context.Context, id uuid.UUID, token string) error

	// ClearSessionToken nulls the session token, revoking every bearer token
	// issued for the previous session.
	ClearSessionToken(ctx context.Context, id uuid.UUID) error

	// SetResetToken stores a pending password reset, replacing any prior one.
	SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error

	// ConsumeResetToken atomically finds the user whose unexpired reset token
	// matches, replaces the password hash and clears the reset columns in one
	// conditional update. Zero matched rows means ErrResetTokenNotFound; a
	// second redemption of the same token therefore always fails.
	ConsumeResetToken(ctx context.Context, token string, newPasswordHash string, now time.Time) error
}
