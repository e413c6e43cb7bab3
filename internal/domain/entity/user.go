// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the single identity record of the system. Besides the profile
// fields it carries the full credential state: the bcrypt password hash,
// the currently active session token and any pending password reset.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, assigned at creation.
	Name         string    // The user's display name.
	Email        string    // The user's email, unique across all users and used as the login key.
	PasswordHash string    // The bcrypt hash of the user's password. Never plaintext.

	// SessionToken holds the latest issued bearer token. nil means no active
	// session; a presented token that does not match this value is revoked
	// regardless of its own signature and expiry.
	SessionToken *string

	// ResetPasswordToken and ResetPasswordExpiry are set together by the
	// forgot-password flow and cleared together when the reset is consumed.
	ResetPasswordToken  *string
	ResetPasswordExpiry *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasActiveSession reports whether a session token is currently persisted.
func (u *User) HasActiveSession() bool {
	return u.SessionToken != nil && *u.SessionToken != ""
}
