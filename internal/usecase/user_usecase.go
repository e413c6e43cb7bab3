// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fintrack/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the data for changing a user's name and email.
type UpdateProfileInput struct {
	UserID uuid.UUID
	Name   string
	Email  string
}

// ForgotPasswordInput starts the password reset flow for an email address.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput redeems a reset token for a new password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the session token issued by a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account. The email's domain must resolve to at
	// least one mail exchanger and the password must satisfy the length
	// policy before anything is persisted.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a fresh session token. The new
	// token replaces whatever session the user had before, so at most one
	// session is valid at any time.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout revokes the user's current session server-side.
	Logout(ctx context.Context, userID uuid.UUID) error

	// UpdateProfile changes the user's name and email.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)

	// DeleteAccount removes the user and everything they own.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error

	// ForgotPassword mints a reset token for the address and mails a reset
	// link. The token is returned so the caller can echo it in the response.
	// Delivery is best-effort and does not affect the result.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) (string, error)

	// ResetPassword atomically redeems an unexpired reset token. A token can
	// be redeemed exactly once.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
