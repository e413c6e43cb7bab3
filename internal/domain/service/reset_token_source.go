package service

// ResetTokenSource mints single-use password reset tokens from a
// cryptographically secure random source.
type ResetTokenSource interface {
	// NewToken returns a fresh unguessable token in its encoded form.
	NewToken() (string, error)
}
