// Package errors defines the application error taxonomy. Every error that
// can reach the HTTP boundary is an AppError carrying an HTTP status, a
// business code and the user-visible message; anything else is masked as a
// generic server error by the error middleware.
package errors

import (
	"fmt"
	"net/http"

	"fintrack/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User and registration errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"An account with this email already exists.",
		"",
	)

	ErrEmailDomainInvalid = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_DOMAIN_INVALID",
		"Invalid email domain.",
		"",
	)

	ErrEmailNotRegistered = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_NOT_REGISTERED",
		"User with this email does not exist.",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrTokenRequired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_REQUIRED",
		"Token required for authentication",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expired",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid token",
		"",
	)

	// ErrSessionRevoked covers a structurally valid token whose session has
	// been ended server-side (logout, or superseded by a newer login).
	ErrSessionRevoked = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_REVOKED",
		"Session revoked",
		"",
	)

	// Password reset errors. ErrResetTokenInvalid deliberately covers
	// never-existed, expired and already-consumed tokens with one message.
	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please ensure all fields are filled out correctly",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// NewValidationError keeps the VALIDATION_FAILED code but lets handlers use
// the resource-specific phrasing ("Budget data is not formatted correctly").
func NewValidationError(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", message, "")
}

// NewNotFoundError builds a 404 with a resource-specific message such as
// "Budget not found".
func NewNotFoundError(resource string) *BaseError {
	return NewBaseError(http.StatusNotFound, "NOT_FOUND", resource+" not found", "")
}

// NewPasswordPolicyError reports a password shorter than the configured
// minimum length.
func NewPasswordPolicyError(minLength int) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		fmt.Sprintf("Password must be at least %d characters long.", minLength),
		"",
	)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error for errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
