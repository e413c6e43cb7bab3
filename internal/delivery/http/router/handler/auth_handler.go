package handler

import (
	"log/slog"
	"net/http"

	domainerrors "fintrack/internal/domain/errors"
	"fintrack/internal/delivery/http/response"
	"fintrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// AuthHandler holds dependencies for the password reset flow.
type AuthHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// ForgotPassword mints a reset token for the address and mails a reset link.
// The token is echoed in the response.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError("Email is required.")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewValidationError("Email is required.")
	}

	token, err := h.uc.ForgotPassword(c.Request().Context(), &usecase.ForgotPasswordInput{
		Email: req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message":    "Password reset email sent",
		"resetToken": token,
	})
}

// ResetPassword redeems a reset token for a new password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if req.Token == "" {
		return domainerrors.NewValidationError("Reset token is required.")
	}
	if req.NewPassword == "" {
		return domainerrors.NewValidationError("New password is required.")
	}

	err := h.uc.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Password reset successful",
	})
}
