package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	domainerrors "fintrack/internal/domain/errors"
	mockUC "fintrack/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockUserUsecase) {
	uc := mockUC.NewMockUserUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthHandler(uc, logger), uc
}

func TestAuthHandler_ForgotPassword_Success(t *testing.T) {
	handler, uc := createTestAuthHandler(t)
	e := newTestEcho()
	e.POST("/api/auth/forgot-password", handler.ForgotPassword)

	uc.EXPECT().
		ForgotPassword(mock.Anything, mock.AnythingOfType("*usecase.ForgotPasswordInput")).
		Return("reset-token", nil)

	rec, env := doJSON(e, http.MethodPost, "/api/auth/forgot-password", `{"email":"test@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "Password reset email sent", env.Data["message"])
	assert.Equal(t, "reset-token", env.Data["resetToken"])
}

func TestAuthHandler_ForgotPassword_MissingEmail(t *testing.T) {
	handler, _ := createTestAuthHandler(t)
	e := newTestEcho()
	e.POST("/api/auth/forgot-password", handler.ForgotPassword)

	rec, env := doJSON(e, http.MethodPost, "/api/auth/forgot-password", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email is required.", env.Message)
}

func TestAuthHandler_ForgotPassword_UnknownEmail(t *testing.T) {
	handler, uc := createTestAuthHandler(t)
	e := newTestEcho()
	e.POST("/api/auth/forgot-password", handler.ForgotPassword)

	uc.EXPECT().
		ForgotPassword(mock.Anything, mock.AnythingOfType("*usecase.ForgotPasswordInput")).
		Return("", domainerrors.ErrEmailNotRegistered)

	rec, env := doJSON(e, http.MethodPost, "/api/auth/forgot-password", `{"email":"ghost@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User with this email does not exist.", env.Message)
}

func TestAuthHandler_ResetPassword_Success(t *testing.T) {
	handler, uc := createTestAuthHandler(t)
	e := newTestEcho()
	e.POST("/api/auth/reset-password", handler.ResetPassword)

	uc.EXPECT().
		ResetPassword(mock.Anything, mock.AnythingOfType("*usecase.ResetPasswordInput")).
		Return(nil)

	rec, env := doJSON(e, http.MethodPost, "/api/auth/reset-password", `{"token":"reset-token","newPassword":"NewPassword1!"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Password reset successful", env.Data["message"])
}

func TestAuthHandler_ResetPassword_MissingFields(t *testing.T) {
	handler, _ := createTestAuthHandler(t)
	e := newTestEcho()
	e.POST("/api/auth/reset-password", handler.ResetPassword)

	rec, env := doJSON(e, http.MethodPost, "/api/auth/reset-password", `{"newPassword":"NewPassword1!"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Reset token is required.", env.Message)

	rec, env = doJSON(e, http.MethodPost, "/api/auth/reset-password", `{"token":"reset-token"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "New password is required.", env.Message)
}

func TestAuthHandler_ResetPassword_InvalidToken(t *testing.T) {
	handler, uc := createTestAuthHandler(t)
	e := newTestEcho()
	e.POST("/api/auth/reset-password", handler.ResetPassword)

	uc.EXPECT().
		ResetPassword(mock.Anything, mock.AnythingOfType("*usecase.ResetPasswordInput")).
		Return(domainerrors.ErrResetTokenInvalid)

	rec, env := doJSON(e, http.MethodPost, "/api/auth/reset-password", `{"token":"bogus","newPassword":"NewPassword1!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid or expired token", env.Message)
}
