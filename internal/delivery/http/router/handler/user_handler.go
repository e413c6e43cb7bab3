// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"fintrack/config"
	domainerrors "fintrack/internal/domain/errors"
	"fintrack/internal/delivery/http/middleware"
	"fintrack/internal/delivery/http/response"
	"fintrack/internal/domain/entity"
	"fintrack/internal/domain/service"
	"fintrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// UserHandler holds dependencies for account and session handlers.
type UserHandler struct {
	uc       usecase.UserUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

// Register handles account creation.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError("User data is not formatted correctly")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewValidationError("User data is not formatted correctly")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"email": output.User.Email,
		"name":  output.User.Name,
	})
}

// Login verifies credentials, issues a session token and sets it as an
// httpOnly cookie alongside the JSON payload.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    output.Token,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.HTTP.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]any{
		"serviceToken": output.Token,
		"user": map[string]any{
			"id":    output.User.ID,
			"email": output.User.Email,
		},
	})
}

// Logout revokes the current session and expires the cookie.
func (h *UserHandler) Logout(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.HTTP.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Successfully logged out",
	})
}

// Validate returns the identity of the authenticated user. The auth
// middleware has already loaded the user, so no extra store access happens.
func (h *UserHandler) Validate(c echo.Context) error {
	user, ok := c.Get(middleware.ContextKeyUser).(*entity.User)
	if !ok {
		return domainerrors.ErrTokenRequired
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	})
}

// UpdateProfile changes the authenticated user's name and email.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError("User data is not formatted correctly")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewValidationError("User data is not formatted correctly")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	})
}

// DeleteAccount removes the authenticated user and everything they own.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "User deleted successfully",
	})
}
