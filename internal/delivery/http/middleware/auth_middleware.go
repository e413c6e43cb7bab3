// Package middleware contains the HTTP middleware chain: authentication,
// error mapping and request logging.
package middleware

import (
	"net/http"

	domainerrors "fintrack/internal/domain/errors"
	"fintrack/internal/domain/repository"
	"fintrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// Context keys populated by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyUser   = "user"
)

// AuthMiddleware gates requests on a valid, unrevoked session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the session cookie in two stages: the token itself
// (signature, expiry) purely computationally, then the store, where the
// persisted session token must equal the presented one. A token that no
// longer matches is revoked regardless of its own validity, so logout and
// re-login both invalidate older tokens immediately.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrTokenRequired
		}
		tokenString := cookie.Value

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			// Validate already returns the precise domain error
			// (expired vs malformed).
			return err
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrSessionRevoked
			}

			return errors.Wrap(err, "failed to load user for authentication")
		}

		if user.SessionToken == nil || *user.SessionToken != tokenString {
			return domainerrors.ErrSessionRevoked
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// UserID extracts the authenticated user's ID set by Authenticate.
func UserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated identity")
	}

	return id, nil
}
