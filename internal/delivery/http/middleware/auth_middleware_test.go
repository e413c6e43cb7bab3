package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/config"
	"fintrack/internal/domain/entity"
	domainerrors "fintrack/internal/domain/errors"
	"fintrack/internal/domain/repository"
	"fintrack/internal/domain/service"
	"fintrack/internal/infra/auth"
	mockRepo "fintrack/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) service.TokenService {
	cfg := &config.Config{
		Auth: &config.AuthConfig{SessionTokenTTL: ttl},
	}
	cfg.SecretKey.Session = "test-session-secret"

	svc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

// runAuthenticated sends a request through Authenticate with the given
// cookie value and returns the error, plus the echo context for inspection.
func runAuthenticated(t *testing.T, tokenSvc service.TokenService, userRepo repository.UserRepository, cookieValue string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user/validate", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewAuthMiddleware(tokenSvc, userRepo)
	handler := mw.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return c, handler(c)
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	tokenSvc := newTestTokenService(t, time.Hour)
	userRepo := mockRepo.NewMockUserRepository(t)

	_, err := runAuthenticated(t, tokenSvc, userRepo, "")

	assert.ErrorIs(t, err, domainerrors.ErrTokenRequired)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokenSvc := newTestTokenService(t, -time.Minute)
	userRepo := mockRepo.NewMockUserRepository(t)

	token, err := tokenSvc.Generate(uuid.New())
	require.NoError(t, err)

	_, err = runAuthenticated(t, tokenSvc, userRepo, token)

	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	tokenSvc := newTestTokenService(t, time.Hour)
	userRepo := mockRepo.NewMockUserRepository(t)

	_, err := runAuthenticated(t, tokenSvc, userRepo, "not-a-jwt")

	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}

func TestAuthMiddleware_RevokedAfterLogout(t *testing.T) {
	tokenSvc := newTestTokenService(t, time.Hour)
	userRepo := mockRepo.NewMockUserRepository(t)

	userID := uuid.New()
	token, err := tokenSvc.Generate(userID)
	require.NoError(t, err)

	// Logout cleared the persisted token; the presented one is still
	// structurally valid.
	user := &entity.User{ID: userID, SessionToken: nil}
	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	_, err = runAuthenticated(t, tokenSvc, userRepo, token)

	assert.ErrorIs(t, err, domainerrors.ErrSessionRevoked)
}

func TestAuthMiddleware_StaleTokenAfterReLogin(t *testing.T) {
	tokenSvc := newTestTokenService(t, time.Hour)
	userRepo := mockRepo.NewMockUserRepository(t)

	userID := uuid.New()
	oldToken, err := tokenSvc.Generate(userID)
	require.NoError(t, err)

	// A later login replaced the persisted token, so the older one no
	// longer matches.
	newToken := "some-newer-token"
	user := &entity.User{ID: userID, SessionToken: &newToken}
	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	_, err = runAuthenticated(t, tokenSvc, userRepo, oldToken)

	assert.ErrorIs(t, err, domainerrors.ErrSessionRevoked)
}

func TestAuthMiddleware_UserDeleted(t *testing.T) {
	tokenSvc := newTestTokenService(t, time.Hour)
	userRepo := mockRepo.NewMockUserRepository(t)

	userID := uuid.New()
	token, err := tokenSvc.Generate(userID)
	require.NoError(t, err)

	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	_, err = runAuthenticated(t, tokenSvc, userRepo, token)

	assert.ErrorIs(t, err, domainerrors.ErrSessionRevoked)
}

func TestAuthMiddleware_Success(t *testing.T) {
	tokenSvc := newTestTokenService(t, time.Hour)
	userRepo := mockRepo.NewMockUserRepository(t)

	userID := uuid.New()
	token, err := tokenSvc.Generate(userID)
	require.NoError(t, err)

	user := &entity.User{ID: userID, Email: "test@example.com", SessionToken: &token}
	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	c, err := runAuthenticated(t, tokenSvc, userRepo, token)

	require.NoError(t, err)

	gotID, err := UserID(c)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)

	gotUser, ok := c.Get(ContextKeyUser).(*entity.User)
	require.True(t, ok)
	assert.Equal(t, "test@example.com", gotUser.Email)
}
