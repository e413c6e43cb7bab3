package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fintrack/config"
	"fintrack/internal/delivery/http/middleware"
	"fintrack/internal/delivery/http/validator"
	"fintrack/internal/domain/entity"
	domainerrors "fintrack/internal/domain/errors"
	mockSvc "fintrack/internal/mocks/service"
	mockUC "fintrack/internal/mocks/usecase"
	"fintrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the wire format for assertions.
type envelope struct {
	Status  string         `json:"status"`
	Data    map[string]any `json:"data"`
	Message string         `json:"message"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

// withIdentity simulates a passed auth gate by injecting the user into the
// request context.
func withIdentity(user *entity.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextKeyUserID, user.ID)
			c.Set(middleware.ContextKeyUser, user)

			return next(c)
		}
	}
}

func doJSON(e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)

	return rec, env
}

func createTestUserHandler(t *testing.T) (*UserHandler, *mockUC.MockUserUsecase, *mockSvc.MockTokenService) {
	uc := mockUC.NewMockUserUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewUserHandler(uc, tokenSvc, &config.Config{}, logger), uc, tokenSvc
}

func TestUserHandler_Register_Success(t *testing.T) {
	handler, uc, _ := createTestUserHandler(t)
	e := newTestEcho()
	e.POST("/api/user", handler.Register)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.RegisterOutput{
			User: &entity.User{ID: uuid.New(), Name: "Test User", Email: "test@example.com"},
		}, nil)

	rec, env := doJSON(e, http.MethodPost, "/api/user", `{"name":"Test User","email":"test@example.com","password":"Password123!"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "test@example.com", env.Data["email"])
	assert.Equal(t, "Test User", env.Data["name"])
}

func TestUserHandler_Register_MalformedPayload(t *testing.T) {
	handler, _, _ := createTestUserHandler(t)
	e := newTestEcho()
	e.POST("/api/user", handler.Register)

	rec, env := doJSON(e, http.MethodPost, "/api/user", `{"name":"No Email","password":"Password123!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "User data is not formatted correctly", env.Message)
}

func TestUserHandler_Register_DuplicateEmail(t *testing.T) {
	handler, uc, _ := createTestUserHandler(t)
	e := newTestEcho()
	e.POST("/api/user", handler.Register)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrEmailTaken)

	rec, env := doJSON(e, http.MethodPost, "/api/user", `{"name":"Test User","email":"taken@example.com","password":"Password123!"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "An account with this email already exists.", env.Message)
}

func TestUserHandler_Login_Success(t *testing.T) {
	handler, uc, tokenSvc := createTestUserHandler(t)
	e := newTestEcho()
	e.POST("/api/user/login", handler.Login)

	userID := uuid.New()
	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{
			Token: "session-token",
			User:  &entity.User{ID: userID, Email: "test@example.com"},
		}, nil)
	tokenSvc.EXPECT().TTL().Return(time.Hour)

	rec, env := doJSON(e, http.MethodPost, "/api/user/login", `{"email":"test@example.com","password":"Password123!"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "session-token", env.Data["serviceToken"])

	user, ok := env.Data["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, userID.String(), user["id"])
	assert.Equal(t, "test@example.com", user["email"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "session-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestUserHandler_Login_UnknownEmail(t *testing.T) {
	handler, uc, _ := createTestUserHandler(t)
	e := newTestEcho()
	e.POST("/api/user/login", handler.Login)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrUserNotFound)

	rec, env := doJSON(e, http.MethodPost, "/api/user/login", `{"email":"ghost@example.com","password":"whatever"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "User not found", env.Message)
}

func TestUserHandler_Login_WrongPassword(t *testing.T) {
	handler, uc, _ := createTestUserHandler(t)
	e := newTestEcho()
	e.POST("/api/user/login", handler.Login)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec, env := doJSON(e, http.MethodPost, "/api/user/login", `{"email":"test@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", env.Message)
}

func TestUserHandler_Logout_Success(t *testing.T) {
	handler, uc, _ := createTestUserHandler(t)
	e := newTestEcho()

	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	e.POST("/api/user/logout", handler.Logout, withIdentity(user))

	uc.EXPECT().Logout(mock.Anything, user.ID).Return(nil)

	rec, env := doJSON(e, http.MethodPost, "/api/user/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "Successfully logged out", env.Data["message"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}

func TestUserHandler_Validate_ReturnsIdentity(t *testing.T) {
	handler, _, _ := createTestUserHandler(t)
	e := newTestEcho()

	user := &entity.User{ID: uuid.New(), Name: "Test User", Email: "test@example.com"}
	e.GET("/api/user/validate", handler.Validate, withIdentity(user))

	rec, env := doJSON(e, http.MethodGet, "/api/user/validate", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, user.ID.String(), env.Data["id"])
	assert.Equal(t, "test@example.com", env.Data["email"])
	assert.Equal(t, "Test User", env.Data["name"])
}

func TestUserHandler_DeleteAccount_Success(t *testing.T) {
	handler, uc, _ := createTestUserHandler(t)
	e := newTestEcho()

	user := &entity.User{ID: uuid.New()}
	e.DELETE("/api/user", handler.DeleteAccount, withIdentity(user))

	uc.EXPECT().DeleteAccount(mock.Anything, user.ID).Return(nil)

	rec, env := doJSON(e, http.MethodDelete, "/api/user", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User deleted successfully", env.Data["message"])
}
