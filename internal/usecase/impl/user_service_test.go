package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fintrack/config"
	"fintrack/internal/domain/entity"
	domainerrors "fintrack/internal/domain/errors"
	"fintrack/internal/domain/repository"
	mockRepo "fintrack/internal/mocks/repository"
	mockSvc "fintrack/internal/mocks/service"
	"fintrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	tokenSource  *mockSvc.MockResetTokenSource
	verifier     *mockSvc.MockEmailDomainVerifier
	mailer       *mockSvc.MockMailer
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	tokenSource := mockSvc.NewMockResetTokenSource(t)
	verifier := mockSvc.NewMockEmailDomainVerifier(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		ResetTokenTTL: time.Hour,
		ResetBaseURL:  "http://localhost:3000/reset-password",
	}

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		TokenSource:  tokenSource,
		Verifier:     verifier,
		Mailer:       mailer,
		Config:       cfg,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		tokenSource:  tokenSource,
		verifier:     verifier,
		mailer:       mailer,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.verifier.EXPECT().VerifyDomain(ctx, input.Email).Return(nil)
	fx.hasher.EXPECT().ValidatePolicy(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_BadEmailDomain(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@no-such-domain.invalid",
		Password: "Password123!",
	}

	fx.verifier.EXPECT().VerifyDomain(ctx, input.Email).Return(domainerrors.ErrEmailDomainInvalid)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailDomainInvalid)
}

func TestUserService_Register_ShortPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "short",
	}

	policyErr := domainerrors.NewPasswordPolicyError(6)
	fx.verifier.EXPECT().VerifyDomain(ctx, input.Email).Return(nil)
	fx.hasher.EXPECT().ValidatePolicy(input.Password).Return(policyErr)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, policyErr)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.verifier.EXPECT().VerifyDomain(ctx, input.Email).Return(nil)
	fx.hasher.EXPECT().ValidatePolicy(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrEmailTaken)

			innerErr := fn(mockFactory)
			assert.ErrorIs(t, innerErr, domainerrors.ErrEmailTaken)
		}).
		Return(domainerrors.ErrEmailTaken)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}
	input := &usecase.LoginInput{Email: user.Email, Password: "Password123!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Generate(user.ID).Return("session-token", nil)
	fx.userRepo.EXPECT().SetSessionToken(ctx, user.ID, "session-token").Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	require.NotNil(t, output.User.SessionToken)
	assert.Equal(t, "session-token", *output.User.SessionToken)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// An unknown address is reported as not found, not as bad credentials.
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}
	input := &usecase.LoginInput{Email: user.Email, Password: "wrong"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().ClearSessionToken(ctx, userID).Return(nil)

	err := fx.service.Logout(ctx, userID)

	require.NoError(t, err)
}

func TestUserService_Logout_UserAlreadyGone(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().ClearSessionToken(ctx, userID).Return(repository.ErrUserNotFound)

	err := fx.service.Logout(ctx, userID)

	// Nothing left to revoke counts as success.
	require.NoError(t, err)
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.UpdateProfileInput{
		UserID: uuid.New(),
		Name:   "New Name",
		Email:  "new@example.com",
	}
	updated := &entity.User{ID: input.UserID, Name: input.Name, Email: input.Email}

	fx.verifier.EXPECT().VerifyDomain(ctx, input.Email).Return(nil)
	fx.userRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, input.UserID).Return(updated, nil)

	user, err := fx.service.UpdateProfile(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestUserService_UpdateProfile_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.UpdateProfileInput{
		UserID: uuid.New(),
		Name:   "New Name",
		Email:  "taken@example.com",
	}

	fx.verifier.EXPECT().VerifyDomain(ctx, input.Email).Return(nil)
	fx.userRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrEmailTaken)

	user, err := fx.service.UpdateProfile(ctx, input)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_ForgotPassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	input := &usecase.ForgotPasswordInput{Email: user.Email}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.tokenSource.EXPECT().NewToken().Return("reset-token", nil)
	fx.userRepo.EXPECT().
		SetResetToken(ctx, user.ID, "reset-token", mock.AnythingOfType("time.Time")).
		Return(nil)

	// The mail goes out on a background goroutine after the call returns.
	sent := make(chan struct{})
	fx.mailer.EXPECT().
		Send(mock.Anything, user.Email, "Password Reset Request", mock.AnythingOfType("string")).
		Run(func(ctx context.Context, to, subject, htmlBody string) {
			assert.Contains(t, htmlBody, "reset-token")
			close(sent)
		}).
		Return(nil)

	token, err := fx.service.ForgotPassword(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "reset-token", token)

	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("reset mail was never sent")
	}
}

func TestUserService_ForgotPassword_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.ForgotPasswordInput{Email: "ghost@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	token, err := fx.service.ForgotPassword(ctx, input)

	require.Error(t, err)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotRegistered)
}

func TestUserService_ForgotPassword_MailFailureDoesNotFail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	input := &usecase.ForgotPasswordInput{Email: user.Email}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.tokenSource.EXPECT().NewToken().Return("reset-token", nil)
	fx.userRepo.EXPECT().
		SetResetToken(ctx, user.ID, "reset-token", mock.AnythingOfType("time.Time")).
		Return(nil)

	sent := make(chan struct{})
	fx.mailer.EXPECT().
		Send(mock.Anything, user.Email, "Password Reset Request", mock.AnythingOfType("string")).
		Run(func(ctx context.Context, to, subject, htmlBody string) {
			close(sent)
		}).
		Return(assert.AnError)

	token, err := fx.service.ForgotPassword(ctx, input)

	// The token is stored and returned regardless of mail delivery.
	require.NoError(t, err)
	assert.Equal(t, "reset-token", token)

	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("reset mail was never attempted")
	}
}

func TestUserService_ResetPassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.ResetPasswordInput{Token: "reset-token", NewPassword: "NewPassword1!"}

	fx.hasher.EXPECT().ValidatePolicy(input.NewPassword).Return(nil)
	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)
	fx.userRepo.EXPECT().
		ConsumeResetToken(ctx, input.Token, "new_hash", mock.AnythingOfType("time.Time")).
		Return(nil)

	err := fx.service.ResetPassword(ctx, input)

	require.NoError(t, err)
}

func TestUserService_ResetPassword_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.ResetPasswordInput{Token: "bogus", NewPassword: "NewPassword1!"}

	fx.hasher.EXPECT().ValidatePolicy(input.NewPassword).Return(nil)
	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)
	fx.userRepo.EXPECT().
		ConsumeResetToken(ctx, input.Token, "new_hash", mock.AnythingOfType("time.Time")).
		Return(repository.ErrResetTokenNotFound)

	err := fx.service.ResetPassword(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestUserService_ResetPassword_ShortPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.ResetPasswordInput{Token: "reset-token", NewPassword: "short"}

	policyErr := domainerrors.NewPasswordPolicyError(6)
	fx.hasher.EXPECT().ValidatePolicy(input.NewPassword).Return(policyErr)

	err := fx.service.ResetPassword(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, policyErr)
}
