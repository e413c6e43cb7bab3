// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fintrack/config"
	deliverycontext "fintrack/internal/delivery/context"
	"fintrack/internal/domain/entity"
	domainerrors "fintrack/internal/domain/errors"
	"fintrack/internal/domain/repository"
	"fintrack/internal/domain/service"
	"fintrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMailTimeout = 10 * time.Second

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	tokenSource  service.ResetTokenSource
	verifier     service.EmailDomainVerifier
	mailer       service.Mailer
	resetTTL     time.Duration
	resetBaseURL string
	mailTimeout  time.Duration
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	TokenSource  service.ResetTokenSource
	Verifier     service.EmailDomainVerifier
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	mailTimeout := defaultMailTimeout
	if params.Config.SMTP != nil && params.Config.SMTP.SendTimeout > 0 {
		mailTimeout = params.Config.SMTP.SendTimeout
	}

	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		tokenSource:  params.TokenSource,
		verifier:     params.Verifier,
		mailer:       params.Mailer,
		resetTTL:     params.Config.Auth.ResetTokenTTL,
		resetBaseURL: params.Config.Auth.ResetBaseURL,
		mailTimeout:  mailTimeout,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// Domain check first. A failing or empty MX lookup rejects the address
	// before any password work or store access happens.
	if err := srv.verifier.VerifyDomain(ctx, input.Email); err != nil {
		srv.log(ctx).Warn("Email domain rejected during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrEmailDomainInvalid, "email domain verification failed")
	}

	if err := srv.hasher.ValidatePolicy(input.Password); err != nil {
		srv.log(ctx).Warn("Password policy rejected during registration", slog.String("email", input.Email))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			// The unique index is the arbiter for duplicate emails, so two
			// concurrent registrations of the same address race safely.
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrEmailTaken
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	// Persisting the token makes it the user's only live session: any token
	// issued by an earlier login stops matching and is rejected from now on.
	if err := srv.userRepo.SetSessionToken(ctx, user.ID, token); err != nil {
		srv.log(ctx).Error("Failed to store session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store session token")
	}

	user.SessionToken = &token
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// Logout revokes the user's session by clearing the persisted token.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Attempting to log out", slog.Any("userID", userID))

	if err := srv.userRepo.ClearSessionToken(ctx, userID); err != nil {
		// The account may have been deleted between authentication and now;
		// either way there is no session left to revoke.
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		srv.log(ctx).Error("Failed to clear session token", slog.Any("error", err))

		return errors.Wrap(err, "failed to clear session token")
	}

	return nil
}

// UpdateProfile changes the user's name and email.
func (srv *userService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user profile", slog.Any("userID", input.UserID))

	// The new email must be deliverable, same rule as registration.
	if err := srv.verifier.VerifyDomain(ctx, input.Email); err != nil {
		return nil, domainerrors.ErrEmailDomainInvalid
	}

	user := &entity.User{
		ID:    input.UserID,
		Name:  input.Name,
		Email: input.Email,
	}
	if err := srv.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrEmailTaken
		}

		return nil, errors.Wrap(err, "failed to update user profile")
	}

	updated, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload updated user")
	}

	return updated, nil
}

// DeleteAccount removes the user record.
func (srv *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting user account", slog.Any("userID", userID))

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		srv.log(ctx).Error("Failed to delete user", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

// ForgotPassword mints and stores a reset token, then mails the reset link.
func (srv *userService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) (string, error) {
	srv.log(ctx).Info("Starting password reset", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", errors.Wrap(domainerrors.ErrEmailNotRegistered, "forgot password for unknown email")
		}

		return "", errors.Wrap(err, "failed to load user for password reset")
	}

	token, err := srv.tokenSource.NewToken()
	if err != nil {
		return "", errors.Wrap(err, "failed to mint reset token")
	}

	// Issuing a new token overwrites any pending one, so only the latest
	// emailed link works.
	expiresAt := time.Now().Add(srv.resetTTL)
	if err := srv.userRepo.SetResetToken(ctx, user.ID, token, expiresAt); err != nil {
		return "", errors.Wrap(err, "failed to store reset token")
	}

	srv.sendResetMail(ctx, user.Email, token)

	return token, nil
}

// sendResetMail delivers the reset link in the background. Failures are
// logged and swallowed: the token is already stored, and the caller's
// response must not reveal whether delivery worked.
func (srv *userService) sendResetMail(ctx context.Context, email, token string) {
	logger := srv.log(ctx)

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), srv.mailTimeout)
		defer cancel()

		link := fmt.Sprintf("%s?token=%s", srv.resetBaseURL, token)
		body := fmt.Sprintf(
			"<p>You requested a password reset.</p><p><a href=%q>Click here to reset your password</a></p><p>This link expires in %s.</p>",
			link, srv.resetTTL,
		)

		if err := srv.mailer.Send(sendCtx, email, "Password Reset Request", body); err != nil {
			logger.Error("Failed to send password reset mail", slog.String("email", email), slog.Any("error", err))

			return
		}
		logger.Debug("Password reset mail sent", slog.String("email", email))
	}()
}

// ResetPassword redeems a reset token for a new password.
func (srv *userService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Redeeming password reset token")

	if err := srv.hasher.ValidatePolicy(input.NewPassword); err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	// One conditional update both checks and consumes the token, so expired,
	// already-used and never-issued tokens all fail the same way.
	if err := srv.userRepo.ConsumeResetToken(ctx, input.Token, hashedPassword, time.Now()); err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			return errors.Wrap(domainerrors.ErrResetTokenInvalid, "reset token rejected")
		}

		return errors.Wrap(err, "failed to consume reset token")
	}

	srv.log(ctx).Debug("Password reset completed")

	return nil
}
