// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"fintrack/internal/domain/entity"
	domainerrors "fintrack/internal/domain/errors"
	"fintrack/internal/domain/repository"
	"fintrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// UpdateProfile modifies the user's name and email.
func (repo *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":  user.Name,
			"email": user.Email,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes the user record entirely.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetSessionToken stores the given token as the user's only active session.
func (repo *userRepository) SetSessionToken(ctx context.Context, id uuid.UUID, token string) error {
	return repo.updateCredentialColumns(ctx, id, map[string]any{
		"session_token": token,
	}, "failed to store session token")
}

// ClearSessionToken nulls the session token, revoking any outstanding bearer token.
func (repo *userRepository) ClearSessionToken(ctx context.Context, id uuid.UUID) error {
	return repo.updateCredentialColumns(ctx, id, map[string]any{
		"session_token": nil,
	}, "failed to clear session token")
}

// SetResetToken stores a pending password reset, replacing any prior one.
func (repo *userRepository) SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	return repo.updateCredentialColumns(ctx, id, map[string]any{
		"reset_password_token":      token,
		"reset_password_expiration": expiresAt,
	}, "failed to store reset token")
}

// ConsumeResetToken redeems an unexpired reset token in a single conditional
// update. The WHERE clause carries both the token match and the expiry
// check, so two concurrent redemptions of the same token cannot both
// succeed: the second one matches zero rows.
func (repo *userRepository) ConsumeResetToken(ctx context.Context, token string, newPasswordHash string, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("reset_password_token = ? AND reset_password_expiration > ?", token, now).
		Updates(map[string]any{
			"password_hash":             newPasswordHash,
			"reset_password_token":      nil,
			"reset_password_expiration": nil,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume reset token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetTokenNotFound
	}

	return nil
}

func (repo *userRepository) updateCredentialColumns(ctx context.Context, id uuid.UUID, columns map[string]any, failMsg string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, failMsg)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                  data.ID,
		Email:               data.Email,
		Name:                data.Name,
		PasswordHash:        data.PasswordHash,
		SessionToken:        data.SessionToken,
		ResetPasswordToken:  data.ResetPasswordToken,
		ResetPasswordExpiry: data.ResetPasswordExpiration,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                      data.ID,
		Email:                   data.Email,
		Name:                    data.Name,
		PasswordHash:            data.PasswordHash,
		SessionToken:            data.SessionToken,
		ResetPasswordToken:      data.ResetPasswordToken,
		ResetPasswordExpiration: data.ResetPasswordExpiry,
	}
}
