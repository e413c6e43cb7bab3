package postgres

import (
	"context"

	"fintrack/internal/domain/entity"
	domainerrors "fintrack/internal/domain/errors"
	"fintrack/internal/domain/repository"
	"fintrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// savingRepository implements the domain.SavingRepository interface using GORM.
type savingRepository struct {
	db *gorm.DB
}

// NewSavingRepository is the constructor for savingRepository.
func NewSavingRepository(db *gorm.DB) repository.SavingRepository {
	return &savingRepository{db: db}
}

// Create persists a new savings goal for its owning user.
func (repo *savingRepository) Create(ctx context.Context, saving *entity.Saving) error {
	savingM := fromSavingDomain(saving)

	if err := repo.db.WithContext(ctx).Create(savingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create saving")
	}

	saving.ID = savingM.ID
	saving.CreatedAt = savingM.CreatedAt
	saving.UpdatedAt = savingM.UpdatedAt

	return nil
}

// FindByID retrieves one savings goal scoped to its owner.
func (repo *savingRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Saving, error) {
	var savingM model.SavingModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&savingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSavingNotFound
		}

		return nil, errors.Wrap(err, "failed to find saving by id")
	}

	return toSavingDomain(&savingM), nil
}

// ListByUser retrieves every savings goal owned by the user.
func (repo *savingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Saving, error) {
	var models []model.SavingModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list savings")
	}

	savings := make([]*entity.Saving, 0, len(models))
	for i := range models {
		savings = append(savings, toSavingDomain(&models[i]))
	}

	return savings, nil
}

// Update modifies an existing savings goal scoped to its owner.
func (repo *savingRepository) Update(ctx context.Context, saving *entity.Saving) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SavingModel{}).
		Where("id = ? AND user_id = ?", saving.ID, saving.UserID).
		Updates(map[string]any{
			"name":           saving.Name,
			"amount":         saving.Amount,
			"deposit_amount": saving.DepositAmount,
			"time":           saving.Time,
			"date":           saving.Date,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update saving")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSavingNotFound
	}

	return nil
}

// Delete removes one savings goal scoped to its owner.
func (repo *savingRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.SavingModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete saving")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSavingNotFound
	}

	return nil
}

// toSavingDomain converts a GORM SavingModel to a domain Saving entity.
func toSavingDomain(data *model.SavingModel) *entity.Saving {
	return &entity.Saving{
		ID:            data.ID,
		UserID:        data.UserID,
		Name:          data.Name,
		Amount:        data.Amount,
		DepositAmount: data.DepositAmount,
		Time:          data.Time,
		Date:          data.Date,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromSavingDomain converts a domain Saving entity to a GORM SavingModel.
func fromSavingDomain(data *entity.Saving) *model.SavingModel {
	return &model.SavingModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Name:          data.Name,
		Amount:        data.Amount,
		DepositAmount: data.DepositAmount,
		Time:          data.Time,
		Date:          data.Date,
	}
}
