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

// incomeRepository implements the domain.IncomeRepository interface using GORM.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository is the constructor for incomeRepository.
func NewIncomeRepository(db *gorm.DB) repository.IncomeRepository {
	return &incomeRepository{db: db}
}

// Create persists a new income record for its owning user.
func (repo *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	incomeM := fromIncomeDomain(income)

	if err := repo.db.WithContext(ctx).Create(incomeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create income")
	}

	income.ID = incomeM.ID
	income.CreatedAt = incomeM.CreatedAt
	income.UpdatedAt = incomeM.UpdatedAt

	return nil
}

// FindByID retrieves one income record scoped to its owner.
func (repo *incomeRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Income, error) {
	var incomeM model.IncomeModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&incomeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIncomeNotFound
		}

		return nil, errors.Wrap(err, "failed to find income by id")
	}

	return toIncomeDomain(&incomeM), nil
}

// ListByUser retrieves every income record owned by the user.
func (repo *incomeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error) {
	var models []model.IncomeModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list income")
	}

	records := make([]*entity.Income, 0, len(models))
	for i := range models {
		records = append(records, toIncomeDomain(&models[i]))
	}

	return records, nil
}

// Update modifies an existing income record scoped to its owner.
func (repo *incomeRepository) Update(ctx context.Context, income *entity.Income) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IncomeModel{}).
		Where("id = ? AND user_id = ?", income.ID, income.UserID).
		Updates(map[string]any{
			"name":     income.Name,
			"amount":   income.Amount,
			"time":     income.Time,
			"date":     income.Date,
			"position": income.Position,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update income")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIncomeNotFound
	}

	return nil
}

// Delete removes one income record scoped to its owner.
func (repo *incomeRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.IncomeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete income")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIncomeNotFound
	}

	return nil
}

// toIncomeDomain converts a GORM IncomeModel to a domain Income entity.
func toIncomeDomain(data *model.IncomeModel) *entity.Income {
	return &entity.Income{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Amount:    data.Amount,
		Time:      data.Time,
		Date:      data.Date,
		Position:  data.Position,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromIncomeDomain converts a domain Income entity to a GORM IncomeModel.
func fromIncomeDomain(data *entity.Income) *model.IncomeModel {
	return &model.IncomeModel{
		ID:       data.ID,
		UserID:   data.UserID,
		Name:     data.Name,
		Amount:   data.Amount,
		Time:     data.Time,
		Date:     data.Date,
		Position: data.Position,
	}
}
