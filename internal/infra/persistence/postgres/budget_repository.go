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

// budgetRepository implements the domain.BudgetRepository interface using GORM.
// Every single-row operation filters by both id and user_id, so one user can
// never read or mutate another user's rows.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository is the constructor for budgetRepository.
func NewBudgetRepository(db *gorm.DB) repository.BudgetRepository {
	return &budgetRepository{db: db}
}

// Create persists a new budget for its owning user.
func (repo *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetM := fromBudgetDomain(budget)

	if err := repo.db.WithContext(ctx).Create(budgetM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create budget")
	}

	budget.ID = budgetM.ID
	budget.CreatedAt = budgetM.CreatedAt
	budget.UpdatedAt = budgetM.UpdatedAt

	return nil
}

// FindByID retrieves one budget scoped to its owner.
func (repo *budgetRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error) {
	var budgetM model.BudgetModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&budgetM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBudgetNotFound
		}

		return nil, errors.Wrap(err, "failed to find budget by id")
	}

	return toBudgetDomain(&budgetM), nil
}

// ListByUser retrieves every budget owned by the user.
func (repo *budgetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	var models []model.BudgetModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list budgets")
	}

	budgets := make([]*entity.Budget, 0, len(models))
	for i := range models {
		budgets = append(budgets, toBudgetDomain(&models[i]))
	}

	return budgets, nil
}

// Update modifies an existing budget scoped to its owner.
func (repo *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("id = ? AND user_id = ?", budget.ID, budget.UserID).
		Updates(map[string]any{
			"category_id": budget.CategoryID,
			"amount":      budget.Amount,
			"start_date":  budget.StartDate,
			"end_date":    budget.EndDate,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update budget")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBudgetNotFound
	}

	return nil
}

// Delete removes one budget scoped to its owner.
func (repo *budgetRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.BudgetModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete budget")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBudgetNotFound
	}

	return nil
}

// toBudgetDomain converts a GORM BudgetModel to a domain Budget entity.
func toBudgetDomain(data *model.BudgetModel) *entity.Budget {
	return &entity.Budget{
		ID:         data.ID,
		UserID:     data.UserID,
		CategoryID: data.CategoryID,
		Amount:     data.Amount,
		StartDate:  data.StartDate,
		EndDate:    data.EndDate,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromBudgetDomain converts a domain Budget entity to a GORM BudgetModel.
func fromBudgetDomain(data *entity.Budget) *model.BudgetModel {
	return &model.BudgetModel{
		ID:         data.ID,
		UserID:     data.UserID,
		CategoryID: data.CategoryID,
		Amount:     data.Amount,
		StartDate:  data.StartDate,
		EndDate:    data.EndDate,
	}
}
