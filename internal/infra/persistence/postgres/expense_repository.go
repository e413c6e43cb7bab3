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

// expenseRepository implements the domain.ExpenseRepository interface using GORM.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository is the constructor for expenseRepository.
func NewExpenseRepository(db *gorm.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

// Create persists a new expense for its owning user.
func (repo *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseM := fromExpenseDomain(expense)

	if err := repo.db.WithContext(ctx).Create(expenseM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create expense")
	}

	expense.ID = expenseM.ID
	expense.CreatedAt = expenseM.CreatedAt
	expense.UpdatedAt = expenseM.UpdatedAt

	return nil
}

// FindByID retrieves one expense scoped to its owner.
func (repo *expenseRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	var expenseM model.ExpenseModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&expenseM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExpenseNotFound
		}

		return nil, errors.Wrap(err, "failed to find expense by id")
	}

	return toExpenseDomain(&expenseM), nil
}

// ListByUser retrieves every expense owned by the user, newest first.
func (repo *expenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	var models []model.ExpenseModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	expenses := make([]*entity.Expense, 0, len(models))
	for i := range models {
		expenses = append(expenses, toExpenseDomain(&models[i]))
	}

	return expenses, nil
}

// Update modifies an existing expense scoped to its owner.
func (repo *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ? AND user_id = ?", expense.ID, expense.UserID).
		Updates(map[string]any{
			"category":  expense.Category,
			"location":  expense.Location,
			"amount":    expense.Amount,
			"date":      expense.Date,
			"payment":   expense.Payment,
			"deduction": expense.Deduction,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update expense")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExpenseNotFound
	}

	return nil
}

// Delete removes one expense scoped to its owner.
func (repo *expenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expense")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExpenseNotFound
	}

	return nil
}

// toExpenseDomain converts a GORM ExpenseModel to a domain Expense entity.
func toExpenseDomain(data *model.ExpenseModel) *entity.Expense {
	return &entity.Expense{
		ID:        data.ID,
		UserID:    data.UserID,
		Category:  data.Category,
		Location:  data.Location,
		Amount:    data.Amount,
		Date:      data.Date,
		Payment:   data.Payment,
		Deduction: data.Deduction,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromExpenseDomain converts a domain Expense entity to a GORM ExpenseModel.
func fromExpenseDomain(data *entity.Expense) *model.ExpenseModel {
	return &model.ExpenseModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Category:  data.Category,
		Location:  data.Location,
		Amount:    data.Amount,
		Date:      data.Date,
		Payment:   data.Payment,
		Deduction: data.Deduction,
	}
}
