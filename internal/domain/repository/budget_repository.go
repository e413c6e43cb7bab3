package repository

import (
	"context"
	"errors"

	"fintrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBudgetNotFound covers both a missing row and a row owned by another
// user; callers cannot tell the two apart.
var ErrBudgetNotFound = errors.New("budget not found")

// BudgetRepository defines owner-scoped persistence for budgets. Every
// operation that addresses a single row filters by both the row ID and the
// owning user's ID.
type BudgetRepository interface {
	Create(ctx context.Context, budget *entity.Budget) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)
	Update(ctx context.Context, budget *entity.Budget) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
