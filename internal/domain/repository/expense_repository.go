package repository

import (
	"context"
	"errors"

	"fintrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrExpenseNotFound is returned when no expense matches the ID/owner pair.
var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseRepository defines owner-scoped persistence for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
