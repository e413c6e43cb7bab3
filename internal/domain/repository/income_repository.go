package repository

import (
	"context"
	"errors"

	"fintrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrIncomeNotFound is returned when no income record matches the ID/owner pair.
var ErrIncomeNotFound = errors.New("income not found")

// IncomeRepository defines owner-scoped persistence for income records.
type IncomeRepository interface {
	Create(ctx context.Context, income *entity.Income) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Income, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error)
	Update(ctx context.Context, income *entity.Income) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
