package repository

import (
	"context"
	"errors"

	"fintrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when no category matches the ID/owner pair.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines owner-scoped persistence for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
