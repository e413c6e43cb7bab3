package repository

import (
	"context"
	"errors"

	"fintrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSavingNotFound is returned when no saving matches the ID/owner pair.
var ErrSavingNotFound = errors.New("saving not found")

// SavingRepository defines owner-scoped persistence for savings goals.
type SavingRepository interface {
	Create(ctx context.Context, saving *entity.Saving) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Saving, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Saving, error)
	Update(ctx context.Context, saving *entity.Saving) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
