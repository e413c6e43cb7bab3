package impl

import (
	"context"
	"log/slog"

	deliverycontext "fintrack/internal/delivery/context"
	"fintrack/internal/domain/entity"
	domainerrors "fintrack/internal/domain/errors"
	"fintrack/internal/domain/repository"
	"fintrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, logger *slog.Logger) usecase.CategoryUsecase {
	return &categoryService{categoryRepo: categoryRepo, logger: logger}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a new category for the authenticated user.
func (srv *categoryService) Create(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		UserID: input.UserID,
		Name:   input.Name,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		srv.log(ctx).Error("Failed to create category", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// List returns every category owned by the user.
func (srv *categoryService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list categories", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Get returns one category scoped to its owner.
func (srv *categoryService) Get(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.NewNotFoundError("Category")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// Update renames an existing category owned by the user.
func (srv *categoryService) Update(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:     id,
		UserID: input.UserID,
		Name:   input.Name,
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.NewNotFoundError("Category")
		}
		srv.log(ctx).Error("Failed to update category", slog.Any("categoryID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update category")
	}

	return srv.Get(ctx, id, input.UserID)
}

// Delete removes one category owned by the user.
func (srv *categoryService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.NewNotFoundError("Category")
		}
		srv.log(ctx).Error("Failed to delete category", slog.Any("categoryID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}
