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

// budgetService implements the BudgetUsecase interface.
type budgetService struct {
	budgetRepo repository.BudgetRepository
	logger     *slog.Logger
}

// NewBudgetService is the constructor for budgetService.
func NewBudgetService(budgetRepo repository.BudgetRepository, logger *slog.Logger) usecase.BudgetUsecase {
	return &budgetService{budgetRepo: budgetRepo, logger: logger}
}

func (srv *budgetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a new budget for the authenticated user.
func (srv *budgetService) Create(ctx context.Context, input *usecase.BudgetInput) (*entity.Budget, error) {
	budget := &entity.Budget{
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
		Amount:     input.Amount,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	if err := srv.budgetRepo.Create(ctx, budget); err != nil {
		srv.log(ctx).Error("Failed to create budget", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create budget")
	}

	return budget, nil
}

// List returns every budget owned by the user.
func (srv *budgetService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	budgets, err := srv.budgetRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list budgets", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list budgets")
	}

	return budgets, nil
}

// Get returns one budget, or a not-found error when the row does not exist
// or belongs to another user.
func (srv *budgetService) Get(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error) {
	budget, err := srv.budgetRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBudgetNotFound) {
			return nil, domainerrors.NewNotFoundError("Budget")
		}

		return nil, errors.Wrap(err, "failed to find budget")
	}

	return budget, nil
}

// Update modifies an existing budget owned by the user.
func (srv *budgetService) Update(ctx context.Context, id uuid.UUID, input *usecase.BudgetInput) (*entity.Budget, error) {
	budget := &entity.Budget{
		ID:         id,
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
		Amount:     input.Amount,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	if err := srv.budgetRepo.Update(ctx, budget); err != nil {
		if errors.Is(err, repository.ErrBudgetNotFound) {
			return nil, domainerrors.NewNotFoundError("Budget")
		}
		srv.log(ctx).Error("Failed to update budget", slog.Any("budgetID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update budget")
	}

	return srv.Get(ctx, id, input.UserID)
}

// Delete removes one budget owned by the user.
func (srv *budgetService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := srv.budgetRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrBudgetNotFound) {
			return domainerrors.NewNotFoundError("Budget")
		}
		srv.log(ctx).Error("Failed to delete budget", slog.Any("budgetID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete budget")
	}

	return nil
}
