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

// expenseService implements the ExpenseUsecase interface.
type expenseService struct {
	expenseRepo repository.ExpenseRepository
	logger      *slog.Logger
}

// NewExpenseService is the constructor for expenseService.
func NewExpenseService(expenseRepo repository.ExpenseRepository, logger *slog.Logger) usecase.ExpenseUsecase {
	return &expenseService{expenseRepo: expenseRepo, logger: logger}
}

func (srv *expenseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a new expense for the authenticated user.
func (srv *expenseService) Create(ctx context.Context, input *usecase.ExpenseInput) (*entity.Expense, error) {
	expense := &entity.Expense{
		UserID:    input.UserID,
		Category:  input.Category,
		Location:  input.Location,
		Amount:    input.Amount,
		Date:      input.Date,
		Payment:   input.Payment,
		Deduction: input.Deduction,
	}

	if err := srv.expenseRepo.Create(ctx, expense); err != nil {
		srv.log(ctx).Error("Failed to create expense", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create expense")
	}

	return expense, nil
}

// List returns every expense owned by the user.
func (srv *expenseService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	expenses, err := srv.expenseRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list expenses", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list expenses")
	}

	return expenses, nil
}

// Get returns one expense scoped to its owner.
func (srv *expenseService) Get(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	expense, err := srv.expenseRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, domainerrors.NewNotFoundError("Expense")
		}

		return nil, errors.Wrap(err, "failed to find expense")
	}

	return expense, nil
}

// Update modifies an existing expense owned by the user.
func (srv *expenseService) Update(ctx context.Context, id uuid.UUID, input *usecase.ExpenseInput) (*entity.Expense, error) {
	expense := &entity.Expense{
		ID:        id,
		UserID:    input.UserID,
		Category:  input.Category,
		Location:  input.Location,
		Amount:    input.Amount,
		Date:      input.Date,
		Payment:   input.Payment,
		Deduction: input.Deduction,
	}

	if err := srv.expenseRepo.Update(ctx, expense); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, domainerrors.NewNotFoundError("Expense")
		}
		srv.log(ctx).Error("Failed to update expense", slog.Any("expenseID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update expense")
	}

	return srv.Get(ctx, id, input.UserID)
}

// Delete removes one expense owned by the user.
func (srv *expenseService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := srv.expenseRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return domainerrors.NewNotFoundError("Expense")
		}
		srv.log(ctx).Error("Failed to delete expense", slog.Any("expenseID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete expense")
	}

	return nil
}
