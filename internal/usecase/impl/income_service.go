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

// incomeService implements the IncomeUsecase interface.
type incomeService struct {
	incomeRepo repository.IncomeRepository
	logger     *slog.Logger
}

// NewIncomeService is the constructor for incomeService.
func NewIncomeService(incomeRepo repository.IncomeRepository, logger *slog.Logger) usecase.IncomeUsecase {
	return &incomeService{incomeRepo: incomeRepo, logger: logger}
}

func (srv *incomeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a new income source for the authenticated user.
func (srv *incomeService) Create(ctx context.Context, input *usecase.IncomeInput) (*entity.Income, error) {
	income := &entity.Income{
		UserID:   input.UserID,
		Name:     input.Name,
		Amount:   input.Amount,
		Time:     input.Time,
		Date:     input.Date,
		Position: input.Position,
	}

	if err := srv.incomeRepo.Create(ctx, income); err != nil {
		srv.log(ctx).Error("Failed to create income", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create income")
	}

	return income, nil
}

// List returns every income record owned by the user.
func (srv *incomeService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error) {
	records, err := srv.incomeRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list income", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list income")
	}

	return records, nil
}

// Get returns one income record scoped to its owner.
func (srv *incomeService) Get(ctx context.Context, id, userID uuid.UUID) (*entity.Income, error) {
	income, err := srv.incomeRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrIncomeNotFound) {
			return nil, domainerrors.NewNotFoundError("Income")
		}

		return nil, errors.Wrap(err, "failed to find income")
	}

	return income, nil
}

// Update modifies an existing income record owned by the user.
func (srv *incomeService) Update(ctx context.Context, id uuid.UUID, input *usecase.IncomeInput) (*entity.Income, error) {
	income := &entity.Income{
		ID:       id,
		UserID:   input.UserID,
		Name:     input.Name,
		Amount:   input.Amount,
		Time:     input.Time,
		Date:     input.Date,
		Position: input.Position,
	}

	if err := srv.incomeRepo.Update(ctx, income); err != nil {
		if errors.Is(err, repository.ErrIncomeNotFound) {
			return nil, domainerrors.NewNotFoundError("Income")
		}
		srv.log(ctx).Error("Failed to update income", slog.Any("incomeID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update income")
	}

	return srv.Get(ctx, id, input.UserID)
}

// Delete removes one income record owned by the user.
func (srv *incomeService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := srv.incomeRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrIncomeNotFound) {
			return domainerrors.NewNotFoundError("Income")
		}
		srv.log(ctx).Error("Failed to delete income", slog.Any("incomeID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete income")
	}

	return nil
}
