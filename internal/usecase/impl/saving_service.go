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

// savingService implements the SavingUsecase interface.
type savingService struct {
	savingRepo repository.SavingRepository
	logger     *slog.Logger
}

// NewSavingService is the constructor for savingService.
func NewSavingService(savingRepo repository.SavingRepository, logger *slog.Logger) usecase.SavingUsecase {
	return &savingService{savingRepo: savingRepo, logger: logger}
}

func (srv *savingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a new savings goal for the authenticated user.
func (srv *savingService) Create(ctx context.Context, input *usecase.SavingInput) (*entity.Saving, error) {
	saving := &entity.Saving{
		UserID:        input.UserID,
		Name:          input.Name,
		Amount:        input.Amount,
		DepositAmount: input.DepositAmount,
		Time:          input.Time,
		Date:          input.Date,
	}

	if err := srv.savingRepo.Create(ctx, saving); err != nil {
		srv.log(ctx).Error("Failed to create saving", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create saving")
	}

	return saving, nil
}

// List returns every savings goal owned by the user.
func (srv *savingService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Saving, error) {
	savings, err := srv.savingRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list savings", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list savings")
	}

	return savings, nil
}

// Get returns one savings goal scoped to its owner.
func (srv *savingService) Get(ctx context.Context, id, userID uuid.UUID) (*entity.Saving, error) {
	saving, err := srv.savingRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSavingNotFound) {
			return nil, domainerrors.NewNotFoundError("Saving")
		}

		return nil, errors.Wrap(err, "failed to find saving")
	}

	return saving, nil
}

// Update modifies an existing savings goal owned by the user.
func (srv *savingService) Update(ctx context.Context, id uuid.UUID, input *usecase.SavingInput) (*entity.Saving, error) {
	saving := &entity.Saving{
		ID:            id,
		UserID:        input.UserID,
		Name:          input.Name,
		Amount:        input.Amount,
		DepositAmount: input.DepositAmount,
		Time:          input.Time,
		Date:          input.Date,
	}

	if err := srv.savingRepo.Update(ctx, saving); err != nil {
		if errors.Is(err, repository.ErrSavingNotFound) {
			return nil, domainerrors.NewNotFoundError("Saving")
		}
		srv.log(ctx).Error("Failed to update saving", slog.Any("savingID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update saving")
	}

	return srv.Get(ctx, id, input.UserID)
}

// Delete removes one savings goal owned by the user.
func (srv *savingService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := srv.savingRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrSavingNotFound) {
			return domainerrors.NewNotFoundError("Saving")
		}
		srv.log(ctx).Error("Failed to delete saving", slog.Any("savingID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete saving")
	}

	return nil
}
