package impl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"fintrack/internal/domain/entity"
	domainerrors "fintrack/internal/domain/errors"
	"fintrack/internal/domain/repository"
	mockRepo "fintrack/internal/mocks/repository"
	"fintrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSavingService(t *testing.T) (usecase.SavingUsecase, *mockRepo.MockSavingRepository) {
	savingRepo := mockRepo.NewMockSavingRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSavingService(savingRepo, logger), savingRepo
}

func testSavingInput(userID uuid.UUID) *usecase.SavingInput {
	return &usecase.SavingInput{
		UserID:        userID,
		Name:          "Holiday Fund",
		Amount:        3000.00,
		DepositAmount: 150.00,
		Time:          entity.FrequencyMonthly,
		Date:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSavingService_Update_PassesOwnerThrough(t *testing.T) {
	service, savingRepo := createTestSavingService(t)

	ctx := context.Background()
	id := uuid.New()
	input := testSavingInput(uuid.New())
	stored := &entity.Saving{
		ID:     id,
		UserID: input.UserID,
		Name:   input.Name,
		Amount: input.Amount,
	}

	savingRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Saving")).
		Run(func(ctx context.Context, saving *entity.Saving) {
			assert.Equal(t, id, saving.ID)
			assert.Equal(t, input.UserID, saving.UserID)
		}).
		Return(nil)
	savingRepo.EXPECT().FindByID(ctx, id, input.UserID).Return(stored, nil)

	saving, err := service.Update(ctx, id, input)

	require.NoError(t, err)
	assert.Equal(t, stored, saving)
}

func TestSavingService_Delete_CrossOwnerIsNotFound(t *testing.T) {
	service, savingRepo := createTestSavingService(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	// The repository scopes by owner, so another user's row looks absent.
	savingRepo.EXPECT().Delete(ctx, id, userID).Return(repository.ErrSavingNotFound)

	err := service.Delete(ctx, id, userID)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "Saving not found", appErr.Message())
}
