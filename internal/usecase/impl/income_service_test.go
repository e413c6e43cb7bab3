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

func createTestIncomeService(t *testing.T) (usecase.IncomeUsecase, *mockRepo.MockIncomeRepository) {
	incomeRepo := mockRepo.NewMockIncomeRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewIncomeService(incomeRepo, logger), incomeRepo
}

func testIncomeInput(userID uuid.UUID) *usecase.IncomeInput {
	return &usecase.IncomeInput{
		UserID:   userID,
		Name:     "Day Job",
		Amount:   2500.00,
		Time:     entity.FrequencyBiWeekly,
		Date:     time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC),
		Position: entity.PositionFullTime,
	}
}

func TestIncomeService_Update_PassesOwnerThrough(t *testing.T) {
	service, incomeRepo := createTestIncomeService(t)

	ctx := context.Background()
	id := uuid.New()
	input := testIncomeInput(uuid.New())
	stored := &entity.Income{
		ID:     id,
		UserID: input.UserID,
		Name:   input.Name,
		Amount: input.Amount,
	}

	incomeRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Income")).
		Run(func(ctx context.Context, income *entity.Income) {
			assert.Equal(t, id, income.ID)
			assert.Equal(t, input.UserID, income.UserID)
		}).
		Return(nil)
	incomeRepo.EXPECT().FindByID(ctx, id, input.UserID).Return(stored, nil)

	income, err := service.Update(ctx, id, input)

	require.NoError(t, err)
	assert.Equal(t, stored, income)
}

func TestIncomeService_Delete_CrossOwnerIsNotFound(t *testing.T) {
	service, incomeRepo := createTestIncomeService(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	// The repository scopes by owner, so another user's row looks absent.
	incomeRepo.EXPECT().Delete(ctx, id, userID).Return(repository.ErrIncomeNotFound)

	err := service.Delete(ctx, id, userID)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "Income not found", appErr.Message())
}
