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

func createTestBudgetService(t *testing.T) (usecase.BudgetUsecase, *mockRepo.MockBudgetRepository) {
	budgetRepo := mockRepo.NewMockBudgetRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewBudgetService(budgetRepo, logger), budgetRepo
}

func testBudgetInput(userID uuid.UUID) *usecase.BudgetInput {
	return &usecase.BudgetInput{
		UserID:     userID,
		CategoryID: uuid.New(),
		Amount:     500.00,
		StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestBudgetService_Create_Success(t *testing.T) {
	service, budgetRepo := createTestBudgetService(t)

	ctx := context.Background()
	input := testBudgetInput(uuid.New())

	budgetRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Budget")).
		Run(func(ctx context.Context, budget *entity.Budget) {
			assert.Equal(t, input.UserID, budget.UserID)
			budget.ID = uuid.New()
		}).
		Return(nil)

	budget, err := service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.UserID, budget.UserID)
	assert.Equal(t, input.Amount, budget.Amount)
	assert.NotEqual(t, uuid.Nil, budget.ID)
}

func TestBudgetService_Get_CrossOwnerIsNotFound(t *testing.T) {
	service, budgetRepo := createTestBudgetService(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	// The repository scopes by owner, so another user's row looks absent.
	budgetRepo.EXPECT().FindByID(ctx, id, userID).Return(nil, repository.ErrBudgetNotFound)

	budget, err := service.Get(ctx, id, userID)

	require.Error(t, err)
	assert.Nil(t, budget)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "Budget not found", appErr.Message())
}

func TestBudgetService_Update_PassesOwnerThrough(t *testing.T) {
	service, budgetRepo := createTestBudgetService(t)

	ctx := context.Background()
	id := uuid.New()
	input := testBudgetInput(uuid.New())
	stored := &entity.Budget{
		ID:         id,
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
		Amount:     input.Amount,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	budgetRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Budget")).
		Run(func(ctx context.Context, budget *entity.Budget) {
			assert.Equal(t, id, budget.ID)
			assert.Equal(t, input.UserID, budget.UserID)
		}).
		Return(nil)
	budgetRepo.EXPECT().FindByID(ctx, id, input.UserID).Return(stored, nil)

	budget, err := service.Update(ctx, id, input)

	require.NoError(t, err)
	assert.Equal(t, stored, budget)
}

func TestBudgetService_Update_NotFound(t *testing.T) {
	service, budgetRepo := createTestBudgetService(t)

	ctx := context.Background()
	id := uuid.New()
	input := testBudgetInput(uuid.New())

	budgetRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Budget")).
		Return(repository.ErrBudgetNotFound)

	budget, err := service.Update(ctx, id, input)

	require.Error(t, err)
	assert.Nil(t, budget)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestBudgetService_Delete_Success(t *testing.T) {
	service, budgetRepo := createTestBudgetService(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	budgetRepo.EXPECT().Delete(ctx, id, userID).Return(nil)

	require.NoError(t, service.Delete(ctx, id, userID))
}

func TestBudgetService_Delete_CrossOwnerIsNotFound(t *testing.T) {
	service, budgetRepo := createTestBudgetService(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	budgetRepo.EXPECT().Delete(ctx, id, userID).Return(repository.ErrBudgetNotFound)

	err := service.Delete(ctx, id, userID)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestBudgetService_List_Success(t *testing.T) {
	service, budgetRepo := createTestBudgetService(t)

	ctx := context.Background()
	userID := uuid.New()
	rows := []*entity.Budget{
		{ID: uuid.New(), UserID: userID, Amount: 100},
		{ID: uuid.New(), UserID: userID, Amount: 200},
	}

	budgetRepo.EXPECT().ListByUser(ctx, userID).Return(rows, nil)

	budgets, err := service.List(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, budgets, 2)
}
