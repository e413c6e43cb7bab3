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

func createTestExpenseService(t *testing.T) (usecase.ExpenseUsecase, *mockRepo.MockExpenseRepository) {
	expenseRepo := mockRepo.NewMockExpenseRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewExpenseService(expenseRepo, logger), expenseRepo
}

func testExpenseInput(userID uuid.UUID) *usecase.ExpenseInput {
	return &usecase.ExpenseInput{
		UserID:    userID,
		Category:  "Groceries",
		Location:  "Corner Store",
		Amount:    42.50,
		Date:      time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Payment:   entity.PaymentDebit,
		Deduction: "None",
	}
}

func TestExpenseService_Update_PassesOwnerThrough(t *testing.T) {
	service, expenseRepo := createTestExpenseService(t)

	ctx := context.Background()
	id := uuid.New()
	input := testExpenseInput(uuid.New())
	stored := &entity.Expense{
		ID:       id,
		UserID:   input.UserID,
		Category: input.Category,
		Amount:   input.Amount,
	}

	expenseRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Expense")).
		Run(func(ctx context.Context, expense *entity.Expense) {
			assert.Equal(t, id, expense.ID)
			assert.Equal(t, input.UserID, expense.UserID)
		}).
		Return(nil)
	expenseRepo.EXPECT().FindByID(ctx, id, input.UserID).Return(stored, nil)

	expense, err := service.Update(ctx, id, input)

	require.NoError(t, err)
	assert.Equal(t, stored, expense)
}

func TestExpenseService_Delete_CrossOwnerIsNotFound(t *testing.T) {
	service, expenseRepo := createTestExpenseService(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	// The repository scopes by owner, so another user's row looks absent.
	expenseRepo.EXPECT().Delete(ctx, id, userID).Return(repository.ErrExpenseNotFound)

	err := service.Delete(ctx, id, userID)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "Expense not found", appErr.Message())
}
