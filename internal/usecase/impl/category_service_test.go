package impl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

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

func createTestCategoryService(t *testing.T) (usecase.CategoryUsecase, *mockRepo.MockCategoryRepository) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCategoryService(categoryRepo, logger), categoryRepo
}

func TestCategoryService_Create_Success(t *testing.T) {
	service, categoryRepo := createTestCategoryService(t)

	ctx := context.Background()
	input := &usecase.CategoryInput{UserID: uuid.New(), Name: "Groceries"}

	categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, category *entity.Category) {
			category.ID = uuid.New()
		}).
		Return(nil)

	category, err := service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Groceries", category.Name)
	assert.Equal(t, input.UserID, category.UserID)
	assert.NotEqual(t, uuid.Nil, category.ID)
}

func TestCategoryService_Get_CrossOwnerIsNotFound(t *testing.T) {
	service, categoryRepo := createTestCategoryService(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	categoryRepo.EXPECT().FindByID(ctx, id, userID).Return(nil, repository.ErrCategoryNotFound)

	category, err := service.Get(ctx, id, userID)

	require.Error(t, err)
	assert.Nil(t, category)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "Category not found", appErr.Message())
}

func TestCategoryService_Update_Success(t *testing.T) {
	service, categoryRepo := createTestCategoryService(t)

	ctx := context.Background()
	id := uuid.New()
	input := &usecase.CategoryInput{UserID: uuid.New(), Name: "Dining"}
	stored := &entity.Category{ID: id, UserID: input.UserID, Name: input.Name}

	categoryRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, category *entity.Category) {
			assert.Equal(t, id, category.ID)
			assert.Equal(t, input.UserID, category.UserID)
		}).
		Return(nil)
	categoryRepo.EXPECT().FindByID(ctx, id, input.UserID).Return(stored, nil)

	category, err := service.Update(ctx, id, input)

	require.NoError(t, err)
	assert.Equal(t, "Dining", category.Name)
}

func TestCategoryService_Delete_CrossOwnerIsNotFound(t *testing.T) {
	service, categoryRepo := createTestCategoryService(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	categoryRepo.EXPECT().Delete(ctx, id, userID).Return(repository.ErrCategoryNotFound)

	err := service.Delete(ctx, id, userID)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestCategoryService_List_Success(t *testing.T) {
	service, categoryRepo := createTestCategoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	rows := []*entity.Category{
		{ID: uuid.New(), UserID: userID, Name: "Bills"},
		{ID: uuid.New(), UserID: userID, Name: "Groceries"},
	}

	categoryRepo.EXPECT().ListByUser(ctx, userID).Return(rows, nil)

	categories, err := service.List(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, categories, 2)
}
