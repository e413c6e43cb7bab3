package usecase

import (
	"context"
	"time"

	"fintrack/internal/domain/entity"

	"github.com/google/uuid"
)

// BudgetInput carries the writable fields of a budget. UserID always comes
// from the authenticated request, never from the payload.
type BudgetInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     float64
	StartDate  time.Time
	EndDate    time.Time
}

// ExpenseInput carries the writable fields of an expense.
type ExpenseInput struct {
	UserID    uuid.UUID
	Category  string
	Location  string
	Amount    float64
	Date      time.Time
	Payment   string
	Deduction string
}

// IncomeInput carries the writable fields of an income record.
type IncomeInput struct {
	UserID   uuid.UUID
	Name     string
	Amount   float64
	Time     string
	Date     time.Time
	Position string
}

// SavingInput carries the writable fields of a savings goal.
type SavingInput struct {
	UserID        uuid.UUID
	Name          string
	Amount        float64
	DepositAmount float64
	Time          string
	Date          time.Time
}

// CategoryInput carries the writable fields of a category.
type CategoryInput struct {
	UserID uuid.UUID
	Name   string
}

// BudgetUsecase defines budget operations, all scoped to the owning user.
type BudgetUsecase interface {
	Create(ctx context.Context, input *BudgetInput) (*entity.Budget, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error)
	Update(ctx context.Context, id uuid.UUID, input *BudgetInput) (*entity.Budget, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// ExpenseUsecase defines expense operations, all scoped to the owning user.
type ExpenseUsecase interface {
	Create(ctx context.Context, input *ExpenseInput) (*entity.Expense, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error)
	Update(ctx context.Context, id uuid.UUID, input *ExpenseInput) (*entity.Expense, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// IncomeUsecase defines income operations, all scoped to the owning user.
type IncomeUsecase interface {
	Create(ctx context.Context, input *IncomeInput) (*entity.Income, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*entity.Income, error)
	Update(ctx context.Context, id uuid.UUID, input *IncomeInput) (*entity.Income, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// SavingUsecase defines savings operations, all scoped to the owning user.
type SavingUsecase interface {
	Create(ctx context.Context, input *SavingInput) (*entity.Saving, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Saving, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*entity.Saving, error)
	Update(ctx context.Context, id uuid.UUID, input *SavingInput) (*entity.Saving, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// CategoryUsecase defines category operations, all scoped to the owning user.
type CategoryUsecase interface {
	Create(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)
	Update(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
