package model

import (
	"time"

	"github.com/google/uuid"
)

// BudgetModel mirrors the 'budgets' table.
type BudgetModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null"`
	Amount     float64   `gorm:"type:numeric(12,2);not null"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ExpenseModel mirrors the 'expenses' table.
type ExpenseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Category  string    `gorm:"type:varchar(100);not null"`
	Location  string    `gorm:"type:varchar(255)"`
	Amount    float64   `gorm:"type:numeric(12,2);not null"`
	Date      time.Time `gorm:"type:date;not null"`
	Payment   string    `gorm:"type:varchar(20);not null"`
	Deduction string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// IncomeModel mirrors the 'income' table.
type IncomeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Amount    float64   `gorm:"type:numeric(12,2);not null"`
	Time      string    `gorm:"type:varchar(20);not null"`
	Date      time.Time `gorm:"type:date;not null"`
	Position  string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IncomeModel) TableName() string {
	return "income"
}

// SavingModel mirrors the 'savings' table.
type SavingModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Amount        float64   `gorm:"type:numeric(12,2);not null"`
	DepositAmount float64   `gorm:"type:numeric(12,2);not null"`
	Time          string    `gorm:"type:varchar(20);not null"`
	Date          time.Time `gorm:"type:date;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SavingModel) TableName() string {
	return "savings"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
