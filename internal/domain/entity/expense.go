package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment methods accepted on an expense.
const (
	PaymentCredit = "Credit"
	PaymentDebit  = "Debit"
	PaymentCash   = "Cash"
)

// Expense is a single recorded outgoing transaction.
type Expense struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Location  string
	Amount    float64
	Date      time.Time
	Payment   string // One of the Payment* constants.
	Deduction string
	CreatedAt time.Time
	UpdatedAt time.Time
}
