package entity

import (
	"time"

	"github.com/google/uuid"
)

// Saving is a savings goal with a recurring deposit schedule.
type Saving struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Amount        float64 // Target amount.
	DepositAmount float64 // Amount put aside per period.
	Time          string  // Deposit frequency, one of the Frequency* constants.
	Date          time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
