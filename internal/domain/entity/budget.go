package entity

import (
	"time"

	"github.com/google/uuid"
)

// Budget is a spending cap for one category over a date range.
// Every budget belongs to exactly one user.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID // Owner. All reads and writes are scoped by this.
	CategoryID uuid.UUID
	Amount     float64
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
