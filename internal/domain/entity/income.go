package entity

import (
	"time"

	"github.com/google/uuid"
)

// Income frequency values.
const (
	FrequencyDaily    = "Daily"
	FrequencyWeekly   = "Weekly"
	FrequencyBiWeekly = "Bi-Weekly"
	FrequencyMonthly  = "Monthly"
	FrequencyYearly   = "Yearly"
)

// Employment positions accepted on an income record.
const (
	PositionFullTime = "Full Time"
	PositionPartTime = "Part Time"
	PositionCasual   = "Casual"
	PositionSideJob  = "Side Job"
)

// Income is a recurring source of earnings.
type Income struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Amount    float64
	Time      string // Frequency, one of the Frequency* constants (Daily excluded).
	Date      time.Time
	Position  string // One of the Position* constants.
	CreatedAt time.Time
	UpdatedAt time.Time
}
