package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a user-defined label that budgets and expenses refer to.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
