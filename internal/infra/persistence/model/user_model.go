// Package model defines the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
// The session and reset columns are nullable: NULL means no active session
// and no pending reset respectively.
type UserModel struct {
	ID                      uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email                   string     `gorm:"type:varchar(255);unique;not null"`
	Name                    string     `gorm:"type:varchar(100);not null"`
	PasswordHash            string     `gorm:"type:varchar(255);not null"`
	SessionToken            *string    `gorm:"type:text"`
	ResetPasswordToken      *string    `gorm:"type:varchar(64);unique"`
	ResetPasswordExpiration *time.Time `gorm:"type:timestamptz"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
