package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
)

// User is the identity profile row; the role column is what the
// authorization gate checks, not whatever the token claims.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Email        string         `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string         `gorm:"column:password_hash;not null"`
	DisplayName  string         `gorm:"column:display_name;not null"`
	Role         enums.UserRole `gorm:"column:role;not null"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
}
