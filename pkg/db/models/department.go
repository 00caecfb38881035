package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
)

// Department is a flat registry row; Code is the two-letter prefix used by
// employee code generation.
type Department struct {
	ID          uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Name        string                 `gorm:"type:text;not null;uniqueIndex"`
	Code        string                 `gorm:"type:text;not null"`
	Description *string                `gorm:"type:text"`
	Status      enums.DepartmentStatus `gorm:"column:status;not null"`
	CreatedBy   string                 `gorm:"column:created_by;not null"`
	CreatedAt   time.Time              `gorm:"column:created_at;autoCreateTime"`
}
