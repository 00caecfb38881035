package departments

import (
	"time"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
)

// CreateDepartmentInput carries the registry entry plus the acting user.
type CreateDepartmentInput struct {
	Name        string
	Code        string
	Description *string
	Status      enums.DepartmentStatus
	CreatedBy   string
}

// DepartmentResult is the public projection of a department row.
type DepartmentResult struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Code        string                 `json:"code"`
	Description *string                `json:"description,omitempty"`
	Status      enums.DepartmentStatus `json:"status"`
	CreatedBy   string                 `json:"createdBy"`
	CreatedAt   time.Time              `json:"createdAt"`
}
