package models

import "github.com/google/uuid"

// ResourceAllocation links one employee (by code) to one project. It is
// referenced twice: from employees.allocation_ids and, denormalized by
// employee code, from projects.resources.
type ResourceAllocation struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmpCode        string    `gorm:"column:emp_code;not null;index"`
	ProjectID      uuid.UUID `gorm:"type:uuid;column:project_id;not null;index"`
	Role           string    `gorm:"column:role;not null;default:''"`
	AllocationDate string    `gorm:"column:allocation_date;not null;default:''"`
	Bandwidth      string    `gorm:"column:bandwidth;not null;default:''"`
	Billing        string    `gorm:"column:billing;not null;default:''"`
	IsDeleted      bool      `gorm:"column:is_deleted;not null;default:false"`
}
