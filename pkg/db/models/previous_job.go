package models

import "github.com/google/uuid"

// PreviousJob is an employment-history entry linked from
// employees.previous_job_ids.
type PreviousJob struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName string    `gorm:"column:company_name;not null"`
	Designation string    `gorm:"column:designation;not null"`
	FromDate    string    `gorm:"column:from_date;not null"`
	ToDate      string    `gorm:"column:to_date;not null"`
	Location    *string   `gorm:"column:location"`
}
