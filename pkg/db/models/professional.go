package models

import "github.com/google/uuid"

// Professional holds the employment half of an employee aggregate.
type Professional struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	JoiningDate           string    `gorm:"column:joining_date;not null"`
	Department            string    `gorm:"column:department;not null"`
	Designation           string    `gorm:"column:designation;not null"`
	Location              string    `gorm:"column:location;not null"`
	ReportingManagerName  string    `gorm:"column:reporting_manager_name;not null"`
	ReportingManagerEmail *string   `gorm:"column:reporting_manager_email"`
	CTCAnnual             string    `gorm:"column:ctc_annual;not null"`
	PayslipComponent      string    `gorm:"column:payslip_component;not null"`
	HolidayGroup          string    `gorm:"column:holiday_group;not null"`
	WorkWeek              string    `gorm:"column:work_week;not null"`
}
