package models

import (
	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
)

// General holds the personal identity half of an employee aggregate.
type General struct {
	ID           uuid.UUID            `gorm:"type:uuid;primaryKey"`
	EmpCode      string               `gorm:"column:emp_code;not null;index"`
	Title        string               `gorm:"type:text;not null"`
	FirstName    string               `gorm:"column:first_name;not null"`
	LastName     string               `gorm:"column:last_name;not null"`
	Status       enums.EmployeeStatus `gorm:"column:status;not null"`
	Gender       enums.Gender         `gorm:"column:gender;not null"`
	PhoneCode    string               `gorm:"column:phone_code;not null"`
	PhoneNum     string               `gorm:"column:phone_num;not null"`
	PrimaryEmail string               `gorm:"column:primary_email;not null"`
}
