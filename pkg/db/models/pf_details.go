package models

import "github.com/google/uuid"

// PFDetails is the provident-fund record, one-to-one with Employee.
type PFDetails struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeePFEnable bool      `gorm:"column:employee_pf_enable;not null;default:false"`
	PFNum            *string   `gorm:"column:pf_num"`
	EmployerPFEnable bool      `gorm:"column:employer_pf_enable;not null;default:false"`
	UANNum           *string   `gorm:"column:uan_num"`
	ESIEnable        bool      `gorm:"column:esi_enable;not null;default:false"`
	ESINum           *string   `gorm:"column:esi_num"`
	ProfessionalTax  bool      `gorm:"column:professional_tax;not null;default:false"`
	LabourWelfare    bool      `gorm:"column:labour_welfare;not null;default:false"`
}
