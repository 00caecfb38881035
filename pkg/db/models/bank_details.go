package models

import (
	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
)

// BankDetails is one-to-one with Employee via employees.bank_detail_id.
type BankDetails struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	BankName    string            `gorm:"column:bank_name;not null"`
	AccountName string            `gorm:"column:account_name;not null"`
	BranchName  string            `gorm:"column:branch_name;not null"`
	AccountType enums.AccountType `gorm:"column:account_type;not null"`
	AccountNum  string            `gorm:"column:account_num;not null"`
	IFSCCode    string            `gorm:"column:ifsc_code;not null"`
}
