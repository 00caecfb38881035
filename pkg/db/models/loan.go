package models

import (
	"github.com/google/uuid"
	dbtypes "github.com/staffhubhq/staffhub-backend/pkg/db/types"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
)

// Loan belongs to one employee via employees.loan_ids. Money fields stay
// strings end to end, exactly as received; Activity is the append-only
// human-readable history.
type Loan struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey"`
	EmpName      string              `gorm:"column:emp_name;not null"`
	ReqDate      string              `gorm:"column:req_date;not null"`
	Status       enums.LoanStatus    `gorm:"column:status;not null"`
	AmountReq    string              `gorm:"column:amount_req;not null"`
	AmountApp    string              `gorm:"column:amount_app;not null;default:''"`
	Balance      string              `gorm:"column:balance;not null;default:''"`
	Installment  string              `gorm:"column:installment;not null;default:''"`
	PaybackDate  string              `gorm:"column:payback_date;not null;default:''"`
	Remaining    string              `gorm:"column:remaining;not null;default:''"`
	ApprovedBy   string              `gorm:"column:approved_by;not null;default:''"`
	StaffNote    string              `gorm:"column:staff_note;not null;default:''"`
	Note         string              `gorm:"column:note;not null;default:''"`
	CancelReason string              `gorm:"column:cancel_reason;not null;default:''"`
	Activity     dbtypes.StringArray `gorm:"type:text[];column:activity;not null;default:'{}'"`
}
