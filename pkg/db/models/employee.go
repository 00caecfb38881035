package models

import (
	"github.com/google/uuid"
	dbtypes "github.com/staffhubhq/staffhub-backend/pkg/db/types"
)

// Employee is the thin join record at the root of the aggregate. It holds
// pointers to the one-to-one sub-records and id lists for the variable
// child collections; it is soft-deleted, never removed.
type Employee struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	GeneralID      uuid.UUID         `gorm:"type:uuid;column:general_id;not null"`
	ProfessionalID uuid.UUID         `gorm:"type:uuid;column:professional_id;not null"`
	BankDetailID   *uuid.UUID        `gorm:"type:uuid;column:bank_detail_id"`
	PFID           *uuid.UUID        `gorm:"type:uuid;column:pf_id"`
	LoanIDs        dbtypes.UUIDArray `gorm:"type:uuid[];column:loan_ids;not null;default:'{}'"`
	PreviousJobIDs dbtypes.UUIDArray `gorm:"type:uuid[];column:previous_job_ids;not null;default:'{}'"`
	AllocationIDs  dbtypes.UUIDArray `gorm:"type:uuid[];column:allocation_ids;not null;default:'{}'"`
	IsDeleted      bool              `gorm:"column:is_deleted;not null;default:false"`
}
