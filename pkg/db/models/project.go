package models

import (
	"github.com/google/uuid"
	dbtypes "github.com/staffhubhq/staffhub-backend/pkg/db/types"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
)

// Project carries a denormalized team-member count and the employee codes
// currently allocated; both are maintained only by the allocation and
// delete transactions so the two sides never drift.
type Project struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ProjectName  string              `gorm:"column:project_name;not null"`
	BillingType  enums.BillingType   `gorm:"column:billing_type;not null"`
	CreationDate string              `gorm:"column:creation_date;not null"`
	Status       enums.ProjectStatus `gorm:"column:status;not null"`
	TeamMember   int                 `gorm:"column:team_member;not null;default:0"`
	Resources    dbtypes.StringArray `gorm:"type:text[];column:resources;not null;default:'{}'"`
	IsDeleted    bool                `gorm:"column:is_deleted;not null;default:false"`
}
