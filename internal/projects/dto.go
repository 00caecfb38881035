package projects

import (
	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
)

// CreateProjectInput carries the fields accepted at project creation. The
// team-member count and delete flag are assigned server-side.
type CreateProjectInput struct {
	ProjectName  string
	BillingType  string
	CreationDate string
	Status       string
}

// EditProjectInput applies a partial merge; nil fields are left untouched.
type EditProjectInput struct {
	ProjectName  *string
	BillingType  *string
	CreationDate *string
	Status       *string
}

// AllocateEmployeeInput attaches one employee, by code, to a project.
type AllocateEmployeeInput struct {
	EmpCode        string
	Role           string
	AllocationDate string
	Bandwidth      string
	Billing        string
}

// EditAllocationInput applies a partial merge to an allocation record.
type EditAllocationInput struct {
	Role           *string
	AllocationDate *string
	Bandwidth      *string
	Billing        *string
}

// ProjectResult is the public projection of a project row.
type ProjectResult struct {
	ID           uuid.UUID           `json:"id"`
	ProjectName  string              `json:"projectName"`
	BillingType  enums.BillingType   `json:"billingType"`
	CreationDate string              `json:"creationDate"`
	Status       enums.ProjectStatus `json:"status"`
	TeamMember   int                 `json:"teamMember"`
	Resources    []string            `json:"resources"`
}

// AllocationResult is the public projection of one allocation record.
type AllocationResult struct {
	ID             uuid.UUID `json:"id"`
	EmpCode        string    `json:"empCode"`
	ProjectID      uuid.UUID `json:"projectId"`
	Role           string    `json:"role"`
	AllocationDate string    `json:"allocationDate"`
	Bandwidth      string    `json:"bandwidth"`
	Billing        string    `json:"billing"`
}

// ProjectDetail is a project together with the current allocation record for
// each employee code still listed in resources.
type ProjectDetail struct {
	Project     ProjectResult      `json:"project"`
	Allocations []AllocationResult `json:"resources"`
}
