package projects

import (
	"context"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for projects and allocations.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	FindProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, updates map[string]any) error

	CreateAllocation(ctx context.Context, allocation *models.ResourceAllocation) (*models.ResourceAllocation, error)
	FindAllocation(ctx context.Context, id uuid.UUID) (*models.ResourceAllocation, error)
	FindActiveAllocation(ctx context.Context, projectID uuid.UUID, empCode string) (*models.ResourceAllocation, error)
	UpdateAllocation(ctx context.Context, id uuid.UUID, updates map[string]any) error
	SoftDeleteAllocations(ctx context.Context, projectID uuid.UUID, empCode string) error

	FindGeneralByEmpCode(ctx context.Context, empCode string) (*models.General, error)
	FindEmployeeByGeneralID(ctx context.Context, generalID uuid.UUID) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, updates map[string]any) error
}
