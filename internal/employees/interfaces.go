package employees

import (
	"context"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the employee aggregate.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateGeneral(ctx context.Context, general *models.General) (*models.General, error)
	CreateProfessional(ctx context.Context, professional *models.Professional) (*models.Professional, error)
	CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	CreateBankDetails(ctx context.Context, details *models.BankDetails) (*models.BankDetails, error)
	CreatePreviousJob(ctx context.Context, job *models.PreviousJob) (*models.PreviousJob, error)

	ListEmpCodesByPrefix(ctx context.Context, prefix string) ([]string, error)
	ListActiveEmployees(ctx context.Context) ([]models.Employee, error)

	FindEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	FindEmployeeByGeneralID(ctx context.Context, generalID uuid.UUID) (*models.Employee, error)
	FindGeneral(ctx context.Context, id uuid.UUID) (*models.General, error)
	FindGeneralByEmpCode(ctx context.Context, empCode string) (*models.General, error)
	FindProfessional(ctx context.Context, id uuid.UUID) (*models.Professional, error)
	FindBankDetails(ctx context.Context, id uuid.UUID) (*models.BankDetails, error)
	FindPFDetails(ctx context.Context, id uuid.UUID) (*models.PFDetails, error)
	FindPreviousJob(ctx context.Context, id uuid.UUID) (*models.PreviousJob, error)
	FindLoansByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Loan, error)
	FindPreviousJobsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.PreviousJob, error)
	FindAllocationsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.ResourceAllocation, error)

	UpdateEmployee(ctx context.Context, id uuid.UUID, updates map[string]any) error
	UpdateGeneral(ctx context.Context, id uuid.UUID, updates map[string]any) error
	UpdateProfessional(ctx context.Context, id uuid.UUID, updates map[string]any) error
	UpdateBankDetails(ctx context.Context, id uuid.UUID, updates map[string]any) error
	UpdatePreviousJob(ctx context.Context, id uuid.UUID, updates map[string]any) error
}
