package loans

import (
	"context"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the loan subledger.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateLoan(ctx context.Context, loan *models.Loan) (*models.Loan, error)
	FindLoan(ctx context.Context, id uuid.UUID) (*models.Loan, error)
	UpdateLoan(ctx context.Context, id uuid.UUID, updates map[string]any) error
	FindEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, updates map[string]any) error
}
