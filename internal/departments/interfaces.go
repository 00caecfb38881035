package departments

import (
	"context"

	"github.com/staffhubhq/staffhub-backend/pkg/db/models"
)

// Repository defines persistence operations for the department registry.
type Repository interface {
	Create(ctx context.Context, department *models.Department) (*models.Department, error)
	List(ctx context.Context) ([]models.Department, error)
	FindByName(ctx context.Context, name string) (*models.Department, error)
}
