package departments

import (
	"context"

	"github.com/staffhubhq/staffhub-backend/pkg/db/models"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a departments repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, department *models.Department) (*models.Department, error) {
	if err := r.db.WithContext(ctx).Create(department).Error; err != nil {
		return nil, err
	}
	return department, nil
}

func (r *repository) List(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *repository) FindByName(ctx context.Context, name string) (*models.Department, error) {
	var department models.Department
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&department).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}
