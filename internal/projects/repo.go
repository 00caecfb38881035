package projects

import (
	"context"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/db/models"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a projects repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

func (r *repository) FindProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *repository) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *repository) UpdateProject(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) CreateAllocation(ctx context.Context, allocation *models.ResourceAllocation) (*models.ResourceAllocation, error) {
	if err := r.db.WithContext(ctx).Create(allocation).Error; err != nil {
		return nil, err
	}
	return allocation, nil
}

func (r *repository) FindAllocation(ctx context.Context, id uuid.UUID) (*models.ResourceAllocation, error) {
	var allocation models.ResourceAllocation
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&allocation).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

func (r *repository) FindActiveAllocation(ctx context.Context, projectID uuid.UUID, empCode string) (*models.ResourceAllocation, error) {
	var allocation models.ResourceAllocation
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND emp_code = ? AND is_deleted = ?", projectID, empCode, false).
		First(&allocation).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

func (r *repository) UpdateAllocation(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.ResourceAllocation{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) SoftDeleteAllocations(ctx context.Context, projectID uuid.UUID, empCode string) error {
	return r.db.WithContext(ctx).
		Model(&models.ResourceAllocation{}).
		Where("project_id = ? AND emp_code = ?", projectID, empCode).
		Update("is_deleted", true).Error
}

func (r *repository) FindGeneralByEmpCode(ctx context.Context, empCode string) (*models.General, error) {
	var general models.General
	err := r.db.WithContext(ctx).
		Where("emp_code = ?", empCode).
		First(&general).Error
	if err != nil {
		return nil, err
	}
	return &general, nil
}

func (r *repository) FindEmployeeByGeneralID(ctx context.Context, generalID uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).
		Where("general_id = ?", generalID).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *repository) UpdateEmployee(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", id).
		Updates(updates).Error
}
