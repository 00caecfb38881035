package employees

import (
	"context"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/db/models"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an employees repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateGeneral(ctx context.Context, general *models.General) (*models.General, error) {
	if err := r.db.WithContext(ctx).Create(general).Error; err != nil {
		return nil, err
	}
	return general, nil
}

func (r *repository) CreateProfessional(ctx context.Context, professional *models.Professional) (*models.Professional, error) {
	if err := r.db.WithContext(ctx).Create(professional).Error; err != nil {
		return nil, err
	}
	return professional, nil
}

func (r *repository) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if err := r.db.WithContext(ctx).Create(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *repository) CreateBankDetails(ctx context.Context, details *models.BankDetails) (*models.BankDetails, error) {
	if err := r.db.WithContext(ctx).Create(details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *repository) CreatePreviousJob(ctx context.Context, job *models.PreviousJob) (*models.PreviousJob, error) {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (r *repository) ListEmpCodesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&models.General{}).
		Where("emp_code LIKE ?", prefix+"%").
		Pluck("emp_code", &codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *repository) ListActiveEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *repository) FindEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
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

func (r *repository) FindGeneral(ctx context.Context, id uuid.UUID) (*models.General, error) {
	var general models.General
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&general).Error
	if err != nil {
		return nil, err
	}
	return &general, nil
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

func (r *repository) FindProfessional(ctx context.Context, id uuid.UUID) (*models.Professional, error) {
	var professional models.Professional
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&professional).Error
	if err != nil {
		return nil, err
	}
	return &professional, nil
}

func (r *repository) FindBankDetails(ctx context.Context, id uuid.UUID) (*models.BankDetails, error) {
	var details models.BankDetails
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&details).Error
	if err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *repository) FindPFDetails(ctx context.Context, id uuid.UUID) (*models.PFDetails, error) {
	var details models.PFDetails
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&details).Error
	if err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *repository) FindPreviousJob(ctx context.Context, id uuid.UUID) (*models.PreviousJob, error) {
	var job models.PreviousJob
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *repository) FindLoansByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Loan, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var loans []models.Loan
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&loans).Error
	if err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) FindPreviousJobsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.PreviousJob, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var jobs []models.PreviousJob
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *repository) FindAllocationsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.ResourceAllocation, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var allocations []models.ResourceAllocation
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&allocations).Error
	if err != nil {
		return nil, err
	}
	return allocations, nil
}

func (r *repository) UpdateEmployee(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) UpdateGeneral(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.General{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) UpdateProfessional(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) UpdateBankDetails(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.BankDetails{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) UpdatePreviousJob(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.PreviousJob{}).
		Where("id = ?", id).
		Updates(updates).Error
}
