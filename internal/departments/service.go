package departments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/db/models"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
	pkgerrors "github.com/staffhubhq/staffhub-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service defines department registry operations. The registry is flat:
// create and list only, no update or delete.
type Service interface {
	CreateDepartment(ctx context.Context, input CreateDepartmentInput) (*DepartmentResult, error)
	ListDepartments(ctx context.Context) ([]DepartmentResult, error)
}

type service struct {
	repo Repository
}

// NewService builds a departments service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("departments repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateDepartment(ctx context.Context, input CreateDepartmentInput) (*DepartmentResult, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "department name is required")
	}
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "department code is required")
	}
	if input.CreatedBy == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "caller identity missing")
	}

	status := input.Status
	if status == "" {
		status = enums.DepartmentStatusActive
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid department status")
	}

	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "department already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check department name")
	}

	department := &models.Department{
		ID:          uuid.New(),
		Name:        name,
		Code:        code,
		Description: input.Description,
		Status:      status,
		CreatedBy:   input.CreatedBy,
	}
	if _, err := s.repo.Create(ctx, department); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create department")
	}

	result := toResult(department)
	return &result, nil
}

func (s *service) ListDepartments(ctx context.Context) ([]DepartmentResult, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list departments")
	}
	results := make([]DepartmentResult, 0, len(rows))
	for i := range rows {
		results = append(results, toResult(&rows[i]))
	}
	return results, nil
}

func toResult(department *models.Department) DepartmentResult {
	return DepartmentResult{
		ID:          department.ID,
		Name:        department.Name,
		Code:        department.Code,
		Description: department.Description,
		Status:      department.Status,
		CreatedBy:   department.CreatedBy,
		CreatedAt:   department.CreatedAt,
	}
}
