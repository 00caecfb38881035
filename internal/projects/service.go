package projects

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/db/models"
	dbtypes "github.com/staffhubhq/staffhub-backend/pkg/db/types"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
	pkgerrors "github.com/staffhubhq/staffhub-backend/pkg/errors"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines project and allocation operations.
type Service interface {
	CreateProject(ctx context.Context, input CreateProjectInput) (*ProjectResult, error)
	GetProject(ctx context.Context, id uuid.UUID) (*ProjectDetail, error)
	ListProjects(ctx context.Context) ([]ProjectResult, error)
	EditProject(ctx context.Context, id uuid.UUID, input EditProjectInput) (*ProjectResult, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	AllocateEmployee(ctx context.Context, projectID uuid.UUID, input AllocateEmployeeInput) (*AllocationResult, error)
	EditResourceAllocation(ctx context.Context, allocationID uuid.UUID, input EditAllocationInput) (*AllocationResult, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds a projects service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("projects repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// CreateProject stores the supplied fields as-is, seeding the delete flag and
// the team-member count. Only the enum fields are checked, and only when set.
func (s *service) CreateProject(ctx context.Context, input CreateProjectInput) (*ProjectResult, error) {
	billingType := enums.BillingType(strings.TrimSpace(input.BillingType))
	if billingType != "" && !billingType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid billing type")
	}
	status := enums.ProjectStatus(strings.TrimSpace(input.Status))
	if status != "" && !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid project status")
	}

	project := &models.Project{
		ID:           uuid.New(),
		ProjectName:  input.ProjectName,
		BillingType:  billingType,
		CreationDate: input.CreationDate,
		Status:       status,
		TeamMember:   0,
		Resources:    dbtypes.StringArray{},
		IsDeleted:    false,
	}
	if _, err := s.repo.CreateProject(ctx, project); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create project")
	}

	result := toProjectResult(project)
	return &result, nil
}

// GetProject resolves every employee code in resources to its current
// allocation record. Codes without a live record are dropped silently.
func (s *service) GetProject(ctx context.Context, id uuid.UUID) (*ProjectDetail, error) {
	project, err := s.findLiveProject(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ProjectDetail{
		Project:     toProjectResult(project),
		Allocations: []AllocationResult{},
	}
	for _, empCode := range project.Resources {
		allocation, err := s.repo.FindActiveAllocation(ctx, project.ID, empCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve allocation")
		}
		detail.Allocations = append(detail.Allocations, toAllocationResult(allocation))
	}
	return detail, nil
}

func (s *service) ListProjects(ctx context.Context) ([]ProjectResult, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list projects")
	}

	results := make([]ProjectResult, 0, len(projects))
	for i := range projects {
		results = append(results, toProjectResult(&projects[i]))
	}
	return results, nil
}

// EditProject applies only the supplied fields; an empty input is a no-op.
func (s *service) EditProject(ctx context.Context, id uuid.UUID, input EditProjectInput) (*ProjectResult, error) {
	if _, err := s.findLiveProject(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	putString(updates, "project_name", input.ProjectName)
	putString(updates, "creation_date", input.CreationDate)
	if input.BillingType != nil {
		billingType, err := enums.ParseBillingType(*input.BillingType)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid billing type")
		}
		updates["billing_type"] = billingType
	}
	if input.Status != nil {
		status := enums.ProjectStatus(*input.Status)
		if !status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid project status")
		}
		updates["status"] = status
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateProject(ctx, id, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "edit project")
		}
	}

	project, err := s.findLiveProject(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toProjectResult(project)
	return &result, nil
}

// DeleteProject soft-deletes the project and, in the same transaction, every
// allocation record matching a code in its resources list.
func (s *service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	project, err := s.findLiveProject(ctx, id)
	if err != nil {
		return err
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.UpdateProject(ctx, id, map[string]any{"is_deleted": true}); err != nil {
			return err
		}
		for _, empCode := range project.Resources {
			if err := repo.SoftDeleteAllocations(ctx, id, empCode); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete project")
	}
	return nil
}

// AllocateEmployee resolves the employee code, then commits three effects in
// one transaction: the new allocation record, the project's resources and
// team-member count, and the employee's allocation list. Repeating a code
// still creates a record and bumps the count; only resources stays a set.
func (s *service) AllocateEmployee(ctx context.Context, projectID uuid.UUID, input AllocateEmployeeInput) (*AllocationResult, error) {
	empCode := strings.TrimSpace(input.EmpCode)
	if empCode == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "empCode is required")
	}

	project, err := s.findLiveProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	general, err := s.repo.FindGeneralByEmpCode(ctx, empCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "employee code not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve employee code")
	}
	employee, err := s.repo.FindEmployeeByGeneralID(ctx, general.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "employee not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve employee")
	}

	allocation := &models.ResourceAllocation{
		ID:             uuid.New(),
		EmpCode:        empCode,
		ProjectID:      project.ID,
		Role:           input.Role,
		AllocationDate: input.AllocationDate,
		Bandwidth:      input.Bandwidth,
		Billing:        input.Billing,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.CreateAllocation(ctx, allocation); err != nil {
			return err
		}
		if err := repo.UpdateProject(ctx, project.ID, map[string]any{
			"resources":   project.Resources.Union(empCode),
			"team_member": project.TeamMember + 1,
		}); err != nil {
			return err
		}
		return repo.UpdateEmployee(ctx, employee.ID, map[string]any{
			"allocation_ids": employee.AllocationIDs.Union(allocation.ID),
		})
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "allocate employee")
	}

	result := toAllocationResult(allocation)
	return &result, nil
}

// EditResourceAllocation applies only the supplied fields.
func (s *service) EditResourceAllocation(ctx context.Context, allocationID uuid.UUID, input EditAllocationInput) (*AllocationResult, error) {
	if _, err := s.findAllocation(ctx, allocationID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	putString(updates, "role", input.Role)
	putString(updates, "allocation_date", input.AllocationDate)
	putString(updates, "bandwidth", input.Bandwidth)
	putString(updates, "billing", input.Billing)
	if len(updates) > 0 {
		if err := s.repo.UpdateAllocation(ctx, allocationID, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "edit allocation")
		}
	}

	allocation, err := s.findAllocation(ctx, allocationID)
	if err != nil {
		return nil, err
	}
	result := toAllocationResult(allocation)
	return &result, nil
}

func (s *service) findLiveProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.repo.FindProject(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load project")
	}
	if project.IsDeleted {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
	}
	return project, nil
}

func (s *service) findAllocation(ctx context.Context, id uuid.UUID) (*models.ResourceAllocation, error) {
	allocation, err := s.repo.FindAllocation(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "allocation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load allocation")
	}
	return allocation, nil
}

func putString(updates map[string]any, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}

func toProjectResult(project *models.Project) ProjectResult {
	resources := project.Resources
	if resources == nil {
		resources = dbtypes.StringArray{}
	}
	return ProjectResult{
		ID:           project.ID,
		ProjectName:  project.ProjectName,
		BillingType:  project.BillingType,
		CreationDate: project.CreationDate,
		Status:       project.Status,
		TeamMember:   project.TeamMember,
		Resources:    resources,
	}
}

func toAllocationResult(allocation *models.ResourceAllocation) AllocationResult {
	return AllocationResult{
		ID:             allocation.ID,
		EmpCode:        allocation.EmpCode,
		ProjectID:      allocation.ProjectID,
		Role:           allocation.Role,
		AllocationDate: allocation.AllocationDate,
		Bandwidth:      allocation.Bandwidth,
		Billing:        allocation.Billing,
	}
}
