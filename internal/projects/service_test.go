package projects

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/db/models"
	dbtypes "github.com/staffhubhq/staffhub-backend/pkg/db/types"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
	pkgerrors "github.com/staffhubhq/staffhub-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testTxRunner struct {
	db *gorm.DB
}

func (r testTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func setupProjectsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS projects (
  id TEXT PRIMARY KEY,
  project_name TEXT NOT NULL,
  billing_type TEXT NOT NULL,
  creation_date TEXT NOT NULL,
  status TEXT NOT NULL,
  team_member INTEGER NOT NULL DEFAULT 0,
  resources TEXT NOT NULL DEFAULT '{}',
  is_deleted INTEGER NOT NULL DEFAULT 0
);`,
		`CREATE TABLE IF NOT EXISTS resource_allocations (
  id TEXT PRIMARY KEY,
  emp_code TEXT NOT NULL,
  project_id TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT '',
  allocation_date TEXT NOT NULL DEFAULT '',
  bandwidth TEXT NOT NULL DEFAULT '',
  billing TEXT NOT NULL DEFAULT '',
  is_deleted INTEGER NOT NULL DEFAULT 0
);`,
		`CREATE TABLE IF NOT EXISTS generals (
  id TEXT PRIMARY KEY,
  emp_code TEXT NOT NULL,
  title TEXT NOT NULL,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  status TEXT NOT NULL,
  gender TEXT NOT NULL,
  phone_code TEXT NOT NULL,
  phone_num TEXT NOT NULL,
  primary_email TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS employees (
  id TEXT PRIMARY KEY,
  general_id TEXT NOT NULL,
  professional_id TEXT NOT NULL,
  bank_detail_id TEXT,
  pf_id TEXT,
  loan_ids TEXT NOT NULL DEFAULT '{}',
  previous_job_ids TEXT NOT NULL DEFAULT '{}',
  allocation_ids TEXT NOT NULL DEFAULT '{}',
  is_deleted INTEGER NOT NULL DEFAULT 0
);`,
	}
	for _, statement := range statements {
		require.NoError(t, db.Exec(statement).Error)
	}
	return db
}

func newProjectsService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db := setupProjectsTestDB(t)
	svc, err := NewService(NewRepository(db), testTxRunner{db: db})
	require.NoError(t, err)
	return svc, db
}

func seedEmployeeWithCode(t *testing.T, db *gorm.DB, empCode string) *models.Employee {
	t.Helper()
	general := &models.General{
		ID:           uuid.New(),
		EmpCode:      empCode,
		Title:        "Mr",
		FirstName:    "Asha",
		LastName:     "Iyer",
		Status:       enums.EmployeeStatusActive,
		Gender:       enums.GenderFemale,
		PhoneCode:    "+91",
		PhoneNum:     "9876543210",
		PrimaryEmail: empCode + "@staffhub.dev",
	}
	require.NoError(t, db.Create(general).Error)
	employee := &models.Employee{
		ID:             uuid.New(),
		GeneralID:      general.ID,
		ProfessionalID: uuid.New(),
		AllocationIDs:  dbtypes.UUIDArray{},
	}
	require.NoError(t, db.Create(employee).Error)
	return employee
}

func createProject(t *testing.T, svc Service) *ProjectResult {
	t.Helper()
	project, err := svc.CreateProject(context.Background(), CreateProjectInput{
		ProjectName:  "Billing Revamp",
		BillingType:  "FixedCost",
		CreationDate: "2026-08-01",
		Status:       "Active",
	})
	require.NoError(t, err)
	return project
}

func TestCreateProjectDefaults(t *testing.T) {
	svc, db := newProjectsService(t)

	project := createProject(t, svc)
	assert.Equal(t, 0, project.TeamMember)
	assert.Empty(t, project.Resources)

	var stored models.Project
	require.NoError(t, db.Where("id = ?", project.ID).First(&stored).Error)
	assert.False(t, stored.IsDeleted)

	_, err := svc.CreateProject(context.Background(), CreateProjectInput{
		ProjectName: "Bad",
		BillingType: "Hourly",
	})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestAllocateEmployeeSetUnion(t *testing.T) {
	svc, db := newProjectsService(t)
	ctx := context.Background()
	project := createProject(t, svc)
	employee := seedEmployeeWithCode(t, db, "EN0001")

	first, err := svc.AllocateEmployee(ctx, project.ID, AllocateEmployeeInput{
		EmpCode:   "EN0001",
		Role:      "Backend",
		Bandwidth: "100%",
	})
	require.NoError(t, err)

	// repeated allocation of the same code still counts a head but the
	// resources list stays a set
	second, err := svc.AllocateEmployee(ctx, project.ID, AllocateEmployeeInput{
		EmpCode: "EN0001",
		Role:    "Backend",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	var stored models.Project
	require.NoError(t, db.Where("id = ?", project.ID).First(&stored).Error)
	assert.Equal(t, 2, stored.TeamMember)
	assert.Equal(t, dbtypes.StringArray{"EN0001"}, stored.Resources)

	var reloaded models.Employee
	require.NoError(t, db.Where("id = ?", employee.ID).First(&reloaded).Error)
	require.Len(t, reloaded.AllocationIDs, 2)
	assert.True(t, reloaded.AllocationIDs.Contains(first.ID))
	assert.True(t, reloaded.AllocationIDs.Contains(second.ID))
}

func TestAllocateEmployeeResolutionChain(t *testing.T) {
	svc, db := newProjectsService(t)
	ctx := context.Background()
	project := createProject(t, svc)

	var appErr *pkgerrors.Error

	_, err := svc.AllocateEmployee(ctx, project.ID, AllocateEmployeeInput{EmpCode: "ZZ9999"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())

	// a general record without its employee join breaks the second hop
	orphan := &models.General{
		ID:           uuid.New(),
		EmpCode:      "EN0042",
		Title:        "Ms",
		FirstName:    "Ravi",
		LastName:     "Ravi",
		Status:       enums.EmployeeStatusActive,
		Gender:       enums.GenderMale,
		PhoneCode:    "+91",
		PhoneNum:     "9000000000",
		PrimaryEmail: "ravi@staffhub.dev",
	}
	require.NoError(t, db.Create(orphan).Error)
	_, err = svc.AllocateEmployee(ctx, project.ID, AllocateEmployeeInput{EmpCode: "EN0042"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())

	_, err = svc.AllocateEmployee(ctx, uuid.New(), AllocateEmployeeInput{EmpCode: "EN0042"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestGetProjectDropsUnresolvedResources(t *testing.T) {
	svc, db := newProjectsService(t)
	ctx := context.Background()
	project := createProject(t, svc)
	seedEmployeeWithCode(t, db, "EN0001")
	seedEmployeeWithCode(t, db, "EN0002")

	kept, err := svc.AllocateEmployee(ctx, project.ID, AllocateEmployeeInput{EmpCode: "EN0001"})
	require.NoError(t, err)
	dropped, err := svc.AllocateEmployee(ctx, project.ID, AllocateEmployeeInput{EmpCode: "EN0002"})
	require.NoError(t, err)

	// soft-delete one allocation directly; its code stays in resources but
	// no longer resolves
	require.NoError(t, db.Model(&models.ResourceAllocation{}).
		Where("id = ?", dropped.ID).
		Update("is_deleted", true).Error)

	detail, err := svc.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Project.Resources, 2)
	require.Len(t, detail.Allocations, 1)
	assert.Equal(t, kept.ID, detail.Allocations[0].ID)

	_, err = svc.GetProject(ctx, uuid.New())
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestDeleteProjectCascadesToAllocations(t *testing.T) {
	svc, db := newProjectsService(t)
	ctx := context.Background()
	project := createProject(t, svc)
	seedEmployeeWithCode(t, db, "EN0001")
	seedEmployeeWithCode(t, db, "EN0002")

	_, err := svc.AllocateEmployee(ctx, project.ID, AllocateEmployeeInput{EmpCode: "EN0001"})
	require.NoError(t, err)
	_, err = svc.AllocateEmployee(ctx, project.ID, AllocateEmployeeInput{EmpCode: "EN0002"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProject(ctx, project.ID))

	var stored models.Project
	require.NoError(t, db.Where("id = ?", project.ID).First(&stored).Error)
	assert.True(t, stored.IsDeleted)

	var remaining int64
	require.NoError(t, db.Model(&models.ResourceAllocation{}).
		Where("project_id = ? AND is_deleted = ?", project.ID, false).
		Count(&remaining).Error)
	assert.Zero(t, remaining)

	_, err = svc.GetProject(ctx, project.ID)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())

	err = svc.DeleteProject(ctx, project.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestDeleteProjectWithoutResources(t *testing.T) {
	svc, db := newProjectsService(t)
	ctx := context.Background()
	project := createProject(t, svc)

	require.NoError(t, svc.DeleteProject(ctx, project.ID))

	var stored models.Project
	require.NoError(t, db.Where("id = ?", project.ID).First(&stored).Error)
	assert.True(t, stored.IsDeleted)
}

func TestListProjectsExcludesDeleted(t *testing.T) {
	svc, _ := newProjectsService(t)
	ctx := context.Background()

	kept := createProject(t, svc)
	deleted := createProject(t, svc)
	require.NoError(t, svc.DeleteProject(ctx, deleted.ID))

	projects, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, kept.ID, projects[0].ID)
}

func TestEditProjectPartialMerge(t *testing.T) {
	svc, _ := newProjectsService(t)
	ctx := context.Background()
	project := createProject(t, svc)

	name := "Billing Revamp v2"
	status := "Inactive"
	edited, err := svc.EditProject(ctx, project.ID, EditProjectInput{
		ProjectName: &name,
		Status:      &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "Billing Revamp v2", edited.ProjectName)
	assert.Equal(t, enums.ProjectStatusInactive, edited.Status)
	assert.Equal(t, enums.BillingTypeFixedCost, edited.BillingType)

	bad := "Hourly"
	_, err = svc.EditProject(ctx, project.ID, EditProjectInput{BillingType: &bad})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	_, err = svc.EditProject(ctx, uuid.New(), EditProjectInput{ProjectName: &name})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestEditResourceAllocationPartialMerge(t *testing.T) {
	svc, db := newProjectsService(t)
	ctx := context.Background()
	project := createProject(t, svc)
	seedEmployeeWithCode(t, db, "EN0001")

	allocation, err := svc.AllocateEmployee(ctx, project.ID, AllocateEmployeeInput{
		EmpCode: "EN0001",
		Role:    "Backend",
	})
	require.NoError(t, err)

	bandwidth := "50%"
	edited, err := svc.EditResourceAllocation(ctx, allocation.ID, EditAllocationInput{
		Bandwidth: &bandwidth,
	})
	require.NoError(t, err)
	assert.Equal(t, "50%", edited.Bandwidth)
	assert.Equal(t, "Backend", edited.Role)

	_, err = svc.EditResourceAllocation(ctx, uuid.New(), EditAllocationInput{Bandwidth: &bandwidth})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}
