package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgauth "github.com/staffhubhq/staffhub-backend/pkg/auth"
	"github.com/staffhubhq/staffhub-backend/pkg/auth/session"
	"github.com/staffhubhq/staffhub-backend/pkg/config"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
	"github.com/staffhubhq/staffhub-backend/pkg/logger"

	"github.com/staffhubhq/staffhub-backend/internal/departments"
	"github.com/staffhubhq/staffhub-backend/internal/employees"
	"github.com/staffhubhq/staffhub-backend/internal/loans"
	"github.com/staffhubhq/staffhub-backend/internal/projects"
	"github.com/staffhubhq/staffhub-backend/internal/users"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

type stubSessionChecker struct {
	ok  bool
	err error
}

func (s stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return s.ok, s.err
}

type stubUsers struct {
	role enums.UserRole
}

func (s stubUsers) SignupSuperAdmin(ctx context.Context, input users.SignupSuperAdminInput) (*users.UserResult, error) {
	return &users.UserResult{}, nil
}

func (s stubUsers) Login(ctx context.Context, input users.LoginInput) (*users.AuthResult, error) {
	return &users.AuthResult{}, nil
}

func (s stubUsers) Refresh(ctx context.Context, input users.RefreshInput) (*users.AuthResult, error) {
	return &users.AuthResult{}, nil
}

func (s stubUsers) Logout(ctx context.Context, accessID string) error { return nil }

func (s stubUsers) RoleFor(ctx context.Context, userID uuid.UUID) (enums.UserRole, error) {
	return s.role, nil
}

type stubDepartments struct{}

func (stubDepartments) CreateDepartment(ctx context.Context, input departments.CreateDepartmentInput) (*departments.DepartmentResult, error) {
	return &departments.DepartmentResult{}, nil
}

func (stubDepartments) ListDepartments(ctx context.Context) ([]departments.DepartmentResult, error) {
	return []departments.DepartmentResult{}, nil
}

type stubEmployees struct{}

func (stubEmployees) CreateEmployee(ctx context.Context, input employees.CreateEmployeeInput) (*employees.CreateEmployeeResult, error) {
	return &employees.CreateEmployeeResult{}, nil
}

func (stubEmployees) ListEmployees(ctx context.Context) ([]employees.EmployeeListItem, error) {
	return []employees.EmployeeListItem{}, nil
}

func (stubEmployees) GetEmployee(ctx context.Context, id uuid.UUID) (*employees.EmployeeRefs, error) {
	return &employees.EmployeeRefs{}, nil
}

func (stubEmployees) SoftDeleteEmployee(ctx context.Context, id uuid.UUID) error { return nil }

func (stubEmployees) UpdateGeneral(ctx context.Context, generalID uuid.UUID, input employees.UpdateGeneralInput) error {
	return nil
}

func (stubEmployees) UpdateProfessional(ctx context.Context, professionalID uuid.UUID, input employees.UpdateProfessionalInput) error {
	return nil
}

func (stubEmployees) ChangeStatus(ctx context.Context, employeeID uuid.UUID, status enums.EmployeeStatus) (*employees.EmployeeListItem, error) {
	return &employees.EmployeeListItem{}, nil
}

func (stubEmployees) AddBankDetails(ctx context.Context, employeeID uuid.UUID, input employees.AddBankDetailsInput) (*employees.AddBankDetailsResult, error) {
	return &employees.AddBankDetailsResult{}, nil
}

func (stubEmployees) UpdateBankDetails(ctx context.Context, bankDetailID uuid.UUID, input employees.UpdateBankDetailsInput) error {
	return nil
}

func (stubEmployees) GetCompleteProfile(ctx context.Context, empCode string) (*employees.CompleteProfile, error) {
	return &employees.CompleteProfile{}, nil
}

func (stubEmployees) AddPreviousJob(ctx context.Context, employeeID uuid.UUID, input employees.AddPreviousJobInput) (*employees.PreviousJobResult, error) {
	return &employees.PreviousJobResult{}, nil
}

func (stubEmployees) EditPreviousJob(ctx context.Context, jobID uuid.UUID, input employees.EditPreviousJobInput) error {
	return nil
}

type stubLoans struct{}

func (stubLoans) CreateLoanRequest(ctx context.Context, employeeID uuid.UUID, input loans.CreateLoanInput) (*loans.LoanResult, error) {
	return &loans.LoanResult{}, nil
}

func (stubLoans) ApproveLoan(ctx context.Context, loanID uuid.UUID, input loans.ApproveLoanInput) (*loans.LoanResult, error) {
	return &loans.LoanResult{}, nil
}

func (stubLoans) CancelLoan(ctx context.Context, loanID uuid.UUID, cancelReason string) (*loans.LoanResult, error) {
	return &loans.LoanResult{}, nil
}

func (stubLoans) EditLoan(ctx context.Context, loanID uuid.UUID, input loans.EditLoanInput) (*loans.LoanResult, error) {
	return &loans.LoanResult{}, nil
}

type stubProjects struct{}

func (stubProjects) CreateProject(ctx context.Context, input projects.CreateProjectInput) (*projects.ProjectResult, error) {
	return &projects.ProjectResult{}, nil
}

func (stubProjects) GetProject(ctx context.Context, id uuid.UUID) (*projects.ProjectDetail, error) {
	return &projects.ProjectDetail{}, nil
}

func (stubProjects) ListProjects(ctx context.Context) ([]projects.ProjectResult, error) {
	return []projects.ProjectResult{}, nil
}

func (stubProjects) EditProject(ctx context.Context, id uuid.UUID, input projects.EditProjectInput) (*projects.ProjectResult, error) {
	return &projects.ProjectResult{}, nil
}

func (stubProjects) DeleteProject(ctx context.Context, id uuid.UUID) error { return nil }

func (stubProjects) AllocateEmployee(ctx context.Context, projectID uuid.UUID, input projects.AllocateEmployeeInput) (*projects.AllocationResult, error) {
	return &projects.AllocationResult{}, nil
}

func (stubProjects) EditResourceAllocation(ctx context.Context, allocationID uuid.UUID, input projects.EditAllocationInput) (*projects.AllocationResult, error) {
	return &projects.AllocationResult{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "8080"},
		JWT: config.JWTConfig{
			Secret:                 "secret",
			Issuer:                 "issuer",
			ExpirationMinutes:      60,
			RefreshTokenTTLMinutes: 120,
		},
	}
}

func newTestRouter(t *testing.T, role enums.UserRole) http.Handler {
	t.Helper()

	logg := logger.New(logger.Options{
		ServiceName: "router-test",
		Level:       logger.ParseLevel("error"),
		Output:      io.Discard,
	})

	return NewRouter(Deps{
		Config:      testConfig(),
		Logger:      logg,
		DB:          stubPinger{},
		Redis:       stubPinger{},
		Sessions:    stubSessionChecker{ok: true},
		Users:       stubUsers{role: role},
		Departments: stubDepartments{},
		Employees:   stubEmployees{},
		Loans:       stubLoans{},
		Projects:    stubProjects{},
	})
}

func buildToken(t *testing.T, role enums.UserRole) string {
	t.Helper()

	token, err := pkgauth.MintAccessToken(testConfig().JWT, time.Now(), pkgauth.AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "admin@staffhub.dev",
		Role:   role,
		JTI:    session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(t, enums.UserRoleSuperAdmin)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("X-StaffHub-Env"); got != "test" {
		t.Fatalf("expected env header %q, got %q", "test", got)
	}
}

func TestHealthReady(t *testing.T) {
	router := newTestRouter(t, enums.UserRoleSuperAdmin)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestEmployeeRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t, enums.UserRoleHRAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/employees/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", resp.Code)
	}
}

func TestEmployeeRoutesAcceptValidToken(t *testing.T) {
	router := newTestRouter(t, enums.UserRoleHRAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/employees/", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, enums.UserRoleHRAdmin))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestDepartmentCreateRequiresSuperAdminRole(t *testing.T) {
	router := newTestRouter(t, enums.UserRoleEmployee)

	body := strings.NewReader(`{"name":"Engineering","code":"ENG"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/departments/", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+buildToken(t, enums.UserRoleEmployee))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for employee role, got %d", resp.Code)
	}
}

func TestDepartmentCreateAllowsSuperAdmin(t *testing.T) {
	router := newTestRouter(t, enums.UserRoleSuperAdmin)

	body := strings.NewReader(`{"name":"Engineering","code":"ENG"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/departments/", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+buildToken(t, enums.UserRoleSuperAdmin))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestDepartmentListOnlyNeedsAuthentication(t *testing.T) {
	router := newTestRouter(t, enums.UserRoleEmployee)

	req := httptest.NewRequest(http.MethodGet, "/api/departments/", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, enums.UserRoleEmployee))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

// The project surface has no auth middleware. Clients integrate against it
// without tokens, so these routes must answer anonymous requests.
func TestProjectRoutesAnswerWithoutToken(t *testing.T) {
	router := newTestRouter(t, enums.UserRoleEmployee)

	req := httptest.NewRequest(http.MethodGet, "/api/project/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 without a token, got %d", resp.Code)
	}

	body := strings.NewReader(`{"projectName":"Billing Revamp","billingType":"FixedCost"}`)
	req = httptest.NewRequest(http.MethodPost, "/api/project/", body)
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 without a token, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestLoginRouteIsOpen(t *testing.T) {
	router := newTestRouter(t, enums.UserRoleSuperAdmin)

	body := strings.NewReader(`{"email":"admin@staffhub.dev","password":"sup3r-secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestLogoutRequiresToken(t *testing.T) {
	router := newTestRouter(t, enums.UserRoleSuperAdmin)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", resp.Code)
	}
}

func TestRevokedSessionIsRejected(t *testing.T) {
	logg := logger.New(logger.Options{
		ServiceName: "router-test",
		Level:       logger.ParseLevel("error"),
		Output:      io.Discard,
	})

	router := NewRouter(Deps{
		Config:      testConfig(),
		Logger:      logg,
		DB:          stubPinger{},
		Redis:       stubPinger{},
		Sessions:    stubSessionChecker{ok: false},
		Users:       stubUsers{role: enums.UserRoleSuperAdmin},
		Departments: stubDepartments{},
		Employees:   stubEmployees{},
		Loans:       stubLoans{},
		Projects:    stubProjects{},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/employees/", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, enums.UserRoleSuperAdmin))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a revoked session, got %d", resp.Code)
	}
}
