package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/staffhubhq/staffhub-backend/api/controllers"
	"github.com/staffhubhq/staffhub-backend/api/middleware"
	"github.com/staffhubhq/staffhub-backend/internal/departments"
	"github.com/staffhubhq/staffhub-backend/internal/employees"
	"github.com/staffhubhq/staffhub-backend/internal/loans"
	"github.com/staffhubhq/staffhub-backend/internal/projects"
	"github.com/staffhubhq/staffhub-backend/internal/users"
	"github.com/staffhubhq/staffhub-backend/pkg/auth/session"
	"github.com/staffhubhq/staffhub-backend/pkg/config"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
	"github.com/staffhubhq/staffhub-backend/pkg/logger"
	"github.com/staffhubhq/staffhub-backend/pkg/metrics"
)

// Pinger is the readiness surface the router needs from each backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       Pinger
	Redis    Pinger
	Sessions session.AccessSessionChecker
	Registry *prometheus.Registry
	Metrics  *metrics.HTTPMetrics

	Users       users.Service
	Departments departments.Service
	Employees   employees.Service
	Loans       loans.Service
	Projects    projects.Service
}

// NewRouter assembles the HTTP surface. The project routes sit outside the
// auth group on purpose: existing clients call them without tokens.
func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(d.Metrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, d.DB, d.Redis, logg))
	})

	if d.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup/super-admin", controllers.SignupSuperAdmin(d.Users, logg))
		r.Post("/login", controllers.Login(d.Users, logg))
		r.Post("/refresh", controllers.Refresh(d.Users, logg))
		r.With(middleware.Auth(cfg.JWT, d.Sessions, logg)).Post("/logout", controllers.Logout(d.Users, logg))
	})

	r.Route("/api/departments", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, d.Sessions, logg))
		r.With(middleware.RequireRole(d.Users, enums.UserRoleSuperAdmin, logg)).
			Post("/", controllers.CreateDepartment(d.Departments, logg))
		r.Get("/", controllers.ListDepartments(d.Departments, logg))
	})

	r.Route("/api/employees", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, d.Sessions, logg))

		r.Post("/", controllers.CreateEmployee(d.Employees, logg))
		r.Get("/", controllers.ListEmployees(d.Employees, logg))
		r.Get("/{id}", controllers.GetEmployee(d.Employees, logg))
		r.Delete("/{id}", controllers.DeleteEmployee(d.Employees, logg))

		r.Patch("/status/{id}", controllers.ChangeEmployeeStatus(d.Employees, logg))
		r.Patch("/general/{id}", controllers.UpdateGeneral(d.Employees, logg))
		r.Patch("/professional/{id}", controllers.UpdateProfessional(d.Employees, logg))

		r.Post("/bank/{id}", controllers.AddBankDetails(d.Employees, logg))
		r.Patch("/bank/{id}", controllers.UpdateBankDetails(d.Employees, logg))

		r.Get("/all/{code}", controllers.GetCompleteProfile(d.Employees, logg))

		r.Post("/loan/{id}", controllers.CreateLoanRequest(d.Loans, logg))
		r.Post("/approvedLoan/{id}", controllers.ApproveLoan(d.Loans, logg))
		r.Post("/cancelLoan/{id}", controllers.CancelLoan(d.Loans, logg))
		r.Patch("/loan/{id}", controllers.EditLoan(d.Loans, logg))

		r.Post("/previousJob/{id}", controllers.AddPreviousJob(d.Employees, logg))
		r.Patch("/previousJob/{id}", controllers.EditPreviousJob(d.Employees, logg))
	})

	r.Route("/api/project", func(r chi.Router) {
		r.Post("/", controllers.CreateProject(d.Projects, logg))
		r.Get("/", controllers.ListProjects(d.Projects, logg))
		r.Get("/{id}", controllers.GetProject(d.Projects, logg))
		r.Post("/{id}", controllers.AllocateEmployee(d.Projects, logg))
		r.Patch("/resources/{id}", controllers.EditResourceAllocation(d.Projects, logg))
		r.Patch("/{id}", controllers.EditProject(d.Projects, logg))
		r.Delete("/{id}", controllers.DeleteProject(d.Projects, logg))
	})

	return r
}
