package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/staffhubhq/staffhub-backend/api/responses"
	"github.com/staffhubhq/staffhub-backend/api/validators"
	"github.com/staffhubhq/staffhub-backend/internal/employees"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
	pkgerrors "github.com/staffhubhq/staffhub-backend/pkg/errors"
	"github.com/staffhubhq/staffhub-backend/pkg/logger"
)

type createEmployeeRequest struct {
	Title        string `json:"title"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender"`
	PhoneNum     string `json:"phoneNum"`
	PrimaryEmail string `json:"primaryEmail"`
	Status       string `json:"status"`

	JoiningDate           string  `json:"joiningDate"`
	Department            string  `json:"department"`
	Designation           string  `json:"designation"`
	Location              string  `json:"location"`
	ReportingManagerName  string  `json:"reportingManagerName"`
	ReportingManagerEmail *string `json:"reportingManagerEmail"`
	CTCAnnual             string  `json:"ctcAnnual"`
	PayslipComponent      string  `json:"payslipComponent"`
	HolidayGroup          string  `json:"holidayGroup"`
	WorkWeek              string  `json:"workWeek"`
}

type updateGeneralRequest struct {
	Title        *string `json:"title"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Gender       *string `json:"gender"`
	PhoneNum     *string `json:"phoneNum"`
	PrimaryEmail *string `json:"primaryEmail"`
}

type updateProfessionalRequest struct {
	JoiningDate           *string `json:"joiningDate"`
	Department            *string `json:"department"`
	Designation           *string `json:"designation"`
	Location              *string `json:"location"`
	ReportingManagerName  *string `json:"reportingManagerName"`
	ReportingManagerEmail *string `json:"reportingManagerEmail"`
	CTCAnnual             *string `json:"ctcAnnual"`
	PayslipComponent      *string `json:"payslipComponent"`
	HolidayGroup          *string `json:"holidayGroup"`
	WorkWeek              *string `json:"workWeek"`
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type addBankDetailsRequest struct {
	BankName    string `json:"bankName"`
	AccountName string `json:"accountName"`
	BranchName  string `json:"branchName"`
	AccountType string `json:"accountType"`
	AccountNum  string `json:"accountNum"`
	IFSCCode    string `json:"ifscCode"`
}

type updateBankDetailsRequest struct {
	BankName    *string `json:"bankName"`
	AccountName *string `json:"accountName"`
	BranchName  *string `json:"branchName"`
	AccountType *string `json:"accountType"`
	AccountNum  *string `json:"accountNum"`
	IFSCCode    *string `json:"ifscCode"`
}

type previousJobRequest struct {
	CompanyName string  `json:"companyName"`
	Designation string  `json:"designation"`
	FromDate    string  `json:"fromDate"`
	ToDate      string  `json:"toDate"`
	Location    *string `json:"location"`
}

type editPreviousJobRequest struct {
	CompanyName *string `json:"companyName"`
	Designation *string `json:"designation"`
	FromDate    *string `json:"fromDate"`
	ToDate      *string `json:"toDate"`
	Location    *string `json:"location"`
}

// CreateEmployee creates the three-record aggregate; field-level validation
// lives in the service so the missing-field details reach the response.
func CreateEmployee(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "employees service unavailable"))
			return
		}

		var body createEmployeeRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateEmployee(r.Context(), employees.CreateEmployeeInput{
			Title:                 body.Title,
			FirstName:             body.FirstName,
			LastName:              body.LastName,
			Gender:                enums.Gender(body.Gender),
			PhoneNum:              body.PhoneNum,
			PrimaryEmail:          body.PrimaryEmail,
			Status:                enums.EmployeeStatus(body.Status),
			JoiningDate:           body.JoiningDate,
			Department:            body.Department,
			Designation:           body.Designation,
			Location:              body.Location,
			ReportingManagerName:  body.ReportingManagerName,
			ReportingManagerEmail: body.ReportingManagerEmail,
			CTCAnnual:             body.CTCAnnual,
			PayslipComponent:      body.PayslipComponent,
			HolidayGroup:          body.HolidayGroup,
			WorkWeek:              body.WorkWeek,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

func ListEmployees(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "employees service unavailable"))
			return
		}

		list, err := svc.ListEmployees(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

func GetEmployee(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "employees service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		refs, err := svc.GetEmployee(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, refs)
	}
}

func DeleteEmployee(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "employees service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithEmployeeID(ctx, id.String())
		}

		if err := svc.SoftDeleteEmployee(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "employee deleted"})
	}
}

func ChangeEmployeeStatus(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "employees service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body changeStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.ChangeStatus(r.Context(), id, enums.EmployeeStatus(body.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, row)
	}
}

// UpdateGeneral merges the supplied subset into the general record; the path
// id addresses the sub-record itself, not the employee join.
func UpdateGeneral(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "employees service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateGeneralRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var gender *enums.Gender
		if body.Gender != nil {
			parsed := enums.Gender(*body.Gender)
			gender = &parsed
		}

		err = svc.UpdateGeneral(r.Context(), id, employees.UpdateGeneralInput{
			Title:        body.Title,
			FirstName:    body.FirstName,
			LastName:     body.LastName,
			Gender:       gender,
			PhoneNum:     body.PhoneNum,
			PrimaryEmail: body.PrimaryEmail,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "general details updated"})
	}
}

func UpdateProfessional(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "employees service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateProfessionalRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		err = svc.UpdateProfessional(r.Context(), id, employees.UpdateProfessionalInput{
			JoiningDate:           body.JoiningDate,
			Department:            body.Department,
			Designation:           body.Designation,
			Location:              body.Location,
			ReportingManagerName:  body.ReportingManagerName,
			ReportingManagerEmail: body.ReportingManagerEmail,
			CTCAnnual:             body.CTCAnnual,
			PayslipComponent:      body.PayslipComponent,
			HolidayGroup:          body.HolidayGroup,
			WorkWeek:              body.WorkWeek,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "professional details updated"})
	}
}

func AddBankDetails(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "employees service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body addBankDetailsRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.AddBankDetails(r.Context(), id, employees.AddBankDetailsInput{
			BankName:    body.BankName,
			AccountName: body.AccountName,
			BranchName:  body.BranchName,
			AccountType: enums.AccountType(body.AccountType),
			AccountNum:  body.AccountNum,
			IFSCCode:    body.IFSCCode,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status := http.StatusCreated
		if result.Existing {
			status = http.StatusOK
		}
		responses.WriteSuccessStatus(w, status, result)
	}
}

func UpdateBankDetails(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "employees service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateBankDetailsRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var accountType *enums.AccountType
		if body.AccountType != nil {
			parsed := enums.AccountType(*body.AccountType)
			accountType = &parsed
		}

		err = svc.UpdateBankDetails(r.Context(), id, employees.UpdateBankDetailsInput{
			BankName:    body.BankName,
			AccountName: body.AccountName,
			BranchName:  body.BranchName,
			AccountType: accountType,
			AccountNum:  body.AccountNum,
			IFSCCode:    body.IFSCCode,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "bank details updated"})
	}
}

// GetCompleteProfile resolves an employee code to every linked record.
func GetCompleteProfile(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "employees service unavailable"))
			return
		}

		code := strings.TrimSpace(chi.URLParam(r, "code"))
		if code == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "employee code is required"))
			return
		}

		profile, err := svc.GetCompleteProfile(r.Context(), code)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

func AddPreviousJob(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "employees service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body previousJobRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.AddPreviousJob(r.Context(), id, employees.AddPreviousJobInput{
			CompanyName: body.CompanyName,
			Designation: body.Designation,
			FromDate:    body.FromDate,
			ToDate:      body.ToDate,
			Location:    body.Location,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

func EditPreviousJob(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "employees service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body editPreviousJobRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		err = svc.EditPreviousJob(r.Context(), id, employees.EditPreviousJobInput{
			CompanyName: body.CompanyName,
			Designation: body.Designation,
			FromDate:    body.FromDate,
			ToDate:      body.ToDate,
			Location:    body.Location,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "previous job updated"})
	}
}
