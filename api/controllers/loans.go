package controllers

import (
	"net/http"

	"github.com/staffhubhq/staffhub-backend/api/responses"
	"github.com/staffhubhq/staffhub-backend/api/validators"
	"github.com/staffhubhq/staffhub-backend/internal/loans"
	pkgerrors "github.com/staffhubhq/staffhub-backend/pkg/errors"
	"github.com/staffhubhq/staffhub-backend/pkg/logger"
)

// freeTextMaxLen bounds caller-supplied notes before they reach the ledger.
const freeTextMaxLen = 2000

type createLoanRequest struct {
	EmpName   string `json:"empName"`
	AmountReq string `json:"amountReq"`
	StaffNote string `json:"staffNote"`
	Note      string `json:"note"`
}

type approveLoanRequest struct {
	AmountApp   string `json:"amountApp"`
	Installment string `json:"installment"`
	Date        string `json:"date"`
	StaffNote   string `json:"staffNote"`
	ApprovedBy  string `json:"approvedBy"`
}

type cancelLoanRequest struct {
	CancelReason string `json:"cancelReason"`
}

type editLoanRequest struct {
	AmountApp   *string `json:"amountApp"`
	StaffNote   *string `json:"staffNote"`
	Installment *string `json:"installment"`
	Date        *string `json:"date"`
}

// CreateLoanRequest files a loan for the employee in the path.
func CreateLoanRequest(svc loans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "loans service unavailable"))
			return
		}

		employeeID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body createLoanRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateLoanRequest(r.Context(), employeeID, loans.CreateLoanInput{
			EmpName:   body.EmpName,
			AmountReq: body.AmountReq,
			StaffNote: validators.SanitizeString(body.StaffNote, freeTextMaxLen),
			Note:      validators.SanitizeString(body.Note, freeTextMaxLen),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

func ApproveLoan(svc loans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "loans service unavailable"))
			return
		}

		loanID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body approveLoanRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ApproveLoan(r.Context(), loanID, loans.ApproveLoanInput{
			AmountApp:   body.AmountApp,
			Installment: body.Installment,
			Date:        body.Date,
			StaffNote:   validators.SanitizeString(body.StaffNote, freeTextMaxLen),
			ApprovedBy:  body.ApprovedBy,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// CancelLoan declines from any state; repeated cancels just grow the history.
func CancelLoan(svc loans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "loans service unavailable"))
			return
		}

		loanID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body cancelLoanRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CancelLoan(r.Context(), loanID, validators.SanitizeString(body.CancelReason, freeTextMaxLen))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func EditLoan(svc loans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "loans service unavailable"))
			return
		}

		loanID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body editLoanRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.EditLoan(r.Context(), loanID, loans.EditLoanInput{
			AmountApp:   body.AmountApp,
			StaffNote:   body.StaffNote,
			Installment: body.Installment,
			Date:        body.Date,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
