package controllers

import (
	"net/http"

	"github.com/staffhubhq/staffhub-backend/api/middleware"
	"github.com/staffhubhq/staffhub-backend/api/responses"
	"github.com/staffhubhq/staffhub-backend/api/validators"
	"github.com/staffhubhq/staffhub-backend/internal/departments"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
	pkgerrors "github.com/staffhubhq/staffhub-backend/pkg/errors"
	"github.com/staffhubhq/staffhub-backend/pkg/logger"
)

type createDepartmentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Code        string  `json:"code" validate:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

// CreateDepartment stamps the acting user onto the new registry entry.
func CreateDepartment(svc departments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "departments service unavailable"))
			return
		}

		var body createDepartmentRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateDepartment(r.Context(), departments.CreateDepartmentInput{
			Name:        body.Name,
			Code:        body.Code,
			Description: body.Description,
			Status:      enums.DepartmentStatus(body.Status),
			CreatedBy:   middleware.UserIDFromContext(r.Context()),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

func ListDepartments(svc departments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "departments service unavailable"))
			return
		}

		list, err := svc.ListDepartments(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}
