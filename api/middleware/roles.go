package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/api/responses"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
	pkgerrors "github.com/staffhubhq/staffhub-backend/pkg/errors"
	"github.com/staffhubhq/staffhub-backend/pkg/logger"
)

// RoleSource resolves the persisted role for an authenticated user.
type RoleSource interface {
	RoleFor(ctx context.Context, userID uuid.UUID) (enums.UserRole, error)
}

// RequireRole checks the caller's stored role, not the token claim, so a
// role change takes effect without waiting for the token to expire. Every
// guarded call costs one registry lookup.
func RequireRole(source RoleSource, role enums.UserRole, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := uuid.Parse(UserIDFromContext(r.Context()))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			stored, err := source.RoleFor(r.Context(), userID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			if stored != role {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
