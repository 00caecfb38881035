package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
	pkgerrors "github.com/staffhubhq/staffhub-backend/pkg/errors"
)

type stubRoleSource struct {
	role enums.UserRole
	err  error
}

func (s stubRoleSource) RoleFor(ctx context.Context, userID uuid.UUID) (enums.UserRole, error) {
	return s.role, s.err
}

func TestRequireRoleChecksStoredRole(t *testing.T) {
	handler := RequireRole(stubRoleSource{role: enums.UserRoleSuperAdmin}, enums.UserRoleSuperAdmin, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(WithUserID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestRequireRoleForbidsMismatch(t *testing.T) {
	handler := RequireRole(stubRoleSource{role: enums.UserRoleEmployee}, enums.UserRoleSuperAdmin, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(WithUserID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

func TestRequireRoleSurfacesUnknownUser(t *testing.T) {
	handler := RequireRole(stubRoleSource{err: pkgerrors.New(pkgerrors.CodeNotFound, "user not found")}, enums.UserRoleSuperAdmin, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(WithUserID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestRequireRoleRejectsUnauthenticated(t *testing.T) {
	handler := RequireRole(stubRoleSource{role: enums.UserRoleSuperAdmin}, enums.UserRoleSuperAdmin, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
