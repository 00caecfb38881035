package users

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/auth"
	"github.com/staffhubhq/staffhub-backend/pkg/config"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
	pkgerrors "github.com/staffhubhq/staffhub-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	generated map[string]string
	revoked   []string
	counter   int
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{generated: map[string]string{}}
}

func (f *fakeSessions) Generate(ctx context.Context, accessID string) (string, error) {
	f.counter++
	token := fmt.Sprintf("refresh-%d", f.counter)
	f.generated[accessID] = token
	return token, nil
}

func (f *fakeSessions) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	stored, ok := f.generated[oldAccessID]
	if !ok || stored != provided {
		return "", "", fmt.Errorf("rotate rejected")
	}
	delete(f.generated, oldAccessID)
	f.counter++
	newID := fmt.Sprintf("access-%d", f.counter)
	token := fmt.Sprintf("refresh-%d", f.counter)
	f.generated[newID] = token
	return newID, token, nil
}

func (f *fakeSessions) Revoke(ctx context.Context, accessID string) error {
	f.revoked = append(f.revoked, accessID)
	delete(f.generated, accessID)
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "staffhub",
		ExpirationMinutes: 30,
	}
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func newTestService(t *testing.T) (Service, *fakeSessions) {
	t.Helper()
	db := setupUsersTestDB(t)
	sessions := newFakeSessions()
	svc, err := NewService(NewRepository(db), sessions, testJWTConfig(), testPasswordConfig())
	require.NoError(t, err)
	return svc, sessions
}

func TestSignupSuperAdminBootstrapsOnce(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	result, err := svc.SignupSuperAdmin(ctx, SignupSuperAdminInput{
		Email:       "Admin@StaffHub.dev",
		Password:    "s3cret-password",
		DisplayName: "Root",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@staffhub.dev", result.Email)
	assert.Equal(t, enums.UserRoleSuperAdmin, result.Role)

	_, err = svc.SignupSuperAdmin(ctx, SignupSuperAdminInput{
		Email:    "second@staffhub.dev",
		Password: "another-password",
	})
	require.Error(t, err)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeConflict, appErr.Code())
}

func TestSignupSuperAdminValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SignupSuperAdmin(context.Background(), SignupSuperAdminInput{Email: "x@y.z"})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestLoginIssuesTokenAndRefresh(t *testing.T) {
	svc, sessions := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignupSuperAdmin(ctx, SignupSuperAdminInput{
		Email:    "admin@staffhub.dev",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, LoginInput{Email: "admin@staffhub.dev", Password: "s3cret-password"})
	require.NoError(t, err)
	assert.Equal(t, enums.UserRoleSuperAdmin, result.Role)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.RefreshToken)

	claims, err := auth.ParseAccessToken(testJWTConfig(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.UID, claims.UserID)
	assert.Contains(t, sessions.generated, claims.ID)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignupSuperAdmin(ctx, SignupSuperAdminInput{
		Email:    "admin@staffhub.dev",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginInput{Email: "admin@staffhub.dev", Password: "wrong"})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeUnauthorized, appErr.Code())

	_, err = svc.Login(ctx, LoginInput{Email: "ghost@staffhub.dev", Password: "wrong"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeUnauthorized, appErr.Code())
}

func TestRefreshRotatesSession(t *testing.T) {
	svc, sessions := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignupSuperAdmin(ctx, SignupSuperAdminInput{
		Email:    "admin@staffhub.dev",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, LoginInput{Email: "admin@staffhub.dev", Password: "s3cret-password"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, RefreshInput{
		AccessToken:  login.Token,
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.Equal(t, login.UID, refreshed.UID)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// old refresh token is spent
	_, err = svc.Refresh(ctx, RefreshInput{
		AccessToken:  login.Token,
		RefreshToken: login.RefreshToken,
	})
	require.Error(t, err)

	claims, err := auth.ParseAccessToken(testJWTConfig(), refreshed.Token)
	require.NoError(t, err)
	assert.Contains(t, sessions.generated, claims.ID)
}

func TestRoleForMissingUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RoleFor(context.Background(), uuid.New())
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}
