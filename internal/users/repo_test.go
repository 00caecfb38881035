package users

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/db/models"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	users := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  display_name TEXT NOT NULL,
  role TEXT NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(users).Error)
	return db
}

func TestRepositoryCreateAndFind(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "admin@staffhub.dev",
		PasswordHash: "hash",
		DisplayName:  "Admin",
		Role:         enums.UserRoleSuperAdmin,
	}
	_, err := repo.Create(ctx, user)
	require.NoError(t, err)

	byEmail, err := repo.FindByEmail(ctx, "admin@staffhub.dev")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.UserRoleSuperAdmin, byID.Role)

	_, err = repo.FindByEmail(ctx, "nobody@staffhub.dev")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryCountByRole(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	count, err := repo.CountByRole(ctx, enums.UserRoleSuperAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	_, err = repo.Create(ctx, &models.User{
		ID:           uuid.New(),
		Email:        "admin@staffhub.dev",
		PasswordHash: "hash",
		DisplayName:  "Admin",
		Role:         enums.UserRoleSuperAdmin,
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.User{
		ID:           uuid.New(),
		Email:        "hr@staffhub.dev",
		PasswordHash: "hash",
		DisplayName:  "HR",
		Role:         enums.UserRoleHRAdmin,
	})
	require.NoError(t, err)

	count, err = repo.CountByRole(ctx, enums.UserRoleSuperAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
