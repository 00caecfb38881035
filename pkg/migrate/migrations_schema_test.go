package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/staffhubhq/staffhub-backend/pkg/migrate"
)

func TestInitSchemaMigrationCoversAllTables(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_init_schema.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no init schema migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS users",
		"CREATE TABLE IF NOT EXISTS departments",
		"CREATE TABLE IF NOT EXISTS generals",
		"CREATE TABLE IF NOT EXISTS professionals",
		"CREATE TABLE IF NOT EXISTS bank_details",
		"CREATE TABLE IF NOT EXISTS pf_details",
		"CREATE TABLE IF NOT EXISTS employees",
		"CREATE TABLE IF NOT EXISTS loans",
		"CREATE TABLE IF NOT EXISTS previous_jobs",
		"CREATE TABLE IF NOT EXISTS projects",
		"CREATE TABLE IF NOT EXISTS resource_allocations",
		"FOREIGN KEY (general_id) REFERENCES generals(id)",
		"FOREIGN KEY (project_id) REFERENCES projects(id)",
		"CHECK (team_member >= 0)",
		"DROP TABLE IF EXISTS users",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}
