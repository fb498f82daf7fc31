package testutil

import (
	"testing"

	"artag/internal/artag"
	"artag/internal/database"
	"artag/internal/database/migrations"
)

// NewTestDatabase creates a new in-memory SQLite database with the schema
// migrated to the latest version. The database is automatically closed when
// the test completes.
func NewTestDatabase(t *testing.T) artag.Database {
	t.Helper()

	sqlDB, err := database.OpenConnection(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := migrations.MigrateUp(sqlDB); err != nil {
		sqlDB.Close()
		t.Fatalf("failed to migrate database: %v", err)
	}

	db := database.NewSQLiteDatabaseFromDB(sqlDB)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
