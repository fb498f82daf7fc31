package database

import (
	"fmt"
	"os"
	"path/filepath"

	"artag/internal/artag"
	"artag/internal/config"
	"artag/internal/database/migrations"
)

// NewDatabaseFromConfig creates a Database implementation based on the
// database config type. The schema is migrated to the latest version as
// part of opening.
func NewDatabaseFromConfig(cfg config.DatabaseConfig, installID string) (artag.Database, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite database")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		return openMigrated(filepath.Join(cfg.DataDir, installID+".db"))
	case "memory":
		return openMigrated(":memory:")
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}

func openMigrated(path string) (*SQLiteDatabase, error) {
	db, err := NewSQLiteDatabase(path)
	if err != nil {
		return nil, err
	}
	if err := migrations.MigrateUp(db.DB()); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return db, nil
}
