package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// NewSQLite opens (or creates) the embedded on-disk database and runs the
// given schema script when the file has no tables yet. Foreign keys are
// enforced and access is funneled through a single connection because the
// embedded engine serializes writers anyway. Development use only; not safe
// for multi-process concurrent writers.
func NewSQLite(path, schema string) (*sqlx.DB, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := bootstrapSchema(db, schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// bootstrapSchema executes the schema script exactly once per database file:
// only when sqlite_master reports no user tables. Reopening an initialized
// file is a no-op.
func bootstrapSchema(db *sqlx.DB, schema string) error {
	var tables int
	if err := db.Get(&tables, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'"); err != nil {
		return fmt.Errorf("inspect schema: %w", err)
	}
	if tables > 0 {
		return nil
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}
