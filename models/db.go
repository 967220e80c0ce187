package models

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/rohanthewiz/serr"
)

var db *sql.DB

// InitDB opens the DuckDB database at the given path and runs migrations.
// The parent directory is created if needed.
func InitDB(dbPath string) error {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return serr.Wrap(err, "failed to create data directory")
		}
	}

	var err error
	db, err = sql.Open("duckdb", dbPath)
	if err != nil {
		return serr.Wrap(err, "failed to open database")
	}

	if err := migrateDB(db); err != nil {
		return serr.Wrap(err, "failed to migrate database")
	}

	return nil
}

// InitTestDB opens a throwaway database for tests.
func InitTestDB(dbPath string) error {
	return InitDB(dbPath)
}

// CloseDB closes the database connection.
func CloseDB() {
	if db != nil {
		db.Close()
		db = nil
	}
}
