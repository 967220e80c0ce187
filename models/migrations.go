package models

import (
	"database/sql"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// migrateDB creates all tables and sequences if they do not exist.
func migrateDB(db *sql.DB) error {
	sequences := []string{
		"CREATE SEQUENCE IF NOT EXISTS users_id_seq START 1",
		"CREATE SEQUENCE IF NOT EXISTS page_revisions_id_seq START 1",
	}

	for _, seqSQL := range sequences {
		if _, err := db.Exec(seqSQL); err != nil {
			logger.LogErr(err, "failed to create sequence", "sql", seqSQL)
			// Continue even if sequence exists
		}
	}

	pagesTableSQL := `
	CREATE TABLE IF NOT EXISTS pages (
		id VARCHAR(40) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		background_color VARCHAR(32) DEFAULT '#000000',
		background_image VARCHAR,
		theme VARCHAR(16) DEFAULT 'dark',
		components TEXT DEFAULT '[]',  -- JSON array of components
		settings TEXT DEFAULT '{}',    -- JSON object
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := db.Exec(pagesTableSQL); err != nil {
		return serr.Wrap(err, "failed to create pages table")
	}

	usersTableSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGINT PRIMARY KEY DEFAULT nextval('users_id_seq'),
		guid VARCHAR(40) UNIQUE NOT NULL,
		username VARCHAR(64) UNIQUE NOT NULL,
		email VARCHAR(255) UNIQUE,
		password_hash VARCHAR NOT NULL,
		is_active BOOLEAN DEFAULT true,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_login_at TIMESTAMP
	)`

	if _, err := db.Exec(usersTableSQL); err != nil {
		return serr.Wrap(err, "failed to create users table")
	}

	revisionsTableSQL := `
	CREATE TABLE IF NOT EXISTS page_revisions (
		id BIGINT PRIMARY KEY DEFAULT nextval('page_revisions_id_seq'),
		page_id VARCHAR(40) NOT NULL,
		seq INTEGER NOT NULL,
		snapshot BLOB NOT NULL,  -- msgpack-encoded page snapshot
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := db.Exec(revisionsTableSQL); err != nil {
		return serr.Wrap(err, "failed to create page_revisions table")
	}

	statusTableSQL := `
	CREATE TABLE IF NOT EXISTS status_checks (
		id VARCHAR(40) PRIMARY KEY,
		client_name VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := db.Exec(statusTableSQL); err != nil {
		return serr.Wrap(err, "failed to create status_checks table")
	}

	return nil
}
