package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// busyTimeout controls how long a write waits on a locked database before
// failing; it plays the role of a store selection timeout.
func New(path string, busyTimeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d;", busyTimeout.Milliseconds())); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
//
// templates holds canonical generated records; user_templates holds
// user-modified copies linked to a parent by ID. Records in both tables are
// insert-only: nothing in this service updates or deletes them.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS templates (
			template_id TEXT PRIMARY KEY,
			component TEXT NOT NULL,
			fields TEXT NOT NULL,
			purpose TEXT NOT NULL,
			style TEXT NOT NULL,
			html TEXT NOT NULL,
			source TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS user_templates (
			template_id TEXT PRIMARY KEY,
			parent_template_id TEXT NOT NULL,
			user_name TEXT NOT NULL,
			html TEXT NOT NULL,
			source TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_templates_component ON templates(component);`,
		`CREATE INDEX IF NOT EXISTS idx_user_templates_parent ON user_templates(parent_template_id);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
