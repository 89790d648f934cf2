package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			taken_at      TEXT NOT NULL,
			mode          TEXT NOT NULL,
			year          INTEGER NOT NULL DEFAULT 0,
			version       TEXT NOT NULL,
			project_count INTEGER NOT NULL,
			total_files   INTEGER NOT NULL,
			total_lines   INTEGER NOT NULL,
			total_size    INTEGER NOT NULL,
			keystrokes    INTEGER NOT NULL,
			elapsed_days  INTEGER NOT NULL,
			earliest      TEXT,
			latest        TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS run_languages (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id   INTEGER NOT NULL REFERENCES runs(id),
			language TEXT NOT NULL,
			files    INTEGER NOT NULL,
			lines    INTEGER NOT NULL,
			size     INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS run_projects (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      INTEGER NOT NULL REFERENCES runs(id),
			project     TEXT NOT NULL,
			file_count  INTEGER NOT NULL,
			total_size  INTEGER NOT NULL,
			total_lines INTEGER NOT NULL,
			earliest    TEXT
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_run_languages_run ON run_languages(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_run_projects_run ON run_projects(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	// Set schema version.
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
