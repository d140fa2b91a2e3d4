package store

import (
	"context"
	"database/sql"
	"strings"
)

// schema contains the DDL for all tables.
// Each statement uses IF NOT EXISTS for idempotency.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category    TEXT NOT NULL DEFAULT 'other',
		github_url  TEXT NOT NULL DEFAULT '',
		homepage    TEXT NOT NULL DEFAULT '',
		language    TEXT NOT NULL DEFAULT '',
		stars       INTEGER NOT NULL DEFAULT 0,
		forks       INTEGER NOT NULL DEFAULT 0,
		github_id   INTEGER,
		topics      TEXT NOT NULL DEFAULT '[]',
		is_visible  INTEGER NOT NULL DEFAULT 1,
		pushed_at   TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	// github_id is the upsert key for synced repositories; manual projects
	// leave it NULL, which the unique index ignores.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_github_id ON projects(github_id) WHERE github_id IS NOT NULL`,
	`CREATE INDEX IF NOT EXISTS idx_projects_visible ON projects(is_visible)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_stars ON projects(stars)`,
}

// migrate applies the schema. Statements are individually idempotent, so a
// partial failure can be retried.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			// Include the first line of the statement for context.
			first := strings.SplitN(strings.TrimSpace(stmt), "\n", 2)[0]
			return &migrationError{stmt: first, err: err}
		}
	}
	return nil
}

type migrationError struct {
	stmt string
	err  error
}

func (e *migrationError) Error() string {
	return "migration failed at " + e.stmt + ": " + e.err.Error()
}

func (e *migrationError) Unwrap() error { return e.err }
