package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied on startup. Statements are idempotent so a restart
// against an existing database is a no-op.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'admin'
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		id         BIGSERIAL PRIMARY KEY,
		firstname  TEXT NOT NULL,
		lastname   TEXT NOT NULL,
		email      TEXT NOT NULL,
		phone      TEXT NOT NULL,
		agenda_url TEXT NOT NULL,
		image_ref  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS holidays (
		id         BIGSERIAL PRIMARY KEY,
		doctor_id  BIGINT NOT NULL REFERENCES doctors(id) ON DELETE CASCADE,
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS welcome (
		id   BIGINT PRIMARY KEY CHECK (id = 1),
		html TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS urgency (
		id   BIGINT PRIMARY KEY CHECK (id = 1),
		html TEXT NOT NULL
	)`,
}

// Migrate creates missing tables.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
