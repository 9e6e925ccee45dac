package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id         TEXT PRIMARY KEY,
		email           TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		first_name      TEXT NOT NULL DEFAULT '',
		dob_day         TEXT NOT NULL DEFAULT '',
		dob_month       TEXT NOT NULL DEFAULT '',
		dob_year        TEXT NOT NULL DEFAULT '',
		show_gender     BOOLEAN NOT NULL DEFAULT FALSE,
		gender_identity TEXT NOT NULL DEFAULT '',
		gender_interest TEXT NOT NULL DEFAULT '',
		url             TEXT NOT NULL DEFAULT '',
		about           TEXT NOT NULL DEFAULT '',
		matches         TEXT[] NOT NULL DEFAULT '{}',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS users_gender_identity_idx ON users (gender_identity)`,
	`CREATE TABLE IF NOT EXISTS messages (
		seq          BIGSERIAL PRIMARY KEY,
		message_id   TEXT NOT NULL UNIQUE,
		from_user_id TEXT NOT NULL,
		to_user_id   TEXT NOT NULL,
		message      TEXT NOT NULL DEFAULT '',
		timestamp    TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS messages_conversation_idx ON messages (from_user_id, to_user_id, seq)`,
}

// EnsureSchema creates the tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
