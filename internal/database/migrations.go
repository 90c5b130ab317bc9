package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the schema. It is safe to run on every start.
// Default columns are not seeded here; an empty board is seeded by the
// reconciler on first load so every binding behaves the same.
func runMigrations(ctx context.Context, db *sql.DB) error {
	// sort_order is nullable: a missing order sorts last
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS columns (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			collapsed BOOLEAN NOT NULL DEFAULT 0,
			sort_order INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY,
			column_id TEXT NOT NULL,
			text TEXT NOT NULL,
			sort_order INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (column_id) REFERENCES columns(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_cards_column
		ON cards(column_id, sort_order)
	`)
	return err
}
