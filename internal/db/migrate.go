package db

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order; PRAGMA user_version records how many
// have run. Append only.
var migrations = []string{
	`CREATE TABLE estimates (
		id              TEXT PRIMARY KEY,
		label           TEXT NOT NULL DEFAULT '',
		project_type    TEXT NOT NULL
		                CHECK(project_type IN ('construction','interior','renovation')),
		area_sq_ft      REAL NOT NULL CHECK(area_sq_ft > 0),
		complexity      TEXT NOT NULL
		                CHECK(complexity IN ('simple','standard','complex')),
		start_date      TEXT NOT NULL,
		fast_track      INTEGER NOT NULL DEFAULT 0,
		seasonal_buffer INTEGER NOT NULL DEFAULT 0,
		variant         TEXT NOT NULL DEFAULT 'detailed'
		                CHECK(variant IN ('detailed','compact')),
		size_category   TEXT NOT NULL,
		total_weeks     INTEGER NOT NULL,
		total_months    INTEGER NOT NULL,
		seasonal_weeks  INTEGER NOT NULL DEFAULT 0,
		end_date        TEXT NOT NULL,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX idx_estimates_created ON estimates(created_at)`,

	`CREATE TABLE estimate_phases (
		estimate_id    TEXT NOT NULL REFERENCES estimates(id) ON DELETE CASCADE,
		position       INTEGER NOT NULL,
		name           TEXT NOT NULL,
		duration_weeks INTEGER NOT NULL CHECK(duration_weeks >= 1),
		start_week     INTEGER NOT NULL,
		end_week       INTEGER NOT NULL,
		PRIMARY KEY (estimate_id, position)
	)`,
}

// Migrate brings the schema up to date. It is idempotent.
func Migrate(conn *sql.DB) error {
	ctx := context.Background()

	var version int
	if err := conn.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if version > len(migrations) {
		return fmt.Errorf("database schema version %d is newer than this binary (%d)", version, len(migrations))
	}
	if version == len(migrations) {
		return nil
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting migration transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for i := version; i < len(migrations); i++ {
		if _, err := tx.ExecContext(ctx, migrations[i]); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	// PRAGMA does not accept bound parameters.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, len(migrations))); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migrations: %w", err)
	}
	committed = true
	return nil
}

// SchemaVersion returns the number of migrations applied to conn.
func SchemaVersion(conn *sql.DB) (int, error) {
	var version int
	if err := conn.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}
