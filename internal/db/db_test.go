package db_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Ateeq-afk/sahara/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_AppliesMigrations(t *testing.T) {
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	version, err := db.SchemaVersion(conn)
	require.NoError(t, err)
	assert.Greater(t, version, 0)

	for _, table := range []string{"estimates", "estimate_phases"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	before, err := db.SchemaVersion(conn)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(conn))
	require.NoError(t, db.Migrate(conn))

	after, err := db.SchemaVersion(conn)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMigrate_RejectsNewerSchema(t *testing.T) {
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`PRAGMA user_version = 999`)
	require.NoError(t, err)

	err = db.Migrate(conn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than this binary")
}

func TestOpenDB_CreatesDirectoryAndReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sahara.db")

	conn, err := db.OpenDB(path)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO estimates (id, project_type, area_sq_ft, complexity, start_date,
		size_category, total_weeks, total_months, end_date, created_at)
		VALUES ('e1', 'interior', 900, 'simple', '2024-01-01', 'small', 10, 3, '2024-03-11', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	conn, err = db.OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM estimates`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSchema_RejectsInvalidEnum(t *testing.T) {
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`INSERT INTO estimates (id, project_type, area_sq_ft, complexity, start_date,
		size_category, total_weeks, total_months, end_date, created_at)
		VALUES ('e1', 'landscaping', 900, 'simple', '2024-01-01', 'small', 10, 3, '2024-03-11', '2024-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func newUoW(t *testing.T) (db.UnitOfWork, func(id string) bool) {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`CREATE TABLE uow_test (id TEXT PRIMARY KEY, val TEXT)`)
	require.NoError(t, err)

	exists := func(id string) bool {
		var n int
		_ = conn.QueryRow(`SELECT COUNT(*) FROM uow_test WHERE id = ?`, id).Scan(&n)
		return n > 0
	}
	return db.NewUnitOfWork(conn), exists
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow, exists := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO uow_test (id, val) VALUES (?, ?)`, "k1", "v1")
		return err
	})
	require.NoError(t, err)
	assert.True(t, exists("k1"), "row should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, exists := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO uow_test (id, val) VALUES (?, ?)`, "k2", "v2"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Equal(t, "deliberate failure", err.Error())
	assert.False(t, exists("k2"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, exists := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, `INSERT INTO uow_test (id, val) VALUES (?, ?)`, "k3", "v3")
			panic("boom")
		})
	})
	assert.False(t, exists("k3"), "row should not exist after panic rollback")
}
