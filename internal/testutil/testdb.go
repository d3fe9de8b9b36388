package testutil

import (
	"database/sql"
	"testing"

	"github.com/Ateeq-afk/sahara/internal/db"
)

// NewTestDB opens an in-memory estimate store with migrations applied.
// It is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
	})
	return conn
}
