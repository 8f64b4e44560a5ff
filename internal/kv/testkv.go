package kv

import "testing"

// NewTestStore creates a fresh in-memory SQLite-backed store with the schema
// applied.
func NewTestStore(t *testing.T) *SQLite {
	t.Helper()

	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := EnsureSchema(db); err != nil {
		db.Close()
		t.Fatalf("creating test database schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return NewSQLite(db)
}
