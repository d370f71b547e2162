// Package testutil provides shared helpers for package tests: an in-memory
// store and a handful of reference charts with well-known properties.
package testutil

import (
	"context"
	"testing"

	"github.com/haesol/sajukit/internal/service"
	"github.com/haesol/sajukit/internal/storage"
)

// TestDB wraps an in-memory store for a single test.
type TestDB struct {
	Store service.Store
	t     *testing.T
}

// SetupTestDB creates a new in-memory SQLite store, runs migrations, and
// registers cleanup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return &TestDB{Store: store, t: t}
}
