// Package testutil provides databases for tests and local development.
package testutil

import (
	"io"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/localnerve/reviewsdb/internal/database"
	"github.com/localnerve/reviewsdb/internal/logger"
	"gorm.io/gorm"
)

// MemoryDSN names a private shared-cache in-memory SQLite database with
// foreign keys on.
func MemoryDSN() string {
	return "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
}

// OpenSQLite opens a migrated, empty in-memory database that is closed when
// the test ends.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	// One connection keeps every query on the same in-memory database.
	db, err := database.Open(sqlite.Open(MemoryDSN()), 1, database.Options(logger.NewWithWriter(io.Discard, "error", ""), "error"))
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
