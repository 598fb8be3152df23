// SPDX-License-Identifier: MIT
package db

import (
	"path/filepath"
	"testing"

	"github.com/thatcatcamp/palettekitty/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return testDB
}

func TestMigrateCreatesLookupTable(t *testing.T) {
	testDB := setupTestDB(t)

	if err := Migrate(testDB); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	for _, column := range []string{"hex", "count", "created_at", "updated_at"} {
		if !testDB.Migrator().HasColumn(&models.Lookup{}, column) {
			t.Errorf("%s column not found in lookups table", column)
		}
	}
}

func TestLookupHexIsUnique(t *testing.T) {
	testDB := setupTestDB(t)
	if err := Migrate(testDB); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	if err := testDB.Create(&models.Lookup{Hex: "#3f51b5", Count: 1}).Error; err != nil {
		t.Fatalf("failed to create lookup: %v", err)
	}
	if err := testDB.Create(&models.Lookup{Hex: "#3f51b5", Count: 1}).Error; err == nil {
		t.Fatal("expected duplicate hex to be rejected")
	}
}

func TestInitDBSqlite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	if err := InitDB("sqlite", path); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	if GetDB() == nil {
		t.Fatal("expected database to be set")
	}
	if !GetDB().Migrator().HasTable(&models.Lookup{}) {
		t.Error("lookups table not created")
	}
}

func TestInitDBUnsupportedType(t *testing.T) {
	if err := InitDB("postgres", "whatever"); err == nil {
		t.Fatal("expected error for unsupported database type")
	}
}
