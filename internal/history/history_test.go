// SPDX-License-Identifier: MIT
package history

import (
	"testing"
	"time"

	"github.com/thatcatcamp/palettekitty/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Lookup{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestRecordCreatesLookup(t *testing.T) {
	db := setupTestDB(t)

	if err := Record(db, "#3F51B5"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	lookup, err := Get(db, "#3f51b5")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if lookup.Hex != "#3f51b5" {
		t.Errorf("Expected normalized hex #3f51b5, got %s", lookup.Hex)
	}
	if lookup.Count != 1 {
		t.Errorf("Expected count 1, got %d", lookup.Count)
	}
}

func TestRecordIncrementsCount(t *testing.T) {
	db := setupTestDB(t)

	for i := 0; i < 3; i++ {
		if err := Record(db, "#e91e63"); err != nil {
			t.Fatalf("Record %d failed: %v", i, err)
		}
	}

	lookup, err := Get(db, "#e91e63")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if lookup.Count != 3 {
		t.Errorf("Expected count 3, got %d", lookup.Count)
	}

	var rows int64
	db.Model(&models.Lookup{}).Count(&rows)
	if rows != 1 {
		t.Errorf("Expected a single row, got %d", rows)
	}
}

func TestGetMissing(t *testing.T) {
	db := setupTestDB(t)

	if _, err := Get(db, "#000000"); err == nil {
		t.Error("Expected error for unknown color")
	}
}

func TestPopular(t *testing.T) {
	db := setupTestDB(t)

	counts := map[string]int{"#3f51b5": 2, "#e91e63": 5, "#009688": 1}
	for hex, n := range counts {
		for i := 0; i < n; i++ {
			if err := Record(db, hex); err != nil {
				t.Fatalf("Record failed: %v", err)
			}
		}
	}

	popular, err := Popular(db, 2)
	if err != nil {
		t.Fatalf("Popular failed: %v", err)
	}
	if len(popular) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(popular))
	}
	if popular[0].Hex != "#e91e63" || popular[1].Hex != "#3f51b5" {
		t.Errorf("Unexpected order: %s, %s", popular[0].Hex, popular[1].Hex)
	}
}

func TestRecent(t *testing.T) {
	db := setupTestDB(t)

	now := time.Now()
	db.Create(&models.Lookup{Hex: "#111111", Count: 1, UpdatedAt: now.Add(-2 * time.Hour)})
	db.Create(&models.Lookup{Hex: "#222222", Count: 9, UpdatedAt: now.Add(-1 * time.Hour)})
	db.Create(&models.Lookup{Hex: "#333333", Count: 1, UpdatedAt: now})

	recent, err := Recent(db, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(recent))
	}
	if recent[0].Hex != "#333333" || recent[2].Hex != "#111111" {
		t.Errorf("Unexpected order: %s, %s, %s", recent[0].Hex, recent[1].Hex, recent[2].Hex)
	}
}

func TestPrune(t *testing.T) {
	db := setupTestDB(t)

	now := time.Now()
	db.Create(&models.Lookup{Hex: "#111111", Count: 1, UpdatedAt: now.Add(-48 * time.Hour)})
	db.Create(&models.Lookup{Hex: "#222222", Count: 1, UpdatedAt: now})

	removed, err := Prune(db, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected 1 removed, got %d", removed)
	}

	if _, err := Get(db, "#111111"); err == nil {
		t.Error("Expected stale lookup to be removed")
	}
	if _, err := Get(db, "#222222"); err != nil {
		t.Error("Expected fresh lookup to be kept")
	}
}
