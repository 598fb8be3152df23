// SPDX-License-Identifier: MIT

// Package history keeps a count of which seed colors have been requested.
package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/thatcatcamp/palettekitty/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record counts one request for a seed color, creating the row on first use
func Record(db *gorm.DB, hex string) error {
	hex = strings.ToLower(strings.TrimSpace(hex))

	lookup := &models.Lookup{Hex: hex, Count: 1}
	result := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "hex"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":      gorm.Expr("`count` + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(lookup)
	if result.Error != nil {
		return fmt.Errorf("failed to record lookup for %s: %w", hex, result.Error)
	}
	return nil
}

// Get returns the lookup row for a seed color
func Get(db *gorm.DB, hex string) (*models.Lookup, error) {
	hex = strings.ToLower(strings.TrimSpace(hex))

	var lookup models.Lookup
	if err := db.Where("hex = ?", hex).First(&lookup).Error; err != nil {
		return nil, fmt.Errorf("lookup not found: %w", err)
	}
	return &lookup, nil
}

// Popular returns the most requested colors, most requested first
func Popular(db *gorm.DB, limit int) ([]models.Lookup, error) {
	var lookups []models.Lookup
	if err := db.Order("`count` DESC").Order("updated_at DESC").Limit(limit).Find(&lookups).Error; err != nil {
		return nil, fmt.Errorf("failed to list popular colors: %w", err)
	}
	return lookups, nil
}

// Recent returns the most recently requested colors
func Recent(db *gorm.DB, limit int) ([]models.Lookup, error) {
	var lookups []models.Lookup
	if err := db.Order("updated_at DESC").Order("id DESC").Limit(limit).Find(&lookups).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent colors: %w", err)
	}
	return lookups, nil
}

// Prune deletes lookups not requested since the cutoff and returns how many
// were removed
func Prune(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.Where("updated_at < ?", cutoff).Delete(&models.Lookup{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune history: %w", result.Error)
	}
	return result.RowsAffected, nil
}
