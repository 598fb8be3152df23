// SPDX-License-Identifier: MIT
package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/palettekitty/internal/config"
	"github.com/thatcatcamp/palettekitty/internal/db"
	"github.com/thatcatcamp/palettekitty/internal/history"
	"github.com/thatcatcamp/palettekitty/internal/models"
	"github.com/thatcatcamp/palettekitty/internal/palette"
	"github.com/thatcatcamp/palettekitty/internal/themes"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// PresetsHandler lists the preset seeds with their generated palettes
func PresetsHandler(c *gin.Context) {
	type presetResponse struct {
		Name    string           `json:"name"`
		Seed    string           `json:"seed"`
		Palette *palette.Palette `json:"palette"`
	}

	var out []presetResponse
	for _, preset := range themes.ListPresets() {
		p, err := palette.Generate(preset.Seed)
		if err != nil {
			log.Printf("preset %s has invalid seed %s: %v", preset.Name, preset.Seed, err)
			continue
		}
		out = append(out, presetResponse{Name: preset.Name, Seed: p.Seed, Palette: p})
	}

	c.IndentedJSON(http.StatusOK, gin.H{"presets": out})
}

// HistoryHandler lists requested colors, most requested first.
// ?order=recent sorts by last request instead, ?limit caps the result size.
func HistoryHandler(c *gin.Context) {
	database := db.GetDB()
	if database == nil {
		errorJSON(c, http.StatusNotFound, "History is disabled")
		return
	}

	limit := config.GetInt("history.limit")
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errorJSON(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	var (
		lookups []models.Lookup
		err     error
	)
	if c.Query("order") == "recent" {
		lookups, err = history.Recent(database, limit)
	} else {
		lookups, err = history.Popular(database, limit)
	}
	if err != nil {
		log.Printf("Error listing history: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Failed to load history")
		return
	}

	type entry struct {
		Hex       string    `json:"hex"`
		Count     int64     `json:"count"`
		FirstSeen time.Time `json:"first_seen"`
		LastSeen  time.Time `json:"last_seen"`
	}
	out := make([]entry, 0, len(lookups))
	for _, l := range lookups {
		out = append(out, entry{Hex: l.Hex, Count: l.Count, FirstSeen: l.CreatedAt, LastSeen: l.UpdatedAt})
	}

	c.IndentedJSON(http.StatusOK, gin.H{"history": out})
}

// HealthHandler reports service status
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "palettekitty",
	})
}
