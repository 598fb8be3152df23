// SPDX-License-Identifier: MIT
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/palettekitty/internal/db"
	"github.com/thatcatcamp/palettekitty/internal/history"
	"github.com/thatcatcamp/palettekitty/internal/palette"
	"github.com/thatcatcamp/palettekitty/internal/themes"
)

// PaletteHandler returns the palette for a hex code path segment as JSON
func PaletteHandler(c *gin.Context) {
	p, ok := paletteFromParam(c)
	if !ok {
		errorJSON(c, http.StatusNotFound, "Color not found")
		return
	}

	writeJSON(c, http.StatusOK, p)
}

// CSSHandler returns a stylesheet with one custom property per shade
func CSSHandler(c *gin.Context) {
	p, ok := paletteFromParam(c)
	if !ok {
		c.String(http.StatusNotFound, "/* Color not found */\n")
		return
	}

	darkMode := isDarkMode(c)
	css := themes.GenerateCSS(themes.GenerateColors(p, darkMode), p)
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}

// paletteFromParam builds the palette for the ":code" parameter, which is a
// hex code without the leading "#". Successful lookups are recorded.
func paletteFromParam(c *gin.Context) (*palette.Palette, bool) {
	p, err := palette.Generate("#" + c.Param("code"))
	if err != nil {
		if !errors.Is(err, palette.ErrColorNotFound) {
			log.Printf("palette generation failed: %v", err)
		}
		return nil, false
	}

	recordLookup(p.Seed)
	return p, true
}

// recordLookup counts a request in history when a database is configured.
// Failures are logged and never reach the client.
func recordLookup(hex string) {
	database := db.GetDB()
	if database == nil {
		return
	}
	if err := history.Record(database, hex); err != nil {
		log.Printf("Error recording lookup: %v", err)
	}
}

func isDarkMode(c *gin.Context) bool {
	switch c.Query("dark") {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func errorJSON(c *gin.Context, status int, message string) {
	writeJSON(c, status, gin.H{
		"error": gin.H{
			"message": message,
		},
	})
}

// writeJSON renders v indented by two spaces, the same layout as the
// generate --json command
func writeJSON(c *gin.Context, status int, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("Error encoding response: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}
