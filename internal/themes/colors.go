// SPDX-License-Identifier: MIT
package themes

import "github.com/thatcatcamp/palettekitty/internal/palette"

// Colors represents the page roles styled from a palette
type Colors struct {
	Primary         string // Main brand color
	PrimaryContrast string // Text on primary
	Secondary       string // Accent/highlight color
	Background      string // Page background
	Surface         string // Card/container background
	Text            string // Main text color
	TextMuted       string // Secondary/muted text
	Border          string // Border/divider color
	Success         string // Success state color
	Error           string // Error state color
	Warning         string // Warning state color
}

// GenerateColors maps a generated palette onto page roles for light or dark mode
func GenerateColors(p *palette.Palette, darkMode bool) *Colors {
	if darkMode {
		return generateDarkColors(p)
	}
	return generateLightColors(p)
}

func generateLightColors(p *palette.Palette) *Colors {
	return &Colors{
		Primary:         p.Hex("500"),
		PrimaryContrast: p.Contrast("500"),
		Secondary:       p.Hex("A200"),
		Background:      "#ffffff",
		Surface:         p.Hex("50"),
		Text:            "#000000",
		TextMuted:       "#6b7280",
		Border:          p.Hex("100"),
		Success:         "#22c55e",
		Error:           "#ef4444",
		Warning:         "#f59e0b",
	}
}

func generateDarkColors(p *palette.Palette) *Colors {
	return &Colors{
		Primary:         p.Hex("200"), // Light version of primary
		PrimaryContrast: p.Contrast("200"),
		Secondary:       p.Hex("A100"),
		Background:      "#0f172a",
		Surface:         p.Hex("900"),
		Text:            "#f1f5f9",
		TextMuted:       "#94a3b8",
		Border:          p.Hex("800"),
		Success:         "#22c55e",
		Error:           "#ef4444",
		Warning:         "#f59e0b",
	}
}
