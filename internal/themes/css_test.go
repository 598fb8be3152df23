// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
	"testing"

	"github.com/thatcatcamp/palettekitty/internal/palette"
)

func generate(t *testing.T, seed string) *palette.Palette {
	t.Helper()
	p, err := palette.Generate(seed)
	if err != nil {
		t.Fatalf("Generate(%s) failed: %v", seed, err)
	}
	return p
}

func TestPresetExists(t *testing.T) {
	preset := GetPreset("indigo")
	if preset == nil {
		t.Fatal("indigo preset not found")
	}
	if preset.Seed != "#3f51b5" {
		t.Errorf("expected #3f51b5, got %s", preset.Seed)
	}
	if GetPreset("no-such-color") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	list := ListPresets()
	if len(list) != len(presets) {
		t.Errorf("expected %d presets, got %d", len(presets), len(list))
	}

	names := make(map[string]bool)
	for _, p := range list {
		if names[p.Name] {
			t.Errorf("duplicate preset name: %s", p.Name)
		}
		names[p.Name] = true

		if _, err := palette.Generate(p.Seed); err != nil {
			t.Errorf("preset %s has invalid seed %s: %v", p.Name, p.Seed, err)
		}
	}
}

func TestGenerateLightModeColors(t *testing.T) {
	p := generate(t, "#3f51b5")
	colors := GenerateColors(p, false)

	if colors.Primary != "#3f51b5" {
		t.Errorf("expected primary to be the 500 shade, got %s", colors.Primary)
	}
	if colors.PrimaryContrast != p.Contrast("500") {
		t.Errorf("expected primary contrast %s, got %s", p.Contrast("500"), colors.PrimaryContrast)
	}
	if colors.Surface != p.Hex("50") {
		t.Errorf("expected surface %s, got %s", p.Hex("50"), colors.Surface)
	}
}

func TestGenerateDarkModeColors(t *testing.T) {
	p := generate(t, "#3f51b5")
	colors := GenerateColors(p, true)

	if colors.Primary != p.Hex("200") {
		t.Errorf("expected primary %s, got %s", p.Hex("200"), colors.Primary)
	}
	if colors.Surface != p.Hex("900") {
		t.Errorf("expected surface %s, got %s", p.Hex("900"), colors.Surface)
	}
}

func TestGeneratedCSSContainsVariables(t *testing.T) {
	p := generate(t, "#e91e63")
	css := GenerateCSS(GenerateColors(p, false), p)

	expectedVars := []string{
		"--color-primary",
		"--color-primary-contrast",
		"--color-secondary",
		"--color-bg",
		"--color-surface",
		"--color-text",
		"--color-border",
		"--palette-50:",
		"--palette-900-contrast:",
		"--palette-a100:",
		"--palette-a700-contrast:",
	}

	for _, variable := range expectedVars {
		if !strings.Contains(css, variable) {
			t.Errorf("CSS missing variable: %s", variable)
		}
	}
}

func TestGeneratedCSSContainsShadeValues(t *testing.T) {
	p := generate(t, "#009688")
	css := GenerateCSS(GenerateColors(p, false), p)

	for _, s := range p.Shades {
		if !strings.Contains(css, s.Hex) {
			t.Errorf("CSS does not contain shade %s: %s", s.Name, s.Hex)
		}
	}
	if !strings.HasPrefix(css, ":root {") {
		t.Fatal("CSS missing :root selector")
	}
}

func TestCSSGenerationLightVsDark(t *testing.T) {
	p := generate(t, "#000080")

	cssLight := GenerateCSS(GenerateColors(p, false), p)
	cssDark := GenerateCSS(GenerateColors(p, true), p)

	if cssLight == cssDark {
		t.Fatal("Light and dark CSS should be different")
	}
}
