// SPDX-License-Identifier: MIT

// Package palette generates Material-style color palettes from a seed color.
package palette

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/thatcatcamp/palettekitty/internal/color"
)

const (
	Black = "#000000"
	White = "#ffffff"

	// ContrastThreshold is the luminance above which text on a shade is black
	ContrastThreshold = 0.5
)

// ErrColorNotFound is returned when the seed is not a "#rrggbb" color
var ErrColorNotFound = errors.New("color not found")

type step struct {
	name  string
	value float64
}

var baseSteps = []step{
	{"50", 0.5}, {"100", 1}, {"200", 2}, {"300", 3}, {"400", 4},
	{"500", 5}, {"600", 6}, {"700", 7}, {"800", 8}, {"900", 9},
}

var accentSteps = []step{
	{"A100", 1}, {"A200", 2}, {"A400", 4}, {"A700", 7},
}

// ShadeNames lists every shade in ladder order
var ShadeNames = func() []string {
	names := make([]string, 0, len(baseSteps)+len(accentSteps))
	for _, s := range baseSteps {
		names = append(names, s.name)
	}
	for _, s := range accentSteps {
		names = append(names, s.name)
	}
	return names
}()

// Shade is one named entry of a palette
type Shade struct {
	Name     string
	Hex      string
	Contrast string // Black or White
	Accent   bool
}

// Palette is the full set of shades generated from a seed
type Palette struct {
	Seed   string
	Shades []Shade
}

// Generate builds the palette for a "#rrggbb" seed.
//
// Base shades follow the curve (1 - i/10)^gamma with gamma = -log2(seed
// lightness), so the 500 shade lands on the seed itself. Accent shades are
// taken from the fully saturated seed on a linear lightness ladder.
func Generate(hex string) (*Palette, error) {
	seed, ok := color.FromHex(hex)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColorNotFound, hex)
	}

	p := &Palette{
		Seed:   seed.Hex(),
		Shades: make([]Shade, 0, len(ShadeNames)),
	}

	gamma := Gamma(seed.Lightness())
	for _, s := range baseSteps {
		shade := seed.Clone()
		shade.SetLightness(math.Pow(1-s.value/10, gamma))
		p.Shades = append(p.Shades, newShade(s.name, shade, false))
	}

	seed.Saturate()
	for _, s := range accentSteps {
		shade := seed.Clone()
		shade.SetLightness(1 - s.value/10)
		p.Shades = append(p.Shades, newShade(s.name, shade, true))
	}

	return p, nil
}

// Gamma returns the exponent that anchors the shade curve on a seed's
// lightness. A black seed gives +Inf, collapsing every base shade to black.
func Gamma(lightness float64) float64 {
	if lightness == 0 {
		return math.Inf(1)
	}
	return -math.Log2(lightness)
}

// ContrastFor picks black or white text for a background color
func ContrastFor(c color.Color) string {
	if c.Luminance() > ContrastThreshold {
		return Black
	}
	return White
}

func newShade(name string, c color.Color, accent bool) Shade {
	return Shade{
		Name:     name,
		Hex:      c.Hex(),
		Contrast: ContrastFor(c),
		Accent:   accent,
	}
}

// Shade looks up a shade by name
func (p *Palette) Shade(name string) (Shade, bool) {
	for _, s := range p.Shades {
		if s.Name == name {
			return s, true
		}
	}
	return Shade{}, false
}

// Hex returns the hex value of a shade, or "" if there is no such shade
func (p *Palette) Hex(name string) string {
	s, _ := p.Shade(name)
	return s.Hex
}

// Contrast returns the text color for a shade, or "" if there is no such shade
func (p *Palette) Contrast(name string) string {
	s, _ := p.Shade(name)
	return s.Contrast
}

// Base returns the ten base shades
func (p *Palette) Base() []Shade {
	var out []Shade
	for _, s := range p.Shades {
		if !s.Accent {
			out = append(out, s)
		}
	}
	return out
}

// Accents returns the four accent shades
func (p *Palette) Accents() []Shade {
	var out []Shade
	for _, s := range p.Shades {
		if s.Accent {
			out = append(out, s)
		}
	}
	return out
}

// Map returns shade name -> hex
func (p *Palette) Map() map[string]string {
	m := make(map[string]string, len(p.Shades))
	for _, s := range p.Shades {
		m[s.Name] = s.Hex
	}
	return m
}

// ContrastMap returns shade name -> contrast text color
func (p *Palette) ContrastMap() map[string]string {
	m := make(map[string]string, len(p.Shades))
	for _, s := range p.Shades {
		m[s.Name] = s.Contrast
	}
	return m
}

// MarshalJSON renders the palette as
// {"100": "#...", ..., "A700": "#...", "contrast": {"100": "#ffffff", ...}}
// with keys sorted.
func (p *Palette) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(p.Shades)+1)
	for name, hex := range p.Map() {
		out[name] = hex
	}
	out["contrast"] = p.ContrastMap()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
