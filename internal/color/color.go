// SPDX-License-Identifier: MIT

// Package color implements an RGB color model with channels stored as
// normalized floats in [0,1], plus the lightness and saturation transforms
// used to derive palette shades.
package color

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
)

// Relative luminance coefficients and sRGB correction constants.
// See https://www.w3.org/WAI/GL/wiki/Relative_luminance
const (
	LuminanceR         = 0.2126
	LuminanceG         = 0.7152
	LuminanceB         = 0.0722
	LuminanceThreshold = 0.03928
	LuminanceDivide    = 12.92
	LuminanceBias      = 0.055
	LuminanceGamma     = 2.4
)

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Channel names a color component
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (ch Channel) String() string {
	switch ch {
	case Red:
		return "r"
	case Green:
		return "g"
	case Blue:
		return "b"
	}
	return fmt.Sprintf("Channel(%d)", int(ch))
}

// Component is a channel together with its current value
type Component struct {
	Channel Channel
	Value   float64
}

// Color is an RGB color. Channels are always within [0,1]; every write goes
// through clip. The zero value is black.
type Color struct {
	r, g, b float64
}

// New creates a color, clamping each channel into [0,1]
func New(r, g, b float64) Color {
	var c Color
	c.SetR(r)
	c.SetG(g)
	c.SetB(b)
	return c
}

// FromHex parses a "#rrggbb" string (case-insensitive).
// ok is false for anything else, including "#rgb" shorthand and missing "#".
func FromHex(text string) (c Color, ok bool) {
	if !hexPattern.MatchString(text) {
		return Color{}, false
	}
	return New(hexToFloat(text[1:3]), hexToFloat(text[3:5]), hexToFloat(text[5:7])), true
}

func (c Color) R() float64 { return c.r }
func (c Color) G() float64 { return c.g }
func (c Color) B() float64 { return c.b }

func (c *Color) SetR(v float64) { c.r = clip(v, 0, 1) }
func (c *Color) SetG(v float64) { c.g = clip(v, 0, 1) }
func (c *Color) SetB(v float64) { c.b = clip(v, 0, 1) }

// Get returns the value of a channel
func (c Color) Get(ch Channel) float64 {
	switch ch {
	case Red:
		return c.r
	case Green:
		return c.g
	default:
		return c.b
	}
}

// Set writes a channel, clamping the value
func (c *Color) Set(ch Channel, v float64) {
	switch ch {
	case Red:
		c.SetR(v)
	case Green:
		c.SetG(v)
	default:
		c.SetB(v)
	}
}

// Hex returns the color as a lowercase "#rrggbb" string
func (c Color) Hex() string {
	return "#" + floatToHex(c.r) + floatToHex(c.g) + floatToHex(c.b)
}

func (c Color) String() string {
	return c.Hex()
}

// OrderedComponents returns the channels sorted ascending by value.
// Ties keep r, g, b order.
func (c Color) OrderedComponents() [3]Component {
	comps := [3]Component{{Red, c.r}, {Green, c.g}, {Blue, c.b}}
	slices.SortStableFunc(comps[:], func(a, b Component) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		}
		return 0
	})
	return comps
}

// Luminance is the perceived brightness according to the sensitivity of the
// human eye. Best used to compare contrast between colors.
func (c Color) Luminance() float64 {
	return LuminanceR*correctForLuminance(c.r) +
		LuminanceG*correctForLuminance(c.g) +
		LuminanceB*correctForLuminance(c.b)
}

// Lightness is the average of the brightest and darkest channel
func (c Color) Lightness() float64 {
	return (math.Min(c.r, math.Min(c.g, c.b)) + math.Max(c.r, math.Max(c.g, c.b))) / 2
}

// SetLightness moves the color to the given lightness while preserving hue.
// The same offset is added to the darkest and brightest channel, and the middle
// one keeps its relative position between them. If an extreme would leave
// [0,1], the overflow is taken from the other extreme so the midpoint still
// lands on the target.
func (c *Color) SetLightness(value float64) {
	comps := c.OrderedComponents()
	low, mid, high := comps[0].Value, comps[1].Value, comps[2].Value

	ratio := 0.0
	if low != high {
		ratio = (mid - low) / (high - low)
	}

	delta := clip(value, 0, 1) - c.Lightness()
	newLow := low + delta
	newHigh := high + delta

	if newLow < 0 {
		newHigh += newLow
		newLow = 0
	}
	if newHigh > 1 {
		newLow += newHigh - 1
		newHigh = 1
	}

	c.Set(comps[0].Channel, newLow)
	c.Set(comps[1].Channel, (1-ratio)*newLow+ratio*newHigh)
	c.Set(comps[2].Channel, newHigh)
}

// Scale moves the color towards black for negative amounts (-1 is black)
// or towards white for positive amounts (1 is white).
func (c *Color) Scale(amount float64) {
	amount = clip(amount, -1, 1)

	beta := math.Abs(amount)
	alpha := 1 - beta

	shade := 0.0
	if amount >= 0 {
		shade = beta
	}

	c.SetR(c.r*alpha + shade)
	c.SetG(c.g*alpha + shade)
	c.SetB(c.b*alpha + shade)
}

// Saturate maximises saturation: darkest channel to 0, brightest to 1, middle
// one at its previous relative position. Grays have no hue and become 50% gray.
func (c *Color) Saturate() {
	comps := c.OrderedComponents()
	low, mid, high := comps[0].Value, comps[1].Value, comps[2].Value

	if low == high {
		c.Set(comps[0].Channel, 0.5)
		c.Set(comps[1].Channel, 0.5)
		c.Set(comps[2].Channel, 0.5)
		return
	}

	c.Set(comps[0].Channel, 0)
	c.Set(comps[1].Channel, (mid-low)/(high-low))
	c.Set(comps[2].Channel, 1)
}

// Clone returns an independent copy of the color
func (c Color) Clone() Color {
	return Color{r: c.r, g: c.g, b: c.b}
}

// RGBA implements image/color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(math.Round(c.r * 0xffff)),
		uint32(math.Round(c.g * 0xffff)),
		uint32(math.Round(c.b * 0xffff)),
		0xffff
}

func clip(value, lower, upper float64) float64 {
	return math.Min(math.Max(value, lower), upper)
}

// correctForLuminance linearizes an sRGB channel value
func correctForLuminance(v float64) float64 {
	if v <= LuminanceThreshold {
		return v / LuminanceDivide
	}
	return math.Pow((v+LuminanceBias)/(1+LuminanceBias), LuminanceGamma)
}

// floatToHex rounds half to even, so 76.5 becomes 4c
func floatToHex(v float64) string {
	return fmt.Sprintf("%02x", int(math.RoundToEven(v*255)))
}

// hexToFloat expects a validated two digit hex string
func hexToFloat(s string) float64 {
	n, _ := strconv.ParseUint(s, 16, 8)
	return float64(n) / 255
}
