// SPDX-License-Identifier: MIT
package themes

// Preset is a named seed color
type Preset struct {
	Name string // "indigo", "teal", etc.
	Seed string // hex color #rrggbb
}

var presets = map[string]*Preset{
	"red":         {Name: "red", Seed: "#f44336"},
	"pink":        {Name: "pink", Seed: "#e91e63"},
	"purple":      {Name: "purple", Seed: "#9c27b0"},
	"deep-purple": {Name: "deep-purple", Seed: "#673ab7"},
	"indigo":      {Name: "indigo", Seed: "#3f51b5"},
	"blue":        {Name: "blue", Seed: "#2196f3"},
	"light-blue":  {Name: "light-blue", Seed: "#03a9f4"},
	"cyan":        {Name: "cyan", Seed: "#00bcd4"},
	"teal":        {Name: "teal", Seed: "#009688"},
	"green":       {Name: "green", Seed: "#4caf50"},
	"light-green": {Name: "light-green", Seed: "#8bc34a"},
	"lime":        {Name: "lime", Seed: "#cddc39"},
	"yellow":      {Name: "yellow", Seed: "#ffeb3b"},
	"amber":       {Name: "amber", Seed: "#ffc107"},
	"orange":      {Name: "orange", Seed: "#ff9800"},
	"deep-orange": {Name: "deep-orange", Seed: "#ff5722"},
	"brown":       {Name: "brown", Seed: "#795548"},
	"grey":        {Name: "grey", Seed: "#9e9e9e"},
	"blue-grey":   {Name: "blue-grey", Seed: "#607d8b"},
}

var presetOrder = []string{
	"red", "pink", "purple", "deep-purple", "indigo", "blue", "light-blue",
	"cyan", "teal", "green", "light-green", "lime", "yellow", "amber",
	"orange", "deep-orange", "brown", "grey", "blue-grey",
}

// GetPreset returns a preset by name
func GetPreset(name string) *Preset {
	return presets[name]
}

// ListPresets returns all available presets in order
func ListPresets() []*Preset {
	var out []*Preset
	for _, name := range presetOrder {
		if p := GetPreset(name); p != nil {
			out = append(out, p)
		}
	}
	return out
}
