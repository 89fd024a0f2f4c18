// Package config loads icon definitions from JSON or YAML files and merges
// them with command-line overrides.
package config

import "github.com/xob0t/appicon/pkg/generator"

// DefaultOutput is where the icon is written when no output is given.
const DefaultOutput = "assets/icon/app_icon.png"

// File is the top-level structure of an icon file.
type File struct {
	Name       string         `json:"name,omitempty" yaml:"name,omitempty"`
	Glyph      string         `json:"glyph,omitempty" yaml:"glyph,omitempty"`
	Background *generator.RGB `json:"background,omitempty" yaml:"background,omitempty"` // "#rrggbb", "r,g,b" or "random"
	Foreground *generator.RGB `json:"foreground,omitempty" yaml:"foreground,omitempty"` // nil = white
	Size       int            `json:"size,omitempty" yaml:"size,omitempty"`             // pixels; wins over Preset
	Preset     string         `json:"preset,omitempty" yaml:"preset,omitempty"`         // key of Presets
	Output     string         `json:"output,omitempty" yaml:"output,omitempty"`
	Fonts      []string       `json:"fonts,omitempty" yaml:"fonts,omitempty"` // tried before the platform fonts
}

// knownKeys lists the top-level keys of File, for unknown-key warnings.
var knownKeys = map[string]struct{}{
	"name":       {},
	"glyph":      {},
	"background": {},
	"foreground": {},
	"size":       {},
	"preset":     {},
	"output":     {},
	"fonts":      {},
}

// Presets maps preset names to icon edge lengths in pixels.
var Presets = map[string]int{
	"android": 512,
	"ios":     1024,
	"web":     192,
	"favicon": 32,
	"small":   128,
}

// OutputPath returns Output or DefaultOutput.
func (f File) OutputPath() string {
	if f.Output == "" {
		return DefaultOutput
	}
	return f.Output
}
