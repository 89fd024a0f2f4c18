// Package icon renders square application icons: a solid background with a
// single centered glyph.
package icon

import (
	"fmt"

	"github.com/xob0t/appicon/pkg/generator"
)

const (
	// DefaultSize is the edge length of the icon in pixels.
	DefaultSize = 512

	// FontScale sizes system fonts relative to the canvas.
	FontScale = 0.4
	// BuiltinFontScale sizes the embedded fallback font, which is drawn smaller.
	BuiltinFontScale = 0.3
)

// PlatformFontPaths are the system fonts tried, in order, before the
// embedded font.
var PlatformFontPaths = []string{
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
}

// Request describes one icon.
type Request struct {
	DisplayName string
	Glyph       string
	Background  generator.RGB
	Foreground  generator.RGB
	Size        int

	// FontPaths is the ordered list of font files to try before the
	// embedded font. A nil slice means PlatformFontPaths; an empty,
	// non-nil slice skips straight to the embedded font.
	FontPaths []string
}

// NewRequest returns a request with a white foreground and the default size.
func NewRequest(name, glyph string, bg generator.RGB) Request {
	return Request{
		DisplayName: name,
		Glyph:       glyph,
		Background:  bg,
		Foreground:  generator.White,
		Size:        DefaultSize,
	}
}

// Validate reports whether the request can be rendered.
func (r Request) Validate() error {
	if r.Size <= 0 {
		return fmt.Errorf("invalid icon size %d: must be positive", r.Size)
	}
	return nil
}

// fontSources builds the fallback chain for this request.
func (r Request) fontSources() []FontSource {
	paths := r.FontPaths
	if paths == nil {
		paths = PlatformFontPaths
	}
	sources := make([]FontSource, 0, len(paths)+1)
	for _, p := range paths {
		sources = append(sources, FileFont(p, FontScale))
	}
	return append(sources, BuiltinFont(BuiltinFontScale))
}
