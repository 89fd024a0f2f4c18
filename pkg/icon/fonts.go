// fonts.go - Font fallback chain. Uses golang.org/x/image/font for OpenType
// rendering. System fonts are tried first; the embedded Go Bold font is the
// guaranteed last step.
package icon

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// ErrFontUnavailable is returned by a FontSource that cannot produce a face.
var ErrFontUnavailable = errors.New("font unavailable")

// FontChoice records which source produced the face used for a render.
type FontChoice struct {
	Source  string
	Size    float64
	Builtin bool
}

// FontSource loads a face for a canvas of the given edge length in pixels.
type FontSource func(canvas int) (font.Face, FontChoice, error)

// FileFont loads the font file at path, sized at scale × canvas. Font
// collections (.ttc, .otc) are accepted; the first face is used.
func FileFont(path string, scale float64) FontSource {
	return func(canvas int) (font.Face, FontChoice, error) {
		choice := FontChoice{Source: path, Size: fontSize(canvas, scale)}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, choice, fmt.Errorf("%w: %w", ErrFontUnavailable, err)
		}
		parsed, err := parseFont(data)
		if err != nil {
			return nil, choice, fmt.Errorf("%w: parse %s: %w", ErrFontUnavailable, path, err)
		}
		face, err := newFace(parsed, choice.Size)
		if err != nil {
			return nil, choice, fmt.Errorf("%w: %s: %w", ErrFontUnavailable, path, err)
		}
		return face, choice, nil
	}
}

// BuiltinFont uses the embedded Go Bold font, sized at scale × canvas.
func BuiltinFont(scale float64) FontSource {
	return func(canvas int) (font.Face, FontChoice, error) {
		choice := FontChoice{Source: "gobold", Size: fontSize(canvas, scale), Builtin: true}

		parsed, err := opentype.Parse(gobold.TTF)
		if err != nil {
			return nil, choice, fmt.Errorf("%w: parse embedded font: %w", ErrFontUnavailable, err)
		}
		face, err := newFace(parsed, choice.Size)
		if err != nil {
			return nil, choice, fmt.Errorf("%w: embedded font: %w", ErrFontUnavailable, err)
		}
		return face, choice, nil
	}
}

// ResolveFont returns the face from the first source that succeeds. It never
// fails: when every source is unavailable it returns the fixed 7x13 bitmap face.
func ResolveFont(sources []FontSource, canvas int) (font.Face, FontChoice) {
	for _, src := range sources {
		face, choice, err := src(canvas)
		if err != nil {
			slog.Debug("Skipping font", "source", choice.Source, "error", err)
			continue
		}
		slog.Debug("Using font", "source", choice.Source, "size", choice.Size)
		return face, choice
	}

	slog.Warn("No scalable font available, using 7x13 bitmap face")
	return basicfont.Face7x13, FontChoice{Source: "basicfont", Size: 13, Builtin: true}
}

func parseFont(data []byte) (*opentype.Font, error) {
	// ParseCollection also accepts a single TTF/OTF as a collection of one.
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	if coll.NumFonts() == 0 {
		return nil, errors.New("empty font collection")
	}
	return coll.Font(0)
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// fontSize truncates to whole pixels and never returns less than one.
func fontSize(canvas int, scale float64) float64 {
	return float64(max(int(float64(canvas)*scale), 1))
}
