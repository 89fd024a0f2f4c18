package icon

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// BBox is a glyph's tight bounding box in pixels, relative to a draw
// origin at (0,0). Top is usually negative: the origin is on the baseline.
type BBox struct {
	Left, Top, Right, Bottom float64
}

// Width returns Right - Left.
func (b BBox) Width() float64 { return b.Right - b.Left }

// Height returns Bottom - Top.
func (b BBox) Height() float64 { return b.Bottom - b.Top }

// MeasureGlyph returns the bounds of text drawn with face at the origin.
func MeasureGlyph(face font.Face, text string) BBox {
	bounds, _ := font.BoundString(face, text)
	return BBox{
		Left:   fromFixed(bounds.Min.X),
		Top:    fromFixed(bounds.Min.Y),
		Right:  fromFixed(bounds.Max.X),
		Bottom: fromFixed(bounds.Max.Y),
	}
}

// CenterOrigin returns the draw origin that centers a glyph with bounds b
// on a size×size canvas. Subtracting b.Top aligns the glyph's visual
// center, not its baseline, with the canvas center.
func CenterOrigin(size int, b BBox) (x, y float64) {
	x = (float64(size) - b.Width()) / 2
	y = (float64(size)-b.Height())/2 - b.Top
	return x, y
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
