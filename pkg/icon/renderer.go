// renderer.go - Raster icon rendering. Layers: solid background, then the
// glyph in the resolved font, centered on its bounding box.
package icon

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/xob0t/appicon/pkg/generator"
)

// Render draws the icon described by req. The returned image is opaque
// and req.Size pixels square. Font loading never fails the render; the
// FontChoice reports which source was used.
func Render(req Request) (*image.RGBA, FontChoice, error) {
	if err := req.Validate(); err != nil {
		return nil, FontChoice{}, err
	}

	img := generator.NewSolidImage(req.Size, req.Size, req.Background.RGBA())

	face, choice := ResolveFont(req.fontSources(), req.Size)
	defer face.Close()

	x, y := CenterOrigin(req.Size, MeasureGlyph(face, req.Glyph))
	drawString(img, req.Glyph, x, y, req.Foreground, face)

	return img, choice, nil
}

// drawString draws text with its origin at (x, y).
func drawString(img *image.RGBA, text string, x, y float64, col generator.RGB, face font.Face) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col.RGBA()),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	drawer.DrawString(text)
}
