// color.go — RGB color values, parsing and solid canvas creation.
package generator

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// White is the default foreground color.
var White = RGB{255, 255, 255}

// ParseRGB parses a color string. Accepts "#rrggbb", "#rgb", a decimal
// "r,g,b" triplet, or "random".
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return RGB{}, fmt.Errorf("empty color")
	case s == "random":
		r, g, b := colorful.HappyColor().RGB255()
		return RGB{r, g, b}, nil
	case strings.Contains(s, ","):
		return parseTriplet(s)
	}

	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: expected #rrggbb, #rgb or r,g,b", s)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

func parseTriplet(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("invalid color %q: expected 3 channels", s)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid channel %d in %q: %w", i, s, err)
		}
		ch[i] = uint8(v)
	}
	return RGB{ch[0], ch[1], ch[2]}, nil
}

// RGBA returns the color with full alpha.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText implements encoding.TextMarshaler.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, used by the JSON and
// YAML config loaders.
func (c *RGB) UnmarshalText(text []byte) error {
	v, err := ParseRGB(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalFlag implements flags.Marshaler.
func (c RGB) MarshalFlag() (string, error) {
	return c.String(), nil
}

// UnmarshalFlag implements flags.Unmarshaler.
func (c *RGB) UnmarshalFlag(value string) error {
	return c.UnmarshalText([]byte(value))
}

// NewSolidImage creates a uniform solid-color image using draw.Draw (O(1) fill).
func NewSolidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}
