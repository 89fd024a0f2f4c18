// png.go — PNG and SVG file writers.
package generator

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// writePNG encodes img to a PNG file at the given path, replacing any
// existing file. An opaque *image.RGBA is written as 8-bit RGB.
func writePNG(output string, img image.Image) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode PNG %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}
	return nil
}

// writeVector runs render against a freshly created file at output.
func writeVector(output string, render func(io.Writer) error) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}

	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("write SVG %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}
	return nil
}
