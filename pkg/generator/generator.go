// Package generator writes rendered icons to disk.
//
// All output follows one pipeline: the caller renders first, then the
// result is written as PNG or SVG depending on the output extension.
package generator

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Config holds what to write. Image is required for ".png", Vector for ".svg".
type Config struct {
	Image  image.Image
	Vector func(w io.Writer) error
}

// Generate creates the output file, creating parent directories as needed.
// The format is inferred from the file extension:
//   - ".png" → PNG image
//   - ".svg" → SVG document
//
// It returns the path written.
func Generate(output string, cfg Config) (string, error) {
	ext := strings.ToLower(filepath.Ext(output))
	if err := checkFormat(ext, cfg); err != nil {
		return "", err
	}

	if err := EnsureDir(filepath.Dir(output)); err != nil {
		return "", err
	}

	switch ext {
	case ".png":
		return output, writePNG(output, cfg.Image)
	default:
		return output, writeVector(output, cfg.Vector)
	}
}

// GenerateToWriter writes the icon to w. The format is specified by ext (".png" or ".svg").
func GenerateToWriter(w io.Writer, ext string, cfg Config) error {
	ext = strings.ToLower(ext)
	if err := checkFormat(ext, cfg); err != nil {
		return err
	}

	switch ext {
	case ".png":
		return png.Encode(w, cfg.Image)
	default:
		return cfg.Vector(w)
	}
}

// EnsureDir creates dir and any missing parents. It succeeds if dir already exists.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

func checkFormat(ext string, cfg Config) error {
	switch ext {
	case ".png":
		if cfg.Image == nil {
			return errors.New("png output requires a rendered image")
		}
	case ".svg":
		if cfg.Vector == nil {
			return errors.New("svg output requires a vector renderer")
		}
	default:
		return fmt.Errorf("unsupported format %q: use .png or .svg", ext)
	}
	return nil
}
