package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xob0t/appicon/pkg/generator"
	"github.com/xob0t/appicon/pkg/icon"
)

func rgb(r, g, b uint8) *generator.RGB {
	return &generator.RGB{R: r, G: g, B: b}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{
		"name": "Medtime",
		"glyph": "💊",
		"background": "#4caf50",
		"foreground": "255,255,255",
		"size": 256,
		"fonts": ["/opt/fonts/Inter-Bold.ttf"],
		"colour": "red"
	}`)

	f, warnings, err := Parse(data, ".json")
	require.NoError(t, err)
	require.Equal(t, "Medtime", f.Name)
	require.Equal(t, "💊", f.Glyph)
	require.Equal(t, rgb(76, 175, 80), f.Background)
	require.Equal(t, rgb(255, 255, 255), f.Foreground)
	require.Equal(t, 256, f.Size)
	require.Equal(t, []string{"/opt/fonts/Inter-Bold.ttf"}, f.Fonts)
	require.Equal(t, []string{`unknown key "colour" — ignored`}, warnings)
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
name: Medtime
glyph: M
background: "#4caf50"
foreground: 0,0,0
preset: ios
output: build/icon.png
`)

	f, warnings, err := Parse(data, ".yml")
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, rgb(76, 175, 80), f.Background)
	require.Equal(t, rgb(0, 0, 0), f.Foreground)
	require.Equal(t, "ios", f.Preset)
	require.Equal(t, "build/icon.png", f.OutputPath())
}

func TestParseErrors(t *testing.T) {
	_, _, err := Parse([]byte(`{"background": "not-a-color"}`), ".json")
	require.Error(t, err)

	_, _, err = Parse([]byte(`{`), ".json")
	require.Error(t, err)

	_, _, err = Parse([]byte(`name = "x"`), ".toml")
	require.ErrorContains(t, err, "unsupported config format")

	_, _, err = Parse([]byte(`{"background": "#4caf50", "size": 0}`), ".json")
	require.ErrorContains(t, err, "invalid size 0")

	_, _, err = Parse([]byte("size: -12\n"), ".yaml")
	require.ErrorContains(t, err, "invalid size -12")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.json")
	require.NoError(t, os.WriteFile(path, []byte(ExampleJSON()), 0644))

	f, warnings, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, warnings)

	req, err := f.Request()
	require.NoError(t, err)
	require.Equal(t, "Medtime", req.DisplayName)
	require.Equal(t, "💊", req.Glyph)
	require.Equal(t, generator.RGB{R: 76, G: 175, B: 80}, req.Background)
	require.Equal(t, generator.White, req.Foreground)
	require.Equal(t, 512, req.Size)
	require.Equal(t, DefaultOutput, f.OutputPath())

	_, _, err = Load(filepath.Join(dir, "missing.json"))
	require.ErrorContains(t, err, "missing.json")
}

func TestRequest(t *testing.T) {
	tests := []struct {
		name     string
		file     File
		wantSize int
		wantFG   generator.RGB
	}{
		{"defaults", File{Glyph: "M", Background: rgb(1, 2, 3)}, icon.DefaultSize, generator.White},
		{"explicit size", File{Glyph: "M", Background: rgb(1, 2, 3), Size: 128}, 128, generator.White},
		{"preset", File{Glyph: "M", Background: rgb(1, 2, 3), Preset: "ios"}, 1024, generator.White},
		{"size wins over preset", File{Glyph: "M", Background: rgb(1, 2, 3), Size: 64, Preset: "ios"}, 64, generator.White},
		{"foreground", File{Glyph: "M", Background: rgb(1, 2, 3), Foreground: rgb(9, 9, 9)}, icon.DefaultSize, generator.RGB{R: 9, G: 9, B: 9}},
		{"no glyph", File{Background: rgb(1, 2, 3)}, icon.DefaultSize, generator.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.file.Request()
			require.NoError(t, err)
			require.Equal(t, tt.wantSize, req.Size)
			require.Equal(t, tt.wantFG, req.Foreground)
			require.Nil(t, req.FontPaths)
		})
	}
}

func TestRequestErrors(t *testing.T) {
	tests := []struct {
		name string
		file File
	}{
		{"missing background", File{Glyph: "M"}},
		{"negative size", File{Glyph: "M", Background: rgb(1, 2, 3), Size: -4}},
		{"unknown preset", File{Glyph: "M", Background: rgb(1, 2, 3), Preset: "tv"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.file.Request()
			require.Error(t, err)
		})
	}
}

func TestRequestFonts(t *testing.T) {
	f := File{Glyph: "M", Background: rgb(1, 2, 3), Fonts: []string{"/a.ttf"}}
	req, err := f.Request()
	require.NoError(t, err)
	require.Equal(t, append([]string{"/a.ttf"}, icon.PlatformFontPaths...), req.FontPaths)
}

func TestMerge(t *testing.T) {
	base := File{
		Name:       "Base",
		Glyph:      "B",
		Background: rgb(1, 1, 1),
		Size:       256,
		Output:     "base.png",
		Fonts:      []string{"/base.ttf"},
	}

	got := Merge(base, File{Glyph: "O", Foreground: rgb(2, 2, 2), Fonts: []string{"/over.ttf"}})
	require.Equal(t, "Base", got.Name)
	require.Equal(t, "O", got.Glyph)
	require.Equal(t, rgb(1, 1, 1), got.Background)
	require.Equal(t, rgb(2, 2, 2), got.Foreground)
	require.Equal(t, 256, got.Size)
	require.Equal(t, "base.png", got.Output)
	require.Equal(t, []string{"/over.ttf"}, got.Fonts)

	// A preset in the higher layer clears the inherited size.
	got = Merge(base, File{Preset: "favicon"})
	require.Equal(t, 0, got.Size)
	req, err := got.Request()
	require.NoError(t, err)
	require.Equal(t, 32, req.Size)

	// Unless that layer also sets a size.
	got = Merge(base, File{Preset: "favicon", Size: 48})
	require.Equal(t, 48, got.Size)
}
