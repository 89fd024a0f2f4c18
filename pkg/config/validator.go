// validator.go — Turn an icon file into a validated render request.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/xob0t/appicon/pkg/icon"
)

// Request resolves presets and defaults and returns a validated request.
func (f File) Request() (icon.Request, error) {
	if f.Background == nil {
		return icon.Request{}, errors.New("background color is required")
	}

	req := icon.NewRequest(f.Name, f.Glyph, *f.Background)
	if f.Foreground != nil {
		req.Foreground = *f.Foreground
	}

	switch {
	case f.Size != 0:
		req.Size = f.Size
	case f.Preset != "":
		size, ok := Presets[f.Preset]
		if !ok {
			return icon.Request{}, fmt.Errorf("unknown preset %q (known: %s)", f.Preset, presetNames())
		}
		req.Size = size
	}

	if len(f.Fonts) > 0 {
		req.FontPaths = append(append([]string{}, f.Fonts...), icon.PlatformFontPaths...)
	}

	if err := req.Validate(); err != nil {
		return icon.Request{}, err
	}
	return req, nil
}

func presetNames() string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
