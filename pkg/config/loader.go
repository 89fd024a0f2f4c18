// loader.go — Load icon files (JSON or YAML).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and parses an icon file. The format is chosen by extension
// (".json", ".yaml", ".yml"). Unknown keys are returned as warnings.
func Load(path string) (*File, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	f, warnings, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, warnings, nil
}

// Parse decodes an icon file in the format named by ext.
func Parse(data []byte, ext string) (*File, []string, error) {
	var (
		f   File
		raw map[string]any
	)

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, nil, err
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, nil, err
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("unsupported config format %q: use .json, .yaml or .yml", ext)
	}

	// An absent size falls back to the preset or default; a present one must be usable.
	if _, ok := raw["size"]; ok && f.Size <= 0 {
		return nil, nil, fmt.Errorf("invalid size %d: must be positive", f.Size)
	}

	return &f, unknownKeys(raw), nil
}

func unknownKeys(raw map[string]any) []string {
	var warnings []string
	for key := range raw {
		if _, ok := knownKeys[key]; !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key %q — ignored", key))
		}
	}
	sort.Strings(warnings)
	return warnings
}
