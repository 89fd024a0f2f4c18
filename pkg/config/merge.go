// merge.go — Layer icon settings: defaults, then file, then explicit flags.
package config

// Merge overlays the non-zero fields of over onto base.
// A preset in over clears a size inherited from base, so the higher layer's
// choice of dimensions wins whichever way it was expressed.
func Merge(base, over File) File {
	result := base
	if over.Name != "" {
		result.Name = over.Name
	}
	if over.Glyph != "" {
		result.Glyph = over.Glyph
	}
	if over.Background != nil {
		result.Background = over.Background
	}
	if over.Foreground != nil {
		result.Foreground = over.Foreground
	}
	if over.Preset != "" {
		result.Preset = over.Preset
		if over.Size == 0 {
			result.Size = 0
		}
	}
	if over.Size > 0 {
		result.Size = over.Size
	}
	if over.Output != "" {
		result.Output = over.Output
	}
	if over.Fonts != nil {
		result.Fonts = over.Fonts // replace, not append
	}
	return result
}
