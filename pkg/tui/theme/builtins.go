// ABOUTME: Built-in themes and name-based lookup for settings files
// ABOUTME: Unknown names fall back to the default theme

package theme

// DefaultPalette returns the standard dark palette.
func DefaultPalette() Palette {
	return Palette{
		Text:       "#cdd6f4",
		Muted:      "#6c7086",
		Accent:     "#89b4fa",
		Success:    "#a6e3a1",
		Error:      "#f38ba8",
		Background: "#1e1e2e",
		Backdrop:   "#313244",
	}
}

// lightPalette is a variant for light terminal backgrounds.
func lightPalette() Palette {
	return Palette{
		Text:       "#4c4f69",
		Muted:      "#9ca0b0",
		Accent:     "#1e66f5",
		Success:    "#40a02b",
		Error:      "#d20f39",
		Background: "#eff1f5",
		Backdrop:   "#ccd0da",
	}
}

var builtins = map[string]func() Palette{
	"default": DefaultPalette,
	"light":   lightPalette,
}

// Lookup returns the built-in theme with the given name, falling back to
// the default theme when the name is unknown or empty.
func Lookup(name string) *Theme {
	if f, ok := builtins[name]; ok {
		return &Theme{Name: name, Palette: f()}
	}
	return &Theme{Name: "default", Palette: DefaultPalette()}
}
