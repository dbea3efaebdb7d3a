// ABOUTME: Semantic color theme types: Color, Palette, Theme
// ABOUTME: Colors are hex values rendered through lipgloss; Blend interpolates via go-colorful

package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a terminal color as a hex string like "#89b4fa".
// The zero value applies no styling.
type Color string

// Apply styles text with the color as foreground.
// If the color is empty, the text is returned unchanged.
func (c Color) Apply(text string) string {
	if c == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(c))).Render(text)
}

// ApplyOn styles text with the color as foreground over bg as background.
func (c Color) ApplyOn(bg Color, text string) string {
	style := lipgloss.NewStyle()
	if c != "" {
		style = style.Foreground(lipgloss.Color(string(c)))
	}
	if bg != "" {
		style = style.Background(lipgloss.Color(string(bg)))
	}
	return style.Render(text)
}

// Blend interpolates toward another color. t=0 returns c, t=1 returns to.
// Blending happens in Luv space, which keeps intermediate steps perceptually
// even; invalid hex values pass through unchanged.
func (c Color) Blend(to Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return to
	}
	from, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	target, err := colorful.Hex(string(to))
	if err != nil {
		return c
	}
	return Color(from.BlendLuv(target, t).Clamped().Hex())
}

// Palette holds the semantic colors the overlay components draw with.
type Palette struct {
	Text       Color
	Muted      Color
	Accent     Color
	Success    Color
	Error      Color
	Background Color
	Backdrop   Color
}

// Theme pairs a palette with a name for selection in settings.
type Theme struct {
	Name    string
	Palette Palette
}
