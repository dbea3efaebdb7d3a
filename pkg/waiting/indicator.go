// ABOUTME: Default busy indicator: a themed spinner with platform-conditional frames
// ABOUTME: Braille frames everywhere except Windows terminals, which get ASCII

package waiting

import (
	"runtime"
	"sync"

	"github.com/devobs/waiting-indicator/pkg/tui"
	"github.com/devobs/waiting-indicator/pkg/tui/theme"
)

var (
	brailleFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	asciiFrames   = []string{"-", "\\", "|", "/"}
)

// defaultFrames picks the spinner frames for the current platform.
func defaultFrames() []string {
	if runtime.GOOS == "windows" {
		return asciiFrames
	}
	return brailleFrames
}

// Loader is a spinner component. The frame clock advances it via Tick
// while its overlay layer is composited.
type Loader struct {
	mu     sync.Mutex
	frames []string
	frame  int
	label  string
	color  theme.Color
}

// NewLoader creates a Loader with the given label and color.
func NewLoader(label string, color theme.Color) *Loader {
	return &Loader{
		frames: defaultFrames(),
		label:  label,
		color:  color,
	}
}

// SetLabel updates the spinner label.
func (l *Loader) SetLabel(label string) {
	l.mu.Lock()
	l.label = label
	l.mu.Unlock()
}

// Tick advances the spinner to the next frame.
func (l *Loader) Tick() {
	l.mu.Lock()
	l.frame = (l.frame + 1) % len(l.frames)
	l.mu.Unlock()
}

// Render draws the current spinner frame and label.
func (l *Loader) Render(out *tui.RenderBuffer, _ int) {
	l.mu.Lock()
	frame := l.color.Apply(l.frames[l.frame])
	label := l.label
	l.mu.Unlock()

	if label != "" {
		out.WriteLine(frame + " " + label)
	} else {
		out.WriteLine(frame)
	}
}

// Invalidate is a no-op for Loader.
func (l *Loader) Invalidate() {}

// DefaultIndicator builds the built-in busy indicator: a spinner in the
// theme accent color.
func DefaultIndicator(th *theme.Theme) tui.Component {
	return NewLoader("", th.Palette.Accent)
}
