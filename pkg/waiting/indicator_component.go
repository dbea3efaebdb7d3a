// ABOUTME: Zero-config component rendering the nearest controller's indicator
// ABOUTME: Falls back to the default indicator when no controller is mounted above

package waiting

import (
	"sync"

	"github.com/devobs/waiting-indicator/pkg/tui"
	"github.com/devobs/waiting-indicator/pkg/tui/theme"
)

// Indicator renders the indicator resolved by the nearest controller
// above its scope. With no controller above, it renders the built-in
// default; that is a fallback, not an error.
type Indicator struct {
	scope *Scope

	mu    sync.Mutex
	built tui.Component
	ver   uint64
	ok    bool
}

// NewIndicator creates an Indicator bound to s.
func NewIndicator(s *Scope) *Indicator {
	return &Indicator{scope: s}
}

func (n *Indicator) component() tui.Component {
	var (
		builder IndicatorBuilder = DefaultIndicator
		ver     uint64
	)
	if c, found := n.scope.Nearest(); found {
		cfg := c.Config()
		builder = cfg.Indicator
		ver = c.configVersion()
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.ok || n.ver != ver {
		n.built = builder(theme.Current())
		n.ver = ver
		n.ok = true
	}
	return n.built
}

// Render draws the resolved indicator.
func (n *Indicator) Render(out *tui.RenderBuffer, w int) {
	n.component().Render(out, w)
}

// Tick forwards the frame clock to the underlying indicator when it
// animates, so an enclosing layer can drive it.
func (n *Indicator) Tick() {
	if tk, ok := n.component().(tui.Ticking); ok {
		tk.Tick()
	}
}

// Invalidate forces a rebuild on the next render.
func (n *Indicator) Invalidate() {
	n.mu.Lock()
	n.ok = false
	n.mu.Unlock()
}
