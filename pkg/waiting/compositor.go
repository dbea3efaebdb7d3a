// ABOUTME: Default overlay compositor: a fading backdrop band with a centered indicator
// ABOUTME: Terminal cells have no alpha, so opacity maps to color interpolation

package waiting

import (
	"strings"

	"github.com/devobs/waiting-indicator/pkg/tui"
	"github.com/devobs/waiting-indicator/pkg/tui/theme"
	uw "github.com/devobs/waiting-indicator/pkg/tui/width"
)

// DefaultCompositor builds the built-in overlay layer. With the child
// visible it paints a backdrop band over the middle rows; with the child
// hidden it fills the whole area with the ambient background color. Both
// blend toward the backdrop color proportionally to progress, which is
// how the fade reads on a terminal.
func DefaultCompositor(progress float64, indicator, child tui.Component, showChild bool) tui.Component {
	return &fadeLayer{
		progress:  progress,
		indicator: indicator,
		child:     child,
		showChild: showChild,
	}
}

type fadeLayer struct {
	progress  float64
	indicator tui.Component
	child     tui.Component
	showChild bool
}

func (f *fadeLayer) Render(out *tui.RenderBuffer, w int) {
	pal := theme.Current().Palette
	band := pal.Background.Blend(pal.Backdrop, f.progress)

	childBuf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(childBuf)
	f.child.Render(childBuf, w)

	rows := childBuf.Len()
	if rows == 0 {
		rows = 1
	}

	base := make([]string, rows)
	if f.showChild {
		copy(base, childBuf.Lines)
	} else {
		fill := theme.Color("").ApplyOn(pal.Background, strings.Repeat(" ", w))
		for i := range base {
			base[i] = fill
		}
	}

	if f.progress > 0 {
		indBuf := tui.AcquireBuffer()
		defer tui.ReleaseBuffer(indBuf)
		f.indicator.Render(indBuf, w)

		start := (rows - indBuf.Len()) / 2
		if start < 0 {
			start = 0
		}
		for i, line := range indBuf.Lines {
			r := start + i
			if r >= rows {
				break
			}
			base[r] = theme.Color("").ApplyOn(band, uw.Center(line, w))
		}
	}

	out.WriteLines(base)
}

func (f *fadeLayer) Invalidate() {
	f.child.Invalidate()
	f.indicator.Invalidate()
}
