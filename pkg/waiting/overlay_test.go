// ABOUTME: Tests for the Overlay and Indicator components: compositing paths and fallback
// ABOUTME: Uses a static mock child and zero or long durations for determinism

package waiting

import (
	"strings"
	"testing"
	"time"

	"github.com/devobs/waiting-indicator/pkg/tui"
	"github.com/devobs/waiting-indicator/pkg/tui/width"
)

type staticChild struct {
	lines []string
}

func (s *staticChild) Render(out *tui.RenderBuffer, _ int) {
	out.WriteLines(s.lines)
}

func (s *staticChild) Invalidate() {}

func renderToLines(c tui.Component, w int) []string {
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	c.Render(buf, w)
	out := make([]string, len(buf.Lines))
	copy(out, buf.Lines)
	return out
}

func containsVisible(lines []string, want string) bool {
	for _, l := range lines {
		if strings.Contains(width.StripANSI(l), want) {
			return true
		}
	}
	return false
}

func TestOverlay_IdleHiddenRendersChildOnly(t *testing.T) {
	t.Parallel()

	o := NewOverlay(NewScope(nil), Options{}, func(*Scope) tui.Component {
		return &staticChild{lines: []string{"content-a", "content-b"}}
	})
	defer o.Close()

	lines := renderToLines(o, 40)
	if len(lines) != 2 || lines[0] != "content-a" || lines[1] != "content-b" {
		t.Errorf("idle-hidden output = %v, want the raw child lines", lines)
	}
}

func TestOverlay_WaitingHidesChildWhenConfigured(t *testing.T) {
	t.Parallel()

	o := NewOverlay(NewScope(nil), Options{
		DisplayChildWhileWaiting: Ptr(false),
		Duration:                 Ptr(time.Duration(0)), // settle instantly
	}, func(*Scope) tui.Component {
		return &staticChild{lines: []string{"secret"}}
	})
	defer o.Close()

	o.Controller().SetWaiting(true)
	lines := renderToLines(o, 40)
	if containsVisible(lines, "secret") {
		t.Error("content must be absent while waiting with displayChild=false")
	}

	o.Controller().SetWaiting(false)
	lines = renderToLines(o, 40)
	if !containsVisible(lines, "secret") {
		t.Error("content must return once waiting ends")
	}
}

func TestOverlay_ChildStaysWhileAnimating(t *testing.T) {
	t.Parallel()

	// A long fade keeps the transition animating for the whole test.
	o := NewOverlay(NewScope(nil), Options{
		DisplayChildWhileWaiting: Ptr(false),
		Duration:                 Ptr(time.Hour),
	}, func(*Scope) tui.Component {
		return &staticChild{lines: []string{"alpha", "beta", "gamma"}}
	})
	defer o.Close()

	o.Controller().SetWaiting(true)
	lines := renderToLines(o, 40)
	if !containsVisible(lines, "alpha") {
		t.Error("content stays mounted mid-fade so it does not pop out abruptly")
	}
}

func TestOverlay_WaitingShowsIndicatorOverChild(t *testing.T) {
	t.Parallel()

	o := NewOverlay(NewScope(nil), Options{
		Duration: Ptr(time.Duration(0)),
	}, func(*Scope) tui.Component {
		return &staticChild{lines: []string{"row0", "row1", "row2"}}
	})
	defer o.Close()

	o.Controller().SetWaiting(true)
	lines := renderToLines(o, 40)
	if len(lines) != 3 {
		t.Fatalf("overlay output has %d rows, want the child's 3", len(lines))
	}
	// Middle row carries the indicator band; outer rows keep the child.
	if !containsVisible(lines[:1], "row0") || !containsVisible(lines[2:], "row2") {
		t.Errorf("child rows missing around the indicator band: %v", lines)
	}
	if containsVisible(lines[1:2], "row1") {
		t.Errorf("middle row should be the indicator band, got %q", lines[1])
	}
}

func TestOverlay_CustomCompositorReceivesState(t *testing.T) {
	t.Parallel()

	var gotProgress float64
	var gotShowChild bool
	o := NewOverlay(NewScope(nil), Options{
		Duration: Ptr(time.Duration(0)),
		Compositor: func(progress float64, indicator, child tui.Component, showChild bool) tui.Component {
			gotProgress = progress
			gotShowChild = showChild
			return child
		},
	}, func(*Scope) tui.Component {
		return &staticChild{lines: []string{"x"}}
	})
	defer o.Close()

	o.Controller().SetWaiting(true)
	_ = renderToLines(o, 20)
	if gotProgress != 1 || !gotShowChild {
		t.Errorf("compositor saw progress=%v showChild=%v, want 1 and true", gotProgress, gotShowChild)
	}
}

func TestOverlay_NestedWaitResolvesInner(t *testing.T) {
	t.Parallel()

	var innerScope *Scope
	outer := NewOverlay(NewScope(nil), Options{}, func(s *Scope) tui.Component {
		inner := NewOverlay(s, Options{Duration: Ptr(time.Duration(0))}, func(is *Scope) tui.Component {
			innerScope = is
			return &staticChild{lines: []string{"leaf"}}
		})
		return inner
	})
	defer outer.Close()

	got, ok := innerScope.Nearest()
	if !ok {
		t.Fatal("leaf scope should find a controller")
	}
	if got == outer.Controller() {
		t.Error("leaf should resolve the inner controller, not the outer one")
	}
}

func TestOverlay_StepTicksIndicator(t *testing.T) {
	t.Parallel()

	o := NewOverlay(NewScope(nil), Options{Duration: Ptr(time.Hour)}, nil)
	defer o.Close()

	o.Controller().SetWaiting(true)
	before := renderToLines(o, 20)
	if !o.step(time.Second, nil) {
		t.Fatal("step should keep the clock running while animating")
	}
	after := renderToLines(o, 20)
	if len(before) == 0 || len(after) == 0 {
		t.Fatal("expected rendered output")
	}
	// The spinner frame advanced, so the indicator band changed.
	if before[len(before)/2] == after[len(after)/2] {
		t.Error("step should advance the indicator animation")
	}
}

func TestOverlay_StepStopsWhenIdleHidden(t *testing.T) {
	t.Parallel()

	o := NewOverlay(NewScope(nil), Options{Duration: Ptr(50 * time.Millisecond)}, nil)
	defer o.Close()

	o.Controller().SetWaiting(true)
	o.step(time.Second, nil) // settle shown
	o.Controller().SetWaiting(false)
	if keep := o.step(time.Second, nil); keep {
		t.Error("the clock must stop once the layer settles idle-hidden")
	}
}

type inputChild struct {
	staticChild
	got string
}

func (c *inputChild) HandleInput(data string) bool {
	c.got = data
	return true
}

func TestOverlay_ForwardsInputToChild(t *testing.T) {
	t.Parallel()

	child := &inputChild{}
	o := NewOverlay(NewScope(nil), Options{}, func(*Scope) tui.Component { return child })
	defer o.Close()

	if !o.HandleInput("a") {
		t.Error("overlay should report the child's consumption")
	}
	if child.got != "a" {
		t.Errorf("child got %q, want %q", child.got, "a")
	}
}

func TestOverlay_StopReleasesClockHandle(t *testing.T) {
	t.Parallel()

	o := NewOverlay(NewScope(nil), Options{}, nil)
	defer o.Close()

	// Act as the clock goroutine: own the handle, fade out to settled.
	stop := make(chan struct{})
	o.mu.Lock()
	o.fade.retarget(true, 0)
	o.fade.retarget(false, 10*time.Millisecond)
	o.tickStop = stop
	o.mu.Unlock()

	if keep := o.step(time.Second, stop); keep {
		t.Fatal("the clock must stop once the layer settles idle-hidden")
	}
	o.mu.Lock()
	released := o.tickStop == nil
	o.mu.Unlock()
	if !released {
		t.Fatal("a stopping step must release the clock handle in the same critical section")
	}

	// A waiting flip straight after the stop must see no handle and
	// start a fresh clock, or the fade would animate untick'd.
	o.Controller().SetWaiting(true)
	o.mu.Lock()
	restarted := o.tickStop != nil
	o.mu.Unlock()
	if !restarted {
		t.Error("waiting flip after the clock stopped should start a fresh clock")
	}
}

func TestIndicator_FallsBackWithoutController(t *testing.T) {
	t.Parallel()

	ind := NewIndicator(NewScope(nil))
	lines := renderToLines(ind, 20)
	if len(lines) != 1 {
		t.Fatalf("default indicator rendered %d lines, want 1", len(lines))
	}
	if width.StripANSI(lines[0]) == "" {
		t.Error("default indicator should render a visible frame")
	}
}

func TestIndicator_UsesNearestControllerBuilder(t *testing.T) {
	t.Parallel()

	o := NewOverlay(NewScope(nil), Options{Indicator: markerIndicator}, nil)
	defer o.Close()

	ind := NewIndicator(o.Controller().Scope())
	lines := renderToLines(ind, 40)
	if !containsVisible(lines, "marker") {
		t.Errorf("indicator should use the controller's builder, got %v", lines)
	}
}
