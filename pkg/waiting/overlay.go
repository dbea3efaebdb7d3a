// ABOUTME: Overlay component: mounts a controller, publishes it to its subtree,
// ABOUTME: and composites the fading indicator layer driven by its own frame clock

package waiting

import (
	"sync"
	"time"

	"github.com/devobs/waiting-indicator/pkg/tui"
	"github.com/devobs/waiting-indicator/pkg/tui/theme"
)

// frameInterval is the animation clock period.
const frameInterval = 80 * time.Millisecond

// Overlay is the waiting-overlay component. It owns a Controller, builds
// its child with a scope that publishes that controller, and fades a busy
// indicator over (or instead of) the child while the controller waits.
type Overlay struct {
	ctrl  *Controller
	child tui.Component

	mu           sync.Mutex
	fade         fade
	indicator    tui.Component
	indicatorVer uint64
	indicatorSet bool
	tickStop     chan struct{}
	closed       bool
}

// NewOverlay mounts a controller under s and builds the child with the
// controller's subtree scope, so nested Wait calls and nested overlays
// resolve it as their nearest. A nil build yields an empty child.
func NewOverlay(s *Scope, opts Options, build func(*Scope) tui.Component) *Overlay {
	o := &Overlay{}
	o.ctrl = newController(s, opts)
	o.ctrl.onWaiting = o.waitingChanged
	if build != nil {
		o.child = build(o.ctrl.Scope())
	} else {
		o.child = tui.NewContainer()
	}
	o.ctrl.Mount()
	if o.ctrl.Waiting() {
		o.waitingChanged(true)
	}
	return o
}

// Controller returns the overlay's controller.
func (o *Overlay) Controller() *Controller {
	return o.ctrl
}

// SetOptions updates the controller's options; see Controller.SetOptions.
func (o *Overlay) SetOptions(opts Options) {
	o.ctrl.SetOptions(opts)
}

// Close unmounts the controller and stops the frame clock. In-flight
// operations still deliver results; further visual updates are no-ops.
func (o *Overlay) Close() {
	o.ctrl.Unmount()
	o.mu.Lock()
	o.closed = true
	stop := o.tickStop
	o.tickStop = nil
	o.mu.Unlock()
	if stop != nil {
		close(stop)
	}
}

// waitingChanged redirects the fade whenever the logical waiting flag
// flips, and makes sure the frame clock runs while a layer is visible.
func (o *Overlay) waitingChanged(show bool) {
	cfg := o.ctrl.Config()
	o.mu.Lock()
	o.fade.retarget(show, cfg.Duration)
	o.startClockLocked()
	o.mu.Unlock()
	o.ctrl.parent.requestRender()
}

// startClockLocked launches the frame clock if a layer needs compositing
// and no clock is running. Caller holds o.mu.
func (o *Overlay) startClockLocked() {
	if o.closed || o.tickStop != nil || !o.fade.needsLayer() {
		return
	}
	stop := make(chan struct{})
	o.tickStop = stop
	go o.runClock(stop)
}

func (o *Overlay) runClock(stop chan struct{}) {
	t := time.NewTicker(frameInterval)
	defer t.Stop()
	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-t.C:
			if !o.step(now.Sub(last), stop) {
				return
			}
			last = now
		}
	}
}

// step advances the animation by dt, ticks the indicator, and reports
// whether the clock should keep running. The clock stops once the layer
// settles idle-hidden; the stop decision and the release of the clock
// handle happen in the same critical section, so a waiting flip landing
// just after sees no clock and starts a fresh one.
func (o *Overlay) step(dt time.Duration, stop chan struct{}) bool {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return false
	}
	o.fade.advance(dt)
	if tk, ok := o.indicator.(tui.Ticking); ok && o.fade.needsLayer() {
		tk.Tick()
	}
	keep := o.fade.needsLayer()
	if !keep && stop != nil && o.tickStop == stop {
		o.tickStop = nil
	}
	o.mu.Unlock()
	o.ctrl.parent.requestRender()
	return keep
}

// Render composites the child, and the indicator layer while one is
// needed. When idle-hidden only the child renders, so no stale layer can
// sit over the content.
func (o *Overlay) Render(out *tui.RenderBuffer, w int) {
	cfg := o.ctrl.Config()
	ind := o.indicatorFor(cfg)

	o.mu.Lock()
	need := o.fade.needsLayer()
	progress := o.fade.opacity()
	showChild := o.fade.showChild(cfg.DisplayChildWhileWaiting)
	o.mu.Unlock()

	if !need {
		o.child.Render(out, w)
		return
	}
	cfg.Compositor(progress, ind, o.child, showChild).Render(out, w)
}

// indicatorFor returns the indicator component, rebuilding it when the
// controller's configuration chain changed since it was built.
func (o *Overlay) indicatorFor(cfg Config) tui.Component {
	ver := o.ctrl.configVersion()
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.indicatorSet || o.indicatorVer != ver {
		o.indicator = cfg.Indicator(theme.Current())
		o.indicatorVer = ver
		o.indicatorSet = true
	}
	return o.indicator
}

// HandleInput forwards input to the child; the layer never consumes it.
func (o *Overlay) HandleInput(data string) bool {
	if h, ok := o.child.(tui.InputHandler); ok {
		return h.HandleInput(data)
	}
	return false
}

// Invalidate invalidates the child and forces an indicator rebuild.
func (o *Overlay) Invalidate() {
	o.child.Invalidate()
	o.mu.Lock()
	o.indicatorSet = false
	o.mu.Unlock()
}
