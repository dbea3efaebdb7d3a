// ABOUTME: Animated visibility state machine: a tween retargeted by the logical waiting flag
// ABOUTME: Tracks whether an overlay layer must be composited at all (animating or shown)

package waiting

import "time"

// fade interpolates a single opacity value between 0 (hidden) and 1
// (shown). Retargeting toward the current target does not restart the
// animation. The zero value is idle-hidden.
type fade struct {
	target    float64
	from      float64
	current   float64
	elapsed   time.Duration
	duration  time.Duration
	animating bool
}

// retarget redirects the tween when the logical waiting flag flips.
// The interpolation starts from the current opacity, so an interrupted
// fade reverses smoothly instead of jumping.
func (f *fade) retarget(show bool, d time.Duration) {
	t := 0.0
	if show {
		t = 1.0
	}
	if t == f.target && (f.animating || f.current == t) {
		return
	}
	f.target = t
	f.from = f.current
	f.elapsed = 0
	f.duration = d
	if d <= 0 {
		f.current = t
		f.animating = false
		return
	}
	f.animating = true
}

// advance moves the tween forward by dt. Completion transitions to the
// corresponding idle state.
func (f *fade) advance(dt time.Duration) {
	if !f.animating {
		return
	}
	f.elapsed += dt
	if f.elapsed >= f.duration {
		f.current = f.target
		f.animating = false
		return
	}
	frac := float64(f.elapsed) / float64(f.duration)
	f.current = f.from + (f.target-f.from)*frac
}

// opacity is the interpolated value in [0,1].
func (f *fade) opacity() float64 {
	return f.current
}

// needsLayer reports whether the overlay layer must be composited:
// while animating in either direction, and while logically shown. When
// idle-hidden the layer is left out entirely so it cannot interfere with
// the content underneath.
func (f *fade) needsLayer() bool {
	return f.animating || f.target == 1.0
}

// showChild applies the child-visibility policy: content stays visible
// when configured to, and always while the transition is still animating
// so it does not pop out mid-fade.
func (f *fade) showChild(displayChildWhileWaiting bool) bool {
	return displayChildWhileWaiting || f.animating
}
