// ABOUTME: Tests for the opacity tween: retargeting, interruption, layer tracking
// ABOUTME: Time advances synthetically; no wall clock involved

package waiting

import (
	"testing"
	"time"
)

func TestFade_ZeroValueIdleHidden(t *testing.T) {
	t.Parallel()

	var f fade
	if f.needsLayer() {
		t.Error("a fresh fade must not need a layer")
	}
	if f.opacity() != 0 {
		t.Error("a fresh fade must be fully transparent")
	}
}

func TestFade_LayerWindow(t *testing.T) {
	t.Parallel()

	const d = 100 * time.Millisecond
	var f fade

	// waiting: false -> true
	f.retarget(true, d)
	if !f.needsLayer() {
		t.Fatal("layer needed from the first toggle")
	}

	f.advance(d)
	if f.animating || f.opacity() != 1 {
		t.Fatalf("after the full duration: animating=%v opacity=%v", f.animating, f.opacity())
	}
	if !f.needsLayer() {
		t.Fatal("idle-shown still composites the layer")
	}

	// waiting: true -> false
	f.retarget(false, d)
	if !f.needsLayer() {
		t.Fatal("layer needed while fading out")
	}
	f.advance(d / 2)
	if !f.needsLayer() || !f.animating {
		t.Fatal("layer needed halfway through the fade-out")
	}
	f.advance(d / 2)
	if f.needsLayer() {
		t.Error("layer must be gone exactly the duration after the second toggle")
	}
	if f.opacity() != 0 {
		t.Errorf("opacity = %v, want 0", f.opacity())
	}
}

func TestFade_NoRestartTowardSameTarget(t *testing.T) {
	t.Parallel()

	const d = 100 * time.Millisecond
	var f fade
	f.retarget(true, d)
	f.advance(d / 2)
	mid := f.opacity()

	f.retarget(true, d)
	if f.opacity() != mid {
		t.Error("retargeting toward the current target must not restart the tween")
	}
	f.advance(d / 2)
	if f.animating {
		t.Error("the original tween should complete on schedule")
	}
}

func TestFade_InterruptedReversesFromCurrent(t *testing.T) {
	t.Parallel()

	const d = 100 * time.Millisecond
	var f fade
	f.retarget(true, d)
	f.advance(d / 2)
	mid := f.opacity()
	if mid <= 0 || mid >= 1 {
		t.Fatalf("expected a mid-fade opacity, got %v", mid)
	}

	f.retarget(false, d)
	if f.opacity() != mid {
		t.Error("reversal starts from the interrupted opacity, not from 1")
	}
	f.advance(d)
	if f.opacity() != 0 || f.needsLayer() {
		t.Error("reversal should settle idle-hidden after a full duration")
	}
}

func TestFade_ZeroDurationSnaps(t *testing.T) {
	t.Parallel()

	var f fade
	f.retarget(true, 0)
	if f.animating || f.opacity() != 1 {
		t.Error("zero duration should snap straight to shown")
	}
	f.retarget(false, 0)
	if f.needsLayer() {
		t.Error("zero duration should snap straight to hidden")
	}
}

func TestFade_ShowChildPolicy(t *testing.T) {
	t.Parallel()

	const d = 100 * time.Millisecond
	var f fade
	f.retarget(true, d)

	if !f.showChild(false) {
		t.Error("content stays visible while the transition is animating")
	}
	f.advance(d)
	if f.showChild(false) {
		t.Error("settled and configured hidden: content must go")
	}
	if !f.showChild(true) {
		t.Error("displayChildWhileWaiting keeps content visible")
	}
}
