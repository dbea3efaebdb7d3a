// ABOUTME: Per-controller option set; every field is independently optional
// ABOUTME: Unset fields resolve against the nearest ancestor or built-in defaults

package waiting

import (
	"context"
	"reflect"
	"time"

	"github.com/devobs/waiting-indicator/pkg/tui"
	"github.com/devobs/waiting-indicator/pkg/tui/theme"
)

// IndicatorBuilder produces the busy indicator component for a controller.
type IndicatorBuilder func(th *theme.Theme) tui.Component

// CompositorFunc composes the overlay layer. progress is the animated
// opacity in [0,1]; showChild reports whether the underlying content stays
// visible beneath the indicator.
type CompositorFunc func(progress float64, indicator, child tui.Component, showChild bool) tui.Component

// Operation is a tracked asynchronous operation passed to Wait.
type Operation func(ctx context.Context) (any, error)

// WrapperFunc wraps every tracked operation; the extension point for
// cross-cutting handling such as application-wide error presentation.
type WrapperFunc func(ctx context.Context, op Operation) (any, error)

// Options configures one controller. Nil fields are unset and resolve
// through inheritance; see Config.
type Options struct {
	// Indicator overrides the busy indicator. Supplying one also flips the
	// default of Inherit to false.
	Indicator IndicatorBuilder

	// Compositor overrides how the overlay layer is composed.
	Compositor CompositorFunc

	// CallWrapper wraps every operation passed to Wait.
	CallWrapper WrapperFunc

	// DisplayChildWhileWaiting keeps the underlying content visible
	// beneath the indicator. Default true.
	DisplayChildWhileWaiting *bool

	// Duration of the fade transition. Default 300ms.
	Duration *time.Duration

	// Inherit controls whether unset fields copy the nearest ancestor's
	// resolved values. Default: true unless Indicator is set.
	Inherit *bool

	// Waiting forces the overlay visible independently of Wait activity.
	// Not inherited.
	Waiting bool
}

// Ptr is a convenience for the pointer-typed option fields.
func Ptr[T any](v T) *T { return &v }

// inherits applies the default rule: inherit unless an explicit indicator
// was supplied.
func (o Options) inherits() bool {
	if o.Inherit != nil {
		return *o.Inherit
	}
	return o.Indicator == nil
}

// equal compares options field by field. Function fields compare by
// identity, which is what re-resolution cares about: a caller swapping in
// a different wrapper must trigger a recompute.
func (o Options) equal(p Options) bool {
	return sameFunc(o.Indicator, p.Indicator) &&
		sameFunc(o.Compositor, p.Compositor) &&
		sameFunc(o.CallWrapper, p.CallWrapper) &&
		samePtr(o.DisplayChildWhileWaiting, p.DisplayChildWhileWaiting) &&
		samePtr(o.Duration, p.Duration) &&
		samePtr(o.Inherit, p.Inherit) &&
		o.Waiting == p.Waiting
}

func sameFunc(a, b any) bool {
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.IsNil() || bv.IsNil() {
		return av.IsNil() == bv.IsNil()
	}
	return av.Pointer() == bv.Pointer()
}

func samePtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
