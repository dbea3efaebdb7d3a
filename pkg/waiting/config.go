// ABOUTME: Fully-resolved controller configuration and the per-field resolver
// ABOUTME: Each field falls back independently: explicit, then ancestor, then default

package waiting

import (
	"context"
	"time"
)

// DefaultDuration is the fade transition length when no controller in the
// chain overrides it.
const DefaultDuration = 300 * time.Millisecond

// Config is a controller's fully-populated configuration snapshot.
// Every field holds a usable value; no field is nil.
type Config struct {
	Indicator                IndicatorBuilder
	Compositor               CompositorFunc
	CallWrapper              WrapperFunc
	DisplayChildWhileWaiting bool
	Duration                 time.Duration
}

// identityWrapper invokes the operation with no extra handling.
func identityWrapper(ctx context.Context, op Operation) (any, error) {
	return op(ctx)
}

// resolveConfig produces a Config from explicit options and an optional
// already-resolved parent config. Each field resolves independently, so a
// controller can override only the duration while inheriting the rest.
func resolveConfig(opts Options, parent *Config) Config {
	cfg := Config{
		Indicator:                DefaultIndicator,
		Compositor:               DefaultCompositor,
		CallWrapper:              identityWrapper,
		DisplayChildWhileWaiting: true,
		Duration:                 DefaultDuration,
	}
	if parent != nil {
		cfg = *parent
	}
	if opts.Indicator != nil {
		cfg.Indicator = opts.Indicator
	}
	if opts.Compositor != nil {
		cfg.Compositor = opts.Compositor
	}
	if opts.CallWrapper != nil {
		cfg.CallWrapper = opts.CallWrapper
	}
	if opts.DisplayChildWhileWaiting != nil {
		cfg.DisplayChildWhileWaiting = *opts.DisplayChildWhileWaiting
	}
	if opts.Duration != nil {
		cfg.Duration = *opts.Duration
	}
	return cfg
}
