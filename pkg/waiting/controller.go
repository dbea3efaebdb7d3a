// ABOUTME: Controller owns the busy flag, result cell, and memoized resolved config
// ABOUTME: Wait toggles busy around the wrapped operation with a deferred, panic-safe reset

package waiting

import (
	"context"
	"errors"
	"sync"

	"github.com/devobs/waiting-indicator/internal/log"
)

// ErrPanicked settles a published future whose operation panicked, so
// result listeners never block on a call that will not return.
var ErrPanicked = errors.New("waiting: operation panicked")

// Controller is one node in the nested-overlay tree. It is created by
// mounting an Overlay component; descendants reach it through the Scope
// published to the subtree.
type Controller struct {
	parent *Scope
	sub    *Scope

	// nearest controller above the mount position, fixed at construction.
	ancestor *Controller

	mu       sync.Mutex
	opts     Options
	version  uint64
	dirty    bool
	resolved *Config
	upstream uint64 // ancestor configVersion the snapshot was resolved against

	busy     bool
	explicit bool
	mounted  bool
	listened bool

	cell resultCell

	// onWaiting observes changes of the logical waiting flag. Set once by
	// the owning Overlay before Mount; invoked outside the mutex and only
	// while mounted.
	onWaiting func(waiting bool)
}

// newController builds an unmounted controller under the given scope.
func newController(s *Scope, opts Options) *Controller {
	c := &Controller{
		parent:   s,
		opts:     opts,
		explicit: opts.Waiting,
		dirty:    true,
	}
	if anc, ok := s.Nearest(); ok {
		c.ancestor = anc
	}
	c.sub = s.child(c)
	return c
}

// Scope returns the scope that publishes this controller to its subtree.
// Children built with it resolve this controller as their nearest.
func (c *Controller) Scope() *Scope {
	return c.sub
}

// Mount marks the controller live. Visual updates are only delivered
// between Mount and Unmount.
func (c *Controller) Mount() {
	c.mu.Lock()
	c.mounted = true
	c.mu.Unlock()
}

// Unmount suppresses all further visual updates. In-flight operations run
// to completion and still deliver results to their callers.
func (c *Controller) Unmount() {
	c.mu.Lock()
	c.mounted = false
	c.mu.Unlock()
}

// Mounted reports whether the controller is live.
func (c *Controller) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted
}

// Busy reports whether a tracked operation is in flight (and no listener
// has taken over busy-state management).
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Waiting is the logical waiting flag: the explicit flag OR busy.
func (c *Controller) Waiting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.explicit || c.busy
}

// SetWaiting sets the explicit waiting flag.
func (c *Controller) SetWaiting(v bool) {
	c.mu.Lock()
	was := c.explicit || c.busy
	c.explicit = v
	now := c.explicit || c.busy
	cb, fire := c.visualLocked(was, now)
	c.mu.Unlock()
	if fire {
		cb(now)
	}
}

// SetOptions replaces the controller's options. Unchanged options are a
// no-op; any field difference invalidates the resolved config snapshot and
// bumps the version seen by inheriting descendants.
func (c *Controller) SetOptions(opts Options) {
	c.mu.Lock()
	if c.opts.equal(opts) {
		c.mu.Unlock()
		return
	}
	was := c.explicit || c.busy
	c.opts = opts
	c.explicit = opts.Waiting
	c.version++
	c.dirty = true
	now := c.explicit || c.busy
	cb, fire := c.visualLocked(was, now)
	c.mu.Unlock()
	if fire {
		cb(now)
	}
}

// visualLocked decides whether the waiting-change callback fires: only on
// an actual flip and only while mounted. Caller holds c.mu.
func (c *Controller) visualLocked(was, now bool) (func(bool), bool) {
	if was == now || !c.mounted || c.onWaiting == nil {
		return nil, false
	}
	return c.onWaiting, true
}

// configVersion covers this controller and, transitively, its ancestors.
// Versions only grow, so equality means nothing changed upstream.
func (c *Controller) configVersion() uint64 {
	c.mu.Lock()
	v := c.version
	anc := c.ancestor
	c.mu.Unlock()
	if anc != nil {
		v += anc.configVersion()
	}
	return v
}

// Config returns the resolved configuration, recomputing only when this
// controller's options or an ancestor's configuration changed since the
// last snapshot. Resolution is pull-based: the ancestor resolves against
// its own ancestor first.
func (c *Controller) Config() Config {
	c.mu.Lock()
	anc := c.ancestor
	inheriting := c.opts.inherits()
	opts := c.opts
	own := c.version
	var up uint64
	if anc != nil && inheriting {
		// Lock order is child then ancestor; the chain is acyclic.
		c.mu.Unlock()
		up = anc.configVersion()
		c.mu.Lock()
		if c.version != own {
			// Options changed while the ancestor was resolving; restart
			// against the fresh ones rather than caching a stale snapshot.
			c.mu.Unlock()
			return c.Config()
		}
	}
	if !c.dirty && c.resolved != nil && c.upstream == up {
		cfg := *c.resolved
		c.mu.Unlock()
		return cfg
	}
	c.mu.Unlock()

	var parent *Config
	if anc != nil && inheriting {
		p := anc.Config()
		parent = &p
	}
	cfg := resolveConfig(opts, parent)

	c.mu.Lock()
	if c.version == own {
		c.resolved = &cfg
		c.upstream = up
		c.dirty = false
	}
	c.mu.Unlock()
	return cfg
}

// Wait runs op through the resolved call wrapper while the busy flag is
// set, publishes the in-flight future to the result cell, and returns the
// operation's outcome unchanged. The busy flag is reset exactly once per
// call, on success, failure, and panic alike; the reset skips the visual
// update when the controller was unmounted mid-flight. A panicking
// operation settles the published future with ErrPanicked before the
// panic propagates.
//
// Overlapping calls each toggle the level-set flag independently: the
// first call to finish clears it even while another is still pending.
// This last-writer-wins behavior is kept for compatibility.
func (c *Controller) Wait(ctx context.Context, op Operation) (any, error) {
	cfg := c.Config()
	fut := newFuture()

	c.beginWait()
	c.cell.set(fut)
	defer c.endWait()
	// The future is already visible to listeners; a panicking operation
	// must still settle it or subscribers block forever.
	defer func() {
		if !fut.Settled() {
			fut.complete(nil, ErrPanicked)
		}
	}()

	val, err := cfg.CallWrapper(ctx, op)
	fut.complete(val, err)
	return val, err
}

func (c *Controller) beginWait() {
	c.mu.Lock()
	if c.listened {
		c.mu.Unlock()
		return
	}
	was := c.explicit || c.busy
	c.busy = true
	cb, fire := c.visualLocked(was, true)
	c.mu.Unlock()
	log.Debug("waiting: busy set")
	if fire {
		cb(true)
	}
}

func (c *Controller) endWait() {
	c.mu.Lock()
	if c.listened {
		c.mu.Unlock()
		return
	}
	was := c.explicit || c.busy
	c.busy = false
	now := c.explicit
	cb, fire := c.visualLocked(was, now)
	c.mu.Unlock()
	log.Debug("waiting: busy cleared")
	if fire {
		cb(now)
	}
}

// Listen subscribes to every future produced by Wait calls on this
// controller from now on. After the first subscription the controller
// permanently stops toggling its own busy flag: the listener derives its
// loading UI from each future's pending/settled state instead.
func (c *Controller) Listen() <-chan *Future {
	c.mu.Lock()
	first := !c.listened
	c.listened = true
	var cb func(bool)
	var fire bool
	now := c.explicit
	if first && c.busy {
		// Hand off a flag that was set before the subscription.
		was := c.explicit || c.busy
		c.busy = false
		cb, fire = c.visualLocked(was, now)
	}
	c.mu.Unlock()
	if fire {
		cb(now)
	}
	return c.cell.subscribe()
}

// Current returns the most recent Wait call's future, or nil if none.
func (c *Controller) Current() *Future {
	return c.cell.current()
}

// Wait resolves the nearest controller above s and runs op through it.
// When no controller is mounted above, op runs directly with no visual
// side effects; that is the default lenient lookup mode.
func Wait[T any](ctx context.Context, s *Scope, op func(ctx context.Context) (T, error)) (T, error) {
	ctrl, ok := s.Nearest()
	if !ok {
		log.Debug("waiting: no controller above scope, running operation bare")
		return op(ctx)
	}
	val, err := ctrl.Wait(ctx, func(ctx context.Context) (any, error) {
		return op(ctx)
	})
	if t, ok := val.(T); ok {
		return t, err
	}
	var zero T
	return zero, err
}

// Listen subscribes to the nearest controller's result stream. The second
// return is false when no controller is mounted above s.
func Listen(s *Scope) (<-chan *Future, bool) {
	ctrl, ok := s.Nearest()
	if !ok {
		return nil, false
	}
	return ctrl.Listen(), true
}
