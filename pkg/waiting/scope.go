// ABOUTME: Tree-scoped controller lookup via an explicit scope chain
// ABOUTME: Controllers publish by deriving a child scope; descendants walk parents to find them

package waiting

// Scope is the context object threaded through component construction.
// Each mounted controller derives a child scope that publishes it to the
// subtree built beneath it; lookup walks the parent chain. The chain is
// immutable after construction, so lookups need no locking.
type Scope struct {
	parent *Scope
	ctrl   *Controller
	notify func()
}

// NewScope creates a root scope with no controller published.
// notify is invoked whenever a controller below this scope needs a visual
// update (typically the screen's RequestRender); it may be nil.
func NewScope(notify func()) *Scope {
	return &Scope{notify: notify}
}

// child derives a scope that publishes c to everything built with it.
func (s *Scope) child(c *Controller) *Scope {
	return &Scope{parent: s, ctrl: c, notify: s.notify}
}

// Nearest returns the nearest controller published at or above this scope.
// The second return is false when no controller is mounted above, which is
// a normal condition, not an error.
func (s *Scope) Nearest() (*Controller, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.ctrl != nil {
			return cur.ctrl, true
		}
	}
	return nil, false
}

// MustNearest is the strict lookup channel: it panics with a descriptive
// message when no controller is mounted above this scope.
func (s *Scope) MustNearest() *Controller {
	c, ok := s.Nearest()
	if !ok {
		panic("waiting: no controller mounted above this scope")
	}
	return c
}

// requestRender fires the scope's notify callback, if any.
func (s *Scope) requestRender() {
	if s.notify != nil {
		s.notify()
	}
}
