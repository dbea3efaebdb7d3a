// ABOUTME: Future is a settled-once promise; resultCell is the single-slot observable holder
// ABOUTME: The cell keeps only the most recent future; subscribers receive each new one

package waiting

import (
	"sync"

	"github.com/devobs/waiting-indicator/internal/log"
)

// subBuffer is the per-subscriber channel capacity. A subscriber that falls
// further behind misses intermediate futures; the cell only guarantees
// delivery of the latest.
const subBuffer = 16

// Future is the eventual result of one tracked operation. It settles
// exactly once; Result blocks until then.
type Future struct {
	done chan struct{}
	once sync.Once
	val  any
	err  error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// complete settles the future. Subsequent calls are no-ops.
func (f *Future) complete(val any, err error) {
	f.once.Do(func() {
		f.val = val
		f.err = err
		close(f.done)
	})
}

// Done returns a channel closed when the future settles.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the future settles and returns its outcome.
func (f *Future) Result() (any, error) {
	<-f.done
	return f.val, f.err
}

// Settled reports whether the future has completed without blocking.
func (f *Future) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// resultCell holds at most one pending operation's future: last writer
// wins. Zero or more subscribers observe each newly stored future.
type resultCell struct {
	mu   sync.Mutex
	last *Future
	subs []chan *Future
}

// set stores f as the current future and fans it out to subscribers.
func (rc *resultCell) set(f *Future) {
	rc.mu.Lock()
	rc.last = f
	subs := make([]chan *Future, len(rc.subs))
	copy(subs, rc.subs)
	rc.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- f:
		default:
			log.Debug("waiting: result listener full (%d buffered), dropping future", len(ch))
		}
	}
}

// subscribe registers a new listener channel and returns it.
func (rc *resultCell) subscribe() <-chan *Future {
	ch := make(chan *Future, subBuffer)
	rc.mu.Lock()
	rc.subs = append(rc.subs, ch)
	rc.mu.Unlock()
	return ch
}

// current returns the most recently stored future, or nil.
func (rc *resultCell) current() *Future {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.last
}
