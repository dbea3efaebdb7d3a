// ABOUTME: Screen is the rendering engine: coalesced render requests, per-line diffing
// ABOUTME: Writes CSI 2026 synchronized frames with absolute cursor positioning

package tui

import (
	"fmt"
	"strings"
	"sync"
)

// Writer is the minimal interface for terminal output.
type Writer interface {
	Write(p []byte) (n int, err error)
}

// Screen renders a component tree to a terminal.
type Screen struct {
	root   *Container
	writer Writer

	mu        sync.Mutex
	width     int
	height    int
	prevLines []string
	renderCh  chan struct{}
	stopCh    chan struct{}
	stopOnce  sync.Once
	running   bool
}

// NewScreen creates a Screen writing to w with the given dimensions.
func NewScreen(w Writer, termWidth, termHeight int) *Screen {
	return &Screen{
		root:     NewContainer(),
		writer:   w,
		width:    termWidth,
		height:   termHeight,
		renderCh: make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
	}
}

// Root returns the root container for adding components.
func (s *Screen) Root() *Container {
	return s.root
}

// HandleInput dispatches terminal input through the component tree and
// reports whether any component consumed it.
func (s *Screen) HandleInput(data string) bool {
	return s.root.HandleInput(data)
}

// SetSize updates the terminal dimensions and triggers a full re-render.
func (s *Screen) SetSize(w, h int) {
	s.mu.Lock()
	s.width = w
	s.height = h
	s.prevLines = nil
	s.mu.Unlock()
	s.root.Invalidate()
	s.RequestRender()
}

// RequestRender signals that a render is needed. Multiple calls coalesce
// into a single render via a buffered channel of size 1.
func (s *Screen) RequestRender() {
	select {
	case s.renderCh <- struct{}{}:
	default: // already pending
	}
}

// Start clears the terminal, hides the cursor, and begins the render loop.
// Call Stop to terminate and restore the cursor.
func (s *Screen) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	_, _ = s.writer.Write([]byte("\x1b[2J\x1b[H\x1b[?25l"))
	go s.renderLoop()
	s.RequestRender()
}

// Stop terminates the render loop and restores the cursor.
// Safe to call multiple times.
func (s *Screen) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		running := s.running
		s.running = false
		s.mu.Unlock()
		if running {
			close(s.stopCh)
		}
		_, _ = s.writer.Write([]byte("\x1b[?25h"))
	})
}

// RenderOnce performs a single synchronous render. Useful for testing.
func (s *Screen) RenderOnce() {
	s.render()
}

func (s *Screen) renderLoop() {
	for {
		select {
		case <-s.stopCh:
			return
		case <-s.renderCh:
			s.render()
		}
	}
}

func (s *Screen) render() {
	s.mu.Lock()
	w := s.width
	h := s.height
	prev := s.prevLines
	s.mu.Unlock()

	if w <= 0 || h <= 0 {
		return
	}

	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)
	s.root.Render(buf, w)

	lines := buf.Lines
	if len(lines) > h {
		lines = lines[:h]
	}

	output := diffFrame(prev, lines)
	if output != "" {
		// CSI 2026: terminal applies the whole frame atomically.
		_, _ = s.writer.Write([]byte("\x1b[?2026h" + output + "\x1b[?2026l"))
	}

	saved := make([]string, len(lines))
	copy(saved, lines)
	s.mu.Lock()
	s.prevLines = saved
	s.mu.Unlock()
}

// diffFrame emits absolute-positioned updates for lines that changed
// between prev and curr, and erases lines past the end of curr.
func diffFrame(prev, curr []string) string {
	var b strings.Builder
	for i, line := range curr {
		if i < len(prev) && prev[i] == line {
			continue
		}
		fmt.Fprintf(&b, "\x1b[%d;1H\x1b[2K", i+1)
		b.WriteString(line)
	}
	for i := len(curr); i < len(prev); i++ {
		fmt.Fprintf(&b, "\x1b[%d;1H\x1b[2K", i+1)
	}
	return b.String()
}
