// ABOUTME: Core TUI interfaces: Component for renderable elements, Ticking for animated ones
// ABOUTME: Components write lines into a pooled RenderBuffer, bounded by a column width

package tui

// Component is the base interface for all TUI elements.
// Components render into a pooled RenderBuffer and must not exceed the given width.
type Component interface {
	// Render writes the component's visual lines into out.
	// Lines must not exceed width visible columns.
	Render(out *RenderBuffer, width int)

	// Invalidate clears any cached render state, forcing a full re-render
	// on the next Render call.
	Invalidate()
}

// Ticking is implemented by components whose appearance advances over time,
// such as spinners. A frame clock calls Tick once per frame while the
// component is part of an animating layer.
type Ticking interface {
	Tick()
}

// InputHandler is implemented by components that process keyboard input.
// HandleInput reports whether the component consumed the input.
type InputHandler interface {
	HandleInput(data string) bool
}
