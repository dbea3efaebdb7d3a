// ABOUTME: Static text display component; caches its line split until invalidated
// ABOUTME: The simplest Component, used as overlay content in the demo and tests

package tui

// Text renders static text content.
type Text struct {
	content string
	lines   []string
	dirty   bool
}

// NewText creates a Text component with the given content.
func NewText(content string) *Text {
	return &Text{content: content, dirty: true}
}

// SetContent updates the displayed text.
func (t *Text) SetContent(content string) {
	t.content = content
	t.dirty = true
}

// Render writes the text lines into the buffer.
func (t *Text) Render(out *RenderBuffer, _ int) {
	if t.dirty {
		t.lines = splitLines(t.content)
		t.dirty = false
	}
	out.WriteLines(t.lines)
}

// Invalidate marks the component for re-render.
func (t *Text) Invalidate() {
	t.dirty = true
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
