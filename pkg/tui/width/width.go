// ABOUTME: Display-width measurement for styled terminal strings
// ABOUTME: Grapheme-aware via uniseg/runewidth; ANSI sequences contribute zero width

package width

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Visible returns the display width of s in terminal cells, skipping ANSI
// escape sequences and measuring grapheme clusters (wide CJK, emoji).
func Visible(s string) int {
	if s == "" {
		return 0
	}
	if plainASCII(s) {
		return len(s)
	}
	w := 0
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		w += runewidth.StringWidth(g.Str())
	}
	return w
}

// plainASCII reports whether s is printable ASCII with no escape sequences,
// so its byte length equals its display width.
func plainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}
