// ABOUTME: Layout helpers built on Visible: centering and right-padding styled lines
// ABOUTME: Used by overlay compositors to position an indicator inside a row

package width

import "strings"

// Center pads s with spaces so its visible content is centered in w cells.
// Strings wider than w are returned unchanged.
func Center(s string, w int) string {
	v := Visible(s)
	if v >= w {
		return s
	}
	left := (w - v) / 2
	right := w - v - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// PadRight extends s with spaces to exactly w visible cells.
// Strings wider than w are returned unchanged.
func PadRight(s string, w int) string {
	v := Visible(s)
	if v >= w {
		return s
	}
	return s + strings.Repeat(" ", w-v)
}
