package termbuf

import (
	"strings"

	"github.com/unilibs/uniwidth"
)

// RuneWidth returns the display width of a single rune: 2 for wide characters
// (CJK, emoji), 1 for normal, 0 for zero-width (combining marks, control chars).
func RuneWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// CharWidth returns the display width a cell glyph occupies on screen.
// Multi-code-point graphemes are measured as a whole and clamped to 2, since
// a single cell pair can never span more than two columns.
func CharWidth(s string) int {
	w := uniwidth.StringWidth(s)
	if w > 2 {
		w = 2
	}
	return w
}

// StringWidth returns the total display width of a string (sum of rune widths).
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}

// isBlank reports whether a cell glyph is empty or all whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
