package termbuf

import "strings"

// Position identifies a cell location, with Row a logical history index and
// Col a raw column (0-based).
type Position struct {
	Row int
	Col int
}

// Before returns true if this position comes before other in reading order
// (top-to-bottom, left-to-right).
func (p Position) Before(other Position) bool {
	if p.Row < other.Row {
		return true
	}
	if p.Row == other.Row && p.Col < other.Col {
		return true
	}
	return false
}

// Equal returns true if both row and column match.
func (p Position) Equal(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// TranslateRangeToString extracts the text between two positions, inclusive
// of start and exclusive of end columns, joining rows with newlines. The
// positions are normalized first, so start and end may arrive in either
// order. Row indices are logical history indices, the same space
// TranslateLineToString addresses.
func (b *Buffer) TranslateRangeToString(start, end Position, trimRight bool) string {
	if end.Before(start) {
		start, end = end, start
	}

	if start.Row == end.Row {
		return b.TranslateLineToString(start.Row, trimRight, start.Col, end.Col)
	}

	parts := make([]string, 0, end.Row-start.Row+1)
	parts = append(parts, b.TranslateLineToString(start.Row, trimRight, start.Col, -1))
	for row := start.Row + 1; row < end.Row; row++ {
		parts = append(parts, b.TranslateLineToString(row, trimRight, 0, -1))
	}
	parts = append(parts, b.TranslateLineToString(end.Row, trimRight, 0, end.Col))
	return strings.Join(parts, "\n")
}

// String renders the currently displayed viewport as text, one line per row
// with trailing whitespace trimmed. Rows without a backing line render empty.
func (b *Buffer) String() string {
	rows := make([]string, b.rows)
	for y := 0; y < b.rows; y++ {
		rows[y] = b.TranslateLineToString(b.YDisp+y, true, 0, -1)
	}
	return strings.Join(rows, "\n")
}
