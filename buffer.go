package termbuf

import "strings"

const (
	// DEFAULT_ROWS is the default number of buffer rows.
	DEFAULT_ROWS = 24
	// DEFAULT_COLS is the default number of buffer columns.
	DEFAULT_COLS = 80
)

// Buffer models one screen (primary or alternate) of a terminal: a History
// of lines, the cursor, the scroll region, and the viewport offsets.
//
// Cursor and offset fields are exported for direct mutation by the input
// layer, matching how a terminal drives its buffer between writes. The
// buffer itself only reacts to structural events: Clear, FillViewportRows,
// and Resize.
//
// Buffer is not safe for concurrent use; see the package documentation.
type Buffer struct {
	// Lines is the history container. Rows [YBase, YBase+rows) are the
	// active screen; rows below YBase are scrollback.
	Lines *History

	// YDisp is the logical index of the row currently shown at the top of
	// the viewport. It equals YBase unless the user has scrolled up.
	YDisp int

	// YBase is the logical index of the viewport's top row within history.
	YBase int

	// Y and X are the cursor row and column, relative to the viewport top.
	Y int
	X int

	// ScrollTop and ScrollBottom bound the scroll region, in viewport rows.
	ScrollTop    int
	ScrollBottom int

	// Tabs is the tab stop set. The buffer resets it on Clear and is
	// otherwise uninvolved with it.
	Tabs *TabStops

	// SavedX and SavedY hold the cursor save slot (DECSC/DECRC). The buffer
	// enforces no invariant on them.
	SavedX int
	SavedY int

	rows       int
	cols       int
	scrollback int
	attr       Attr
	factory    LineFactory
}

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithSize sets the buffer dimensions (default 24x80).
func WithSize(rows, cols int) Option {
	return func(b *Buffer) {
		b.rows = rows
		b.cols = cols
	}
}

// WithScrollback enables scrollback with the given line limit. A limit of 0
// disables scrollback entirely, the way an alternate screen buffer works.
func WithScrollback(limit int) Option {
	return func(b *Buffer) {
		b.scrollback = limit
	}
}

// WithDefaultAttr sets the attribute used for blank cells created by the
// buffer (viewport fill, resize padding).
func WithDefaultAttr(attr Attr) Option {
	return func(b *Buffer) {
		b.attr = attr
	}
}

// WithLineFactory substitutes the factory used to construct blank lines.
func WithLineFactory(f LineFactory) Option {
	return func(b *Buffer) {
		b.factory = f
	}
}

// NewBuffer creates a buffer and Clear-initializes it. Call FillViewportRows
// once afterwards to populate the empty history.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		rows:    DEFAULT_ROWS,
		cols:    DEFAULT_COLS,
		factory: BlankLine,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Clear()
	return b
}

// Rows returns the buffer height in character rows.
func (b *Buffer) Rows() int {
	return b.rows
}

// Cols returns the buffer width in character columns.
func (b *Buffer) Cols() int {
	return b.cols
}

// HasScrollback returns true if this buffer retains lines scrolled off the top.
func (b *Buffer) HasScrollback() bool {
	return b.scrollback > 0
}

// DefaultAttr returns the attribute used for blank cells created by the buffer.
func (b *Buffer) DefaultAttr() Attr {
	return b.attr
}

// historyCap derives the history capacity for a given row count: just the
// screen when scrollback is disabled, screen plus scrollback otherwise.
func (b *Buffer) historyCap(rows int) int {
	if b.scrollback > 0 {
		return rows + b.scrollback
	}
	return rows
}

// Clear discards all history and resets cursor, offsets, tab stops, and the
// scroll region. The history capacity is re-derived from the current row
// count and scrollback limit. No data is carried over.
func (b *Buffer) Clear() {
	b.YDisp = 0
	b.YBase = 0
	b.Y = 0
	b.X = 0
	b.Lines = NewHistory(b.historyCap(b.rows))
	b.Tabs = NewTabStops(b.cols)
	b.ScrollTop = 0
	b.ScrollBottom = b.rows - 1
}

// FillViewportRows populates an empty buffer with exactly rows blank lines so
// that subsequent indexed access is always valid. It is a no-op when the
// history already holds lines, which prevents double-filling after a resize.
func (b *Buffer) FillViewportRows() {
	if b.Lines.Len() != 0 {
		return
	}
	for i := 0; i < b.rows; i++ {
		b.Lines.Push(b.factory(b.attr, "", b.cols))
	}
}

// Resize reconciles the buffer with new terminal dimensions, preserving as
// much content and cursor validity as possible. An empty buffer is only
// reshaped lazily, by a later FillViewportRows; the scroll region is reset
// either way.
//
// Growing rows prefers revealing existing scrollback over appending blank
// rows; shrinking rows prefers hiding rows into scrollback over popping them.
// Narrowing columns leaves cell data beyond the new width in place, so a
// later widening reveals it again.
func (b *Buffer) Resize(newCols, newRows int) {
	newMaxLength := b.historyCap(newRows)

	// Raise the ceiling first so row growth has room to land without
	// evicting live rows. This applies to an empty buffer too: its growth
	// lands at the later FillViewportRows, which must not evict what it
	// just pushed.
	if newMaxLength > b.Lines.MaxLen() {
		b.Lines.SetMaxLen(newMaxLength)
	}

	if b.Lines.Len() > 0 {
		if b.cols < newCols {
			for i := 0; i < b.Lines.Len(); i++ {
				line := b.Lines.Get(i)
				if line == nil {
					// A logical row with no backing line; synthesize one at
					// the new width.
					b.Lines.Set(i, b.factory(b.attr, "", newCols))
					continue
				}
				for len(line) < newCols {
					line = append(line, BlankCell(b.attr))
				}
				b.Lines.Set(i, line)
			}
		}

		addToY := 0
		if b.rows < newRows {
			for y := b.rows; y < newRows; y++ {
				if b.Lines.Len() < newRows+b.YBase {
					if b.YBase > 0 && b.Lines.Len() <= b.YBase+b.Y+addToY+1 {
						// There is scrollback above and no spare blank rows
						// below the cursor: reveal history instead of
						// fabricating a blank row.
						b.YBase--
						addToY++
						if b.YDisp > 0 {
							// Keep the view from silently jumping.
							b.YDisp--
						}
					} else {
						b.Lines.Push(b.factory(b.attr, "", newCols))
					}
				}
			}
		} else {
			for y := b.rows; y > newRows; y-- {
				if b.Lines.Len() > newRows+b.YBase {
					if b.Lines.Len() > b.YBase+b.Y+1 {
						// The line below the viewport is a spare trailing
						// blank row.
						b.Lines.Pop()
					} else {
						// The removed row is on or above the cursor: hide it
						// in scrollback rather than destroying it.
						b.YBase++
						b.YDisp++
					}
				}
			}
		}

		// Lower the ceiling last so trimming only discards content already
		// pushed out of the live viewport by the row adjustment above.
		if newMaxLength < b.Lines.MaxLen() {
			amountToTrim := b.Lines.Len() - newMaxLength
			if amountToTrim > 0 {
				b.Lines.TrimStart(amountToTrim)
				b.YBase = max(b.YBase-amountToTrim, 0)
				b.YDisp = max(b.YDisp-amountToTrim, 0)
			}
			b.Lines.SetMaxLen(newMaxLength)
		}

		if b.Y >= newRows {
			b.Y = newRows - 1
		}
		if addToY > 0 {
			// Keep the cursor on the logical row it occupied before history
			// was revealed.
			b.Y += addToY
		}
		if b.X >= newCols {
			b.X = newCols - 1
		}
	}

	b.rows = newRows
	b.cols = newCols

	// Scroll region customization does not survive a resize.
	b.ScrollTop = 0
	b.ScrollBottom = newRows - 1
}

// TranslateLineToString converts the line at the given logical index into
// plain text, for selection and copy. startCol and endCol are raw column
// numbers; an endCol below 0 means the full line. Continuation cells of wide
// characters occupy a column but contribute no character, so both bounds are
// deflated past them to land on character offsets.
//
// With trimRight set, the effective end is clamped to the start of the line's
// trailing whitespace; a range entirely inside that whitespace yields "".
func (b *Buffer) TranslateLineToString(lineIndex int, trimRight bool, startCol, endCol int) string {
	line := b.Lines.Get(lineIndex)
	if line == nil {
		return ""
	}

	if startCol < 0 {
		startCol = 0
	}
	if endCol < 0 || endCol > len(line) {
		endCol = len(line)
	}

	// Collect one character per non-continuation cell, deflating the raw
	// column bounds for every continuation cell at or before them.
	widthAdjustedStartCol := startCol
	widthAdjustedEndCol := endCol
	chars := make([]string, 0, len(line))
	for i := 0; i < len(line); i++ {
		if line[i].Width == 0 {
			if startCol >= i {
				widthAdjustedStartCol--
			}
			if endCol >= i {
				widthAdjustedEndCol--
			}
			continue
		}
		chars = append(chars, line[i].Char)
	}

	if widthAdjustedStartCol < 0 {
		widthAdjustedStartCol = 0
	}
	finalEndCol := widthAdjustedEndCol
	if finalEndCol > len(chars) {
		finalEndCol = len(chars)
	}

	if trimRight {
		rightWhitespaceIndex := len(chars)
		for rightWhitespaceIndex > 0 && isBlank(chars[rightWhitespaceIndex-1]) {
			rightWhitespaceIndex--
		}
		if rightWhitespaceIndex < finalEndCol {
			finalEndCol = rightWhitespaceIndex
		}
		if finalEndCol <= widthAdjustedStartCol {
			return ""
		}
	}

	if widthAdjustedStartCol >= finalEndCol {
		return ""
	}
	return strings.Join(chars[widthAdjustedStartCol:finalEndCol], "")
}

// --- Line and cell access ---

// Line returns the active-screen line at viewport row y (cursor coordinate
// space). Returns nil if y is outside the viewport.
func (b *Buffer) Line(y int) Line {
	if y < 0 || y >= b.rows {
		return nil
	}
	return b.Lines.Get(b.YBase + y)
}

// DisplayedLine returns the line shown at viewport row y given the current
// scroll position. Returns nil if y is outside the viewport.
func (b *Buffer) DisplayedLine(y int) Line {
	if y < 0 || y >= b.rows {
		return nil
	}
	return b.Lines.Get(b.YDisp + y)
}

// Cell returns a pointer to the cell at viewport row y, column x of the
// active screen. Returns nil if the coordinates are out of bounds or the
// line has not been padded to x yet.
func (b *Buffer) Cell(y, x int) *Cell {
	line := b.Line(y)
	if line == nil || x < 0 || x >= len(line) {
		return nil
	}
	return &line[x]
}

// SetCell replaces the cell at viewport row y, column x of the active screen.
// Does nothing if the coordinates are out of bounds. Writers placing a
// width-2 cell are responsible for also writing the continuation cell at x+1.
func (b *Buffer) SetCell(y, x int, cell Cell) {
	line := b.Line(y)
	if line == nil || x < 0 || x >= len(line) {
		return
	}
	line[x] = cell
}

// --- Cursor save slot ---

// SaveCursor records the cursor position into the save slot.
func (b *Buffer) SaveCursor() {
	b.SavedX = b.X
	b.SavedY = b.Y
}

// RestoreCursor moves the cursor to the saved position, clamped to the
// current dimensions.
func (b *Buffer) RestoreCursor() {
	b.X = min(b.SavedX, b.cols-1)
	b.Y = min(b.SavedY, b.rows-1)
}

// --- Viewport scrolling ---

// ScrollDisplay moves the viewport by n rows (negative is up into history,
// positive back down), clamped to [0, YBase]. The active screen is unaffected.
func (b *Buffer) ScrollDisplay(n int) {
	b.YDisp += n
	if b.YDisp < 0 {
		b.YDisp = 0
	}
	if b.YDisp > b.YBase {
		b.YDisp = b.YBase
	}
}

// ScrollToBottom snaps the viewport back to the active screen.
func (b *Buffer) ScrollToBottom() {
	b.YDisp = b.YBase
}
