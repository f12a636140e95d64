package termbuf

import "image/color"

// AttrFlags is a bitmask of cell rendering attributes.
type AttrFlags uint16

const (
	AttrBold AttrFlags = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrike
)

// Attr is the styling token attached to every cell. The buffer treats it as
// opaque: it is carried verbatim through scrolling, resizing, and history
// eviction and never interpreted.
type Attr struct {
	Fg    color.Color
	Bg    color.Color
	Flags AttrFlags
}

// DefaultAttr returns the zero attribute: nil colors (resolved to the default
// foreground/background by the renderer) and no flags.
func DefaultAttr() Attr {
	return Attr{}
}

// HasFlag returns true if the specified flag is set.
func (a Attr) HasFlag(flag AttrFlags) bool {
	return a.Flags&flag != 0
}

// WithFlag returns a copy of the attribute with the specified flag enabled.
func (a Attr) WithFlag(flag AttrFlags) Attr {
	a.Flags |= flag
	return a
}

// WithoutFlag returns a copy of the attribute with the specified flag disabled.
func (a Attr) WithoutFlag(flag AttrFlags) Attr {
	a.Flags &^= flag
	return a
}

// Cell stores the styling token, glyph, and display width for one grid
// position. Char may be a multi-code-point grapheme. Width is 1 for a normal
// cell, 2 for the leading cell of a double-width glyph, and 0 for the
// continuation placeholder that immediately follows a width-2 cell.
//
// A width-0 cell is never the first cell of a line and always directly
// follows a width-2 cell; writers are responsible for keeping the pair
// intact.
type Cell struct {
	Attr  Attr
	Char  string
	Width int
}

// BlankCell creates a space cell of width 1 carrying the given attribute.
func BlankCell(attr Attr) Cell {
	return Cell{Attr: attr, Char: " ", Width: 1}
}

// ContinuationCell creates the width-0 placeholder that follows a width-2
// cell. It carries the attribute of its leading cell and an empty glyph.
func ContinuationCell(attr Attr) Cell {
	return Cell{Attr: attr, Char: "", Width: 0}
}

// IsWide returns true if this is the leading cell of a double-width glyph.
func (c Cell) IsWide() bool {
	return c.Width == 2
}

// IsContinuation returns true if this is the width-0 placeholder occupying
// the second column of a double-width glyph.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// IsBlank returns true if the cell contains only whitespace or no glyph at all.
func (c Cell) IsBlank() bool {
	return isBlank(c.Char)
}

// Line is one row's ordered sequence of cells. A line is nominally as long
// as the buffer's column count but may be shorter right after a column-count
// increase, until Resize pads it.
type Line []Cell

// LineFactory produces a freshly constructed line of the given width filled
// with blank cells. ch selects the fill glyph; an empty string means space.
// The owning terminal may substitute its own factory via WithLineFactory.
type LineFactory func(attr Attr, ch string, width int) Line

// BlankLine is the default line factory: width cells of ch (space when
// empty), each of display width 1, all carrying attr.
func BlankLine(attr Attr, ch string, width int) Line {
	if ch == "" {
		ch = " "
	}
	line := make(Line, width)
	for i := range line {
		line[i] = Cell{Attr: attr, Char: ch, Width: 1}
	}
	return line
}
