// Package termbuf implements the screen and scrollback buffer core of a
// terminal emulator: the authoritative model of what text is on screen, what
// has scrolled into history, where the cursor sits, and how all of that is
// reconciled when the terminal is resized.
//
// The package deliberately does not parse escape sequences and does not
// render anything. It stores and relocates whatever cell data it is given;
// an ANSI interpreter and a renderer are expected to sit on either side of it.
//
// # Quick Start
//
// Create a buffer, fill the viewport, and write cells:
//
//	buf := termbuf.NewBuffer(
//	    termbuf.WithSize(24, 80),
//	    termbuf.WithScrollback(1000),
//	)
//	buf.FillViewportRows()
//
//	buf.SetCell(0, 0, termbuf.Cell{Char: "H", Width: 1})
//	fmt.Println(buf.TranslateLineToString(0, true, 0, -1))
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Buffer]: cursor, scroll region, and viewport state plus the four
//     structural operations (Clear, FillViewportRows, Resize,
//     TranslateLineToString)
//   - [History]: a capacity-bounded, index-addressable container holding one
//     [Line] per logical row, oldest line first
//   - [Cell]: one character position's styling token, glyph, and display width
//   - [Attr]: the opaque styling token carried verbatim by cells
//
// # Coordinates
//
// Rows inside [History] are logical: index 0 is always the oldest retained
// line, even after old scrollback has been evicted. Buffer.YBase is the
// logical index of the viewport's top row; Buffer.YDisp is the logical index
// of the row the user currently sees at the top (it lags YBase while the user
// is scrolled up). Cursor coordinates X and Y are viewport-relative.
//
// # Wide Characters
//
// A double-width glyph occupies two cells: a leading cell with Width 2
// followed by a continuation cell with Width 0 and an empty Char.
// TranslateLineToString deflates raw column numbers past continuation cells
// so that selection offsets land on character boundaries.
//
// # Resizing
//
// Resize reconciles the buffer with new dimensions in O(rows), never
// O(history). Growing rows prefers revealing existing scrollback over
// fabricating blank rows; shrinking rows prefers hiding rows into scrollback
// over destroying them. Narrowing columns never trims cell data; widening
// pads lines on the right. The scroll region is reset on every resize.
//
// # Thread Safety
//
// The buffer is not safe for concurrent use. All mutation is expected to run
// on one logical thread of control: a resize must complete before the next
// parsed input is applied, and no two resizes may overlap. Callers that need
// concurrency must provide their own locking, the way a terminal facade
// usually does.
package termbuf
