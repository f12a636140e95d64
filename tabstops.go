package termbuf

// TabStopInterval is the default distance between tab stops.
const TabStopInterval = 8

// TabStops is a sparse set of columns that carry a tab stop. The buffer only
// resets it on Clear; interpreting tab movement belongs to the input layer.
type TabStops struct {
	stops map[int]bool
	cols  int
}

// NewTabStops creates tab stops for the given column count, with a default
// stop every TabStopInterval columns.
func NewTabStops(cols int) *TabStops {
	t := &TabStops{}
	t.Reset(cols)
	return t
}

// Reset discards all stops and reinstalls the defaults for a new column count.
func (t *TabStops) Reset(cols int) {
	t.cols = cols
	t.stops = make(map[int]bool)
	for i := 0; i < cols; i += TabStopInterval {
		t.stops[i] = true
	}
}

// Set enables a tab stop at the specified column.
func (t *TabStops) Set(col int) {
	if col >= 0 && col < t.cols {
		t.stops[col] = true
	}
}

// Clear disables the tab stop at the specified column.
func (t *TabStops) Clear(col int) {
	delete(t.stops, col)
}

// ClearAll disables all tab stops.
func (t *TabStops) ClearAll() {
	t.stops = make(map[int]bool)
}

// IsSet returns true if the column carries a tab stop.
func (t *TabStops) IsSet(col int) bool {
	return t.stops[col]
}

// Next returns the column of the next tab stop after col, or the last column
// if there is none.
func (t *TabStops) Next(col int) int {
	for c := col + 1; c < t.cols; c++ {
		if t.stops[c] {
			return c
		}
	}
	return t.cols - 1
}

// Prev returns the column of the previous tab stop before col, or 0 if there
// is none.
func (t *TabStops) Prev(col int) int {
	for c := col - 1; c >= 0; c-- {
		if t.stops[c] {
			return c
		}
	}
	return 0
}
