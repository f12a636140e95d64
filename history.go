package termbuf

// History is a capacity-bounded, index-addressable container holding one Line
// per logical row, oldest line first. Pushing beyond capacity silently drops
// the oldest line; this is the sole mechanism by which old scrollback is
// discarded under normal operation.
//
// Logical index 0 always denotes the oldest retained line. Indices are stable
// across pushes; TrimStart conceptually shifts them, and the owning buffer
// rebases its offsets (YBase, YDisp) to compensate.
//
// Index-based operations assume pre-validated indices: out-of-range access is
// a caller contract violation, answered with a nil/no-op guard rather than an
// error.
type History struct {
	lines []Line
	max   int
}

// NewHistory creates an empty container with the given capacity ceiling.
func NewHistory(maxLen int) *History {
	return &History{
		lines: make([]Line, 0, maxLen),
		max:   maxLen,
	}
}

// Len returns the current number of stored lines.
func (h *History) Len() int {
	return len(h.lines)
}

// MaxLen returns the current capacity ceiling.
func (h *History) MaxLen() int {
	return h.max
}

// SetMaxLen changes the capacity ceiling. Raising it only makes room; no data
// moves. Lowering it below the current length does not evict by itself —
// eviction only happens through TrimStart or subsequent pushes.
func (h *History) SetMaxLen(max int) {
	h.max = max
}

// Get returns the line at logical index i, where 0 is the oldest line.
// Returns nil if i is out of range.
func (h *History) Get(i int) Line {
	if i < 0 || i >= len(h.lines) {
		return nil
	}
	return h.lines[i]
}

// Set replaces the line at logical index i. Does nothing if i is out of range.
func (h *History) Set(i int, line Line) {
	if i < 0 || i >= len(h.lines) {
		return
	}
	h.lines[i] = line
}

// Push appends a line at the tail. If the container is full, the oldest line
// is dropped to keep the length at the ceiling.
func (h *History) Push(line Line) {
	if h.max > 0 && len(h.lines) >= h.max {
		h.lines = h.lines[1:]
	}
	h.lines = append(h.lines, line)
}

// Pop removes and returns the tail line. Returns nil if the container is
// empty; callers are expected to guard with Len.
func (h *History) Pop() Line {
	if len(h.lines) == 0 {
		return nil
	}
	line := h.lines[len(h.lines)-1]
	h.lines = h.lines[:len(h.lines)-1]
	return line
}

// TrimStart removes the n oldest lines, clamped to the current length.
// Used to forcibly shrink below the current length after the ceiling has
// been lowered.
func (h *History) TrimStart(n int) {
	if n <= 0 {
		return
	}
	if n > len(h.lines) {
		n = len(h.lines)
	}
	h.lines = h.lines[n:]
}
