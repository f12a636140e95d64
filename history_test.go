package termbuf

import (
	"testing"
)

func markedLine(ch string, width int) Line {
	return BlankLine(DefaultAttr(), ch, width)
}

func lineMark(line Line) string {
	if len(line) == 0 {
		return ""
	}
	return line[0].Char
}

func TestHistoryPush(t *testing.T) {
	h := NewHistory(10)

	h.Push(markedLine("a", 5))
	h.Push(markedLine("b", 5))

	if h.Len() != 2 {
		t.Errorf("expected length 2, got %d", h.Len())
	}
	if lineMark(h.Get(0)) != "a" {
		t.Errorf("expected oldest line %q, got %q", "a", lineMark(h.Get(0)))
	}
	if lineMark(h.Get(1)) != "b" {
		t.Errorf("expected newest line %q, got %q", "b", lineMark(h.Get(1)))
	}
}

func TestHistoryPushEvictsOldest(t *testing.T) {
	h := NewHistory(3)

	for _, ch := range []string{"a", "b", "c", "d"} {
		h.Push(markedLine(ch, 5))
	}

	if h.Len() != 3 {
		t.Errorf("expected length capped at 3, got %d", h.Len())
	}
	if lineMark(h.Get(0)) != "b" {
		t.Errorf("expected %q evicted, oldest now %q", "a", lineMark(h.Get(0)))
	}
	if lineMark(h.Get(2)) != "d" {
		t.Errorf("expected newest %q, got %q", "d", lineMark(h.Get(2)))
	}
}

func TestHistoryLengthNeverExceedsMaxLen(t *testing.T) {
	h := NewHistory(5)

	for i := 0; i < 50; i++ {
		h.Push(markedLine("x", 3))
		if h.Len() > h.MaxLen() {
			t.Fatalf("push %d: length %d exceeds capacity %d", i, h.Len(), h.MaxLen())
		}
	}
}

func TestHistoryPop(t *testing.T) {
	h := NewHistory(10)
	h.Push(markedLine("a", 5))
	h.Push(markedLine("b", 5))

	line := h.Pop()
	if lineMark(line) != "b" {
		t.Errorf("expected popped line %q, got %q", "b", lineMark(line))
	}
	if h.Len() != 1 {
		t.Errorf("expected length 1, got %d", h.Len())
	}

	h.Pop()
	if h.Pop() != nil {
		t.Error("expected nil when popping empty container")
	}
}

func TestHistoryGetSetOutOfRange(t *testing.T) {
	h := NewHistory(10)
	h.Push(markedLine("a", 5))

	if h.Get(-1) != nil {
		t.Error("expected nil for negative index")
	}
	if h.Get(1) != nil {
		t.Error("expected nil for index >= length")
	}

	// Out-of-range writes are ignored.
	h.Set(5, markedLine("z", 5))
	if h.Len() != 1 {
		t.Errorf("expected length unchanged, got %d", h.Len())
	}
}

func TestHistorySet(t *testing.T) {
	h := NewHistory(10)
	h.Push(markedLine("a", 5))

	h.Set(0, markedLine("z", 5))

	if lineMark(h.Get(0)) != "z" {
		t.Errorf("expected %q, got %q", "z", lineMark(h.Get(0)))
	}
}

func TestHistorySetMaxLenDoesNotEvict(t *testing.T) {
	h := NewHistory(10)
	for _, ch := range []string{"a", "b", "c", "d", "e"} {
		h.Push(markedLine(ch, 5))
	}

	h.SetMaxLen(3)

	if h.Len() != 5 {
		t.Errorf("expected lowering the ceiling to keep length 5, got %d", h.Len())
	}
	if h.MaxLen() != 3 {
		t.Errorf("expected capacity 3, got %d", h.MaxLen())
	}

	// A subsequent push evicts exactly one line from the head.
	h.Push(markedLine("f", 5))
	if h.Len() != 5 {
		t.Errorf("expected one-in-one-out push, got length %d", h.Len())
	}
	if lineMark(h.Get(0)) != "b" {
		t.Errorf("expected oldest line %q, got %q", "b", lineMark(h.Get(0)))
	}
}

func TestHistoryRaiseMaxLen(t *testing.T) {
	h := NewHistory(2)
	h.Push(markedLine("a", 5))
	h.Push(markedLine("b", 5))

	h.SetMaxLen(4)
	h.Push(markedLine("c", 5))

	if h.Len() != 3 {
		t.Errorf("expected length 3 after raising the ceiling, got %d", h.Len())
	}
	if lineMark(h.Get(0)) != "a" {
		t.Errorf("expected no eviction, oldest is %q", lineMark(h.Get(0)))
	}
}

func TestHistoryTrimStart(t *testing.T) {
	h := NewHistory(10)
	for _, ch := range []string{"a", "b", "c", "d", "e"} {
		h.Push(markedLine(ch, 5))
	}

	h.TrimStart(2)

	if h.Len() != 3 {
		t.Errorf("expected length 3, got %d", h.Len())
	}
	if lineMark(h.Get(0)) != "c" {
		t.Errorf("expected index 0 rebased to %q, got %q", "c", lineMark(h.Get(0)))
	}
}

func TestHistoryTrimStartClamped(t *testing.T) {
	h := NewHistory(10)
	h.Push(markedLine("a", 5))

	h.TrimStart(99)
	if h.Len() != 0 {
		t.Errorf("expected empty container, got length %d", h.Len())
	}

	h.TrimStart(1)
	if h.Len() != 0 {
		t.Errorf("expected trim on empty container to be a no-op, got %d", h.Len())
	}
}
