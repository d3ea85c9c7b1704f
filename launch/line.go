package launch

// Core command-line editing logic. This package is UI-agnostic to keep logic testable.

// Line is the single-line command buffer being edited. Caret is a rune
// index, always within [0, len(Buf)].
type Line struct {
	Buf   []rune
	Caret int
}

func NewLine() *Line {
	return &Line{}
}

func (l *Line) String() string {
	return string(l.Buf)
}

func (l *Line) Len() int {
	return len(l.Buf)
}

// Insert places one rune at the caret and advances past it.
func (l *Line) Insert(r rune) {
	l.Caret = clamp(l.Caret, 0, len(l.Buf))
	l.Buf = append(l.Buf[:l.Caret], append([]rune{r}, l.Buf[l.Caret:]...)...)
	l.Caret++
}

// DeleteBackward removes the rune before the caret. No-op at the start.
func (l *Line) DeleteBackward() {
	if l.Caret <= 0 {
		return
	}
	l.Buf = append(l.Buf[:l.Caret-1], l.Buf[l.Caret:]...)
	l.Caret--
}

// DeleteRange removes [start, end), clamped to the buffer, and leaves the
// caret at start.
func (l *Line) DeleteRange(start, end int) {
	start = clamp(start, 0, len(l.Buf))
	end = clamp(end, 0, len(l.Buf))
	if end < start {
		start, end = end, start
	}
	l.Buf = append(l.Buf[:start], l.Buf[end:]...)
	l.Caret = start
}

func (l *Line) Clear() {
	l.Buf = l.Buf[:0]
	l.Caret = 0
}

// MoveCaret shifts the caret by delta, clamped to [0, len].
func (l *Line) MoveCaret(delta int) {
	l.Caret = clamp(l.Caret+delta, 0, len(l.Buf))
}

// SetText replaces the whole buffer and puts the caret at the end.
func (l *Line) SetText(s string) {
	l.Buf = []rune(s)
	l.Caret = len(l.Buf)
}

// DeleteWordBack removes the word ending at the caret: scan back from
// Caret-1 until a space or index 0; a space boundary above the buffer start
// is kept (the heading space survives). No-op at the start.
func (l *Line) DeleteWordBack() {
	if l.Caret <= 0 {
		return
	}
	i := l.Caret - 1
	for i > 0 {
		i--
		if l.Buf[i] == ' ' {
			break
		}
	}
	if i != 0 {
		i++
	}
	l.DeleteRange(i, l.Caret)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
