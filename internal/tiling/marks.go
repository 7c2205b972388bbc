package tiling

// markBuffer is a per-position boolean array recording whether a byte of
// an input has already been committed to a tile (or was marked by the
// caller before the call began). Marks are monotonic: once set, a
// markBuffer never clears a position during a single MatchStrings call.
type markBuffer struct {
	marks []bool
}

// newMarkBuffer allocates a markBuffer of length n, seeded from init: byte
// '1' at position i marks position i, any other byte (including '0')
// leaves it unmarked. If init is shorter than n, the remaining tail is
// unmarked.
func newMarkBuffer(n uint64, init string) *markBuffer {
	marks := make([]bool, n)
	for i := uint64(0); i < n && i < uint64(len(init)); i++ {
		marks[i] = init[i] == '1'
	}
	return &markBuffer{marks: marks}
}

func (m *markBuffer) isMarked(i uint64) bool {
	return m.marks[i]
}

func (m *markBuffer) setMarked(i uint64) {
	m.marks[i] = true
}

// markRange marks every position in [start, start+length).
func (m *markBuffer) markRange(start, length uint64) {
	for i := start; i < start+length; i++ {
		m.setMarked(i)
	}
}

// allUnmarked reports whether every position in [start, start+length) is
// unmarked.
func (m *markBuffer) allUnmarked(start, length uint64) bool {
	for i := start; i < start+length; i++ {
		if m.marks[i] {
			return false
		}
	}
	return true
}

// firstUnmarked returns the index of the first unmarked position, or
// len(marks) if every position is marked.
func (m *markBuffer) firstUnmarked() uint64 {
	for i, marked := range m.marks {
		if !marked {
			return uint64(i)
		}
	}
	return uint64(len(m.marks))
}
