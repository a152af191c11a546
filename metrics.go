package arena

// Used returns the number of buffer bytes currently consumed, including the
// padding added by alignment rounding. Zero while unattached. Fallback
// blocks are not buffer bytes and are not counted.
func (a *Arena) Used() int {
	if a.buf == nil {
		return 0
	}
	return int(a.off)
}

// Capacity returns the attached buffer's size in bytes, zero while
// unattached.
func (a *Arena) Capacity() int {
	if a.buf == nil {
		return 0
	}
	return int(a.buf.size)
}

// Remaining returns the free bytes between the cursor and the end of the
// buffer.
func (a *Arena) Remaining() int {
	return a.Capacity() - a.Used()
}

// Usage returns the consumed fraction of the buffer (0.0 to 1.0). Zero
// while unattached.
func (a *Arena) Usage() float64 {
	c := a.Capacity()
	if c == 0 {
		return 0
	}
	return float64(a.Used()) / float64(c)
}

// Stats is a point-in-time snapshot of an arena.
type Stats struct {
	Used      int     // buffer bytes consumed
	Capacity  int     // buffer size in bytes
	Remaining int     // free buffer bytes
	Usage     float64 // Used / Capacity
	Attached  bool

	FallbackAllocs uint64 // allocations served by the block allocator
	FallbackFrees  uint64 // fallback blocks released so far
}

// Metrics returns a snapshot of the arena's counters.
func (a *Arena) Metrics() Stats {
	return Stats{
		Used:           a.Used(),
		Capacity:       a.Capacity(),
		Remaining:      a.Remaining(),
		Usage:          a.Usage(),
		Attached:       a.Attached(),
		FallbackAllocs: a.fallbackAllocs,
		FallbackFrees:  a.fallbackFrees,
	}
}
