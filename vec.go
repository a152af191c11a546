package arena

// Vec is a minimal dynamic sequence that takes all of its storage through a
// Handle. It exists as the reference consumer of the handle contract; any
// container accepting the same contract can be backed the same way.
//
// The backing slice always spans the full allocated block; n tracks the
// live prefix. Growth allocates a new block, copies, then deallocates the
// old one, which the arena reclaims when it is still the topmost block.
type Vec[T any] struct {
	h    Handle[T]
	data []T
	n    int
}

// NewVec returns an empty sequence allocating through h.
func NewVec[T any](h Handle[T]) *Vec[T] {
	return &Vec[T]{h: h}
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.n }

// Cap returns the allocated element capacity.
func (v *Vec[T]) Cap() int { return len(v.data) }

// Reserve grows the capacity to at least c. Existing elements are
// preserved. No-op when the capacity already suffices.
func (v *Vec[T]) Reserve(c int) error {
	if c <= len(v.data) {
		return nil
	}
	nd, err := v.h.Allocate(c)
	if err != nil {
		return err
	}
	copy(nd, v.data[:v.n])
	old := v.data
	v.data = nd
	v.h.Deallocate(old)
	return nil
}

// Push appends x, growing the capacity (doubling, minimum 1) when full.
func (v *Vec[T]) Push(x T) error {
	if v.n == len(v.data) {
		nc := len(v.data) * 2
		if nc == 0 {
			nc = 1
		}
		if err := v.Reserve(nc); err != nil {
			return err
		}
	}
	v.data[v.n] = x
	v.n++
	return nil
}

// Pop removes and returns the last element. The second result is false on
// an empty sequence.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}
	v.n--
	x := v.data[v.n]
	v.data[v.n] = zero
	return x, true
}

// Slice returns the live elements. The slice aliases the sequence's
// storage and is invalidated by any growth, Release, or arena Reset.
func (v *Vec[T]) Slice() []T { return v.data[:v.n] }

// Handle returns the allocation handle the sequence was built with.
func (v *Vec[T]) Handle() Handle[T] { return v.h }

// Release deallocates the backing block and empties the sequence. The
// sequence stays usable; the next Push allocates again.
func (v *Vec[T]) Release() {
	v.h.Deallocate(v.data)
	v.data = nil
	v.n = 0
}
