package arena

import "unsafe"

// SmallBuffer composes a FixedArena sized for exactly n elements of T with
// a Vec bound to that arena. Construction reserves all n slots up front, so
// the first n pushes are guaranteed to stay inside the owned storage and
// never touch the fallback path.
//
// Copy hazard: a Vec copied out of Seq() carries a handle that still
// references this wrapper's arena. If the copy outlives the wrapper, every
// allocation through it is a lifetime violation. This is documented, not
// prevented; keep the wrapper alive as long as any derived sequence.
type SmallBuffer[T any] struct {
	arena *FixedArena
	vec   *Vec[T]
	n     int
}

// NewSmallBuffer builds a small-buffer sequence with inline capacity for n
// elements of T. Fails with ErrInvalidArgument for n <= 0, ErrConfig for
// zero-sized element types and when the eager reserve did not land in the
// owned storage.
func NewSmallBuffer[T any](n int) (*SmallBuffer[T], error) {
	if n <= 0 {
		return nil, errOp("smallbuffer", ErrInvalidArgument, n, 0)
	}
	var zero T
	size := n * int(unsafe.Sizeof(zero))
	align := unsafe.Alignof(zero)
	if size == 0 {
		return nil, errOp("smallbuffer", ErrConfig, n, align)
	}

	fa, err := NewFixedArena(size, align)
	if err != nil {
		return nil, err
	}
	h, err := Bind[T](fa)
	if err != nil {
		return nil, err
	}
	v := NewVec[T](h)
	if err := v.Reserve(n); err != nil {
		return nil, err
	}
	if v.Cap() < n || fa.Metrics().FallbackAllocs != 0 {
		return nil, errOp("smallbuffer", ErrConfig, size, align)
	}
	return &SmallBuffer[T]{arena: fa, vec: v, n: n}, nil
}

// Seq returns the inner sequence. See the type comment for the copy
// hazard.
func (b *SmallBuffer[T]) Seq() *Vec[T] { return b.vec }

// Cap returns the inline capacity n the buffer was built with.
func (b *SmallBuffer[T]) Cap() int { return b.n }

// Arena returns the owned arena, mainly for introspection: its fallback
// counters reveal whether the sequence has spilled past the inline
// capacity.
func (b *SmallBuffer[T]) Arena() *FixedArena { return b.arena }
