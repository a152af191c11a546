package arena

import "unsafe"

// Arena is a bump allocator over a single attached buffer. The cursor only
// moves forward on allocation and only backward on a LIFO-matching
// deallocation or a Reset. An arena with no attached buffer rejects every
// allocation. Construct one through NewFixedArena or NewDynamicArena.
//
// Not goroutine-safe. Must not be copied after first use.
type Arena struct {
	buf   *Buffer // nil while unattached
	off   uintptr // cursor offset from buf.base, 0 <= off <= buf.size
	align uintptr

	blocks BlockAllocator

	fallbackAllocs uint64
	fallbackFrees  uint64
}

// Source is implemented by every arena variant. It yields the underlying
// bump arena that handles and typed helpers bind to.
type Source interface {
	arenaRef() *Arena
}

func (a *Arena) arenaRef() *Arena { return a }

func newArena(align uintptr, blocks BlockAllocator) (Arena, error) {
	if !validAlignment(align) {
		return Arena{}, errOp("new", ErrConfig, 0, align)
	}
	if blocks == nil {
		blocks = NewHeapAllocator()
	}
	return Arena{align: align, blocks: blocks}, nil
}

// attach binds buf as the arena's backing store and rewinds the cursor.
func (a *Arena) attach(b Buffer) error {
	if b.base == nil || b.size == 0 {
		return errOp("attach", ErrInvalidState, int(b.size), b.align)
	}
	if b.align < a.align {
		return errOp("attach", ErrConfig, int(b.size), b.align)
	}
	a.buf = &b
	a.off = 0
	return nil
}

func (a *Arena) detach() {
	a.buf = nil
	a.off = 0
}

// checkLive is the best-effort outlive detection run before every allocate
// and deallocate: the cursor must still lie within the attached buffer. If
// the buffer is truly gone the check may pass on stale state; that remains
// undefined behavior, the check only narrows the failure window.
func (a *Arena) checkLive(op string) error {
	if a.buf == nil || a.blocks == nil {
		return errOp(op, ErrInvalidState, 0, a.align)
	}
	if a.off > a.buf.size {
		return errOp(op, ErrLifetime, int(a.off), a.align)
	}
	return nil
}

// alignedSize rounds n up to the nearest multiple of the arena's alignment.
func (a *Arena) alignedSize(n uintptr) uintptr {
	return (n + a.align - 1) &^ (a.align - 1)
}

func (a *Arena) cursor() unsafe.Pointer {
	return unsafe.Add(a.buf.base, a.off)
}

// contains reports whether p points into the attached buffer. The one-past-
// the-end address is included so a full-buffer block still matches.
func (a *Arena) contains(p unsafe.Pointer) bool {
	base := uintptr(a.buf.base)
	q := uintptr(p)
	return q >= base && q <= base+a.buf.size
}

// Align returns the arena's alignment.
func (a *Arena) Align() uintptr { return a.align }

// Attached reports whether a buffer is currently attached.
func (a *Arena) Attached() bool { return a.buf != nil }

// Allocate returns n bytes aligned to the arena's alignment. n is rounded
// up to a multiple of the alignment before the cursor advances. n == 0
// returns (nil, nil) with no side effect. When the remaining capacity
// cannot hold the rounded request the block allocator serves it instead and
// the returned pointer lies outside the buffer.
func (a *Arena) Allocate(n int) (unsafe.Pointer, error) {
	return a.AllocateAligned(n, a.align)
}

// AllocateAligned is Allocate with an explicit request alignment, which
// must not exceed the arena's. The arena always advances by multiples of
// its own alignment, so any reqAlign up to it is honored for free.
func (a *Arena) AllocateAligned(n int, reqAlign uintptr) (unsafe.Pointer, error) {
	if err := a.checkLive("allocate"); err != nil {
		return nil, err
	}
	if !validAlignment(reqAlign) || reqAlign > a.align {
		return nil, errOp("allocate", ErrConfig, n, reqAlign)
	}
	if n == 0 {
		return nil, nil
	}
	if n < 0 {
		return nil, errOp("allocate", ErrInvalidArgument, n, reqAlign)
	}

	need := a.alignedSize(uintptr(n))
	if a.buf.size-a.off >= need {
		p := a.cursor()
		a.off += need
		return p, nil
	}

	p, err := a.blocks.Alloc(uintptr(n), a.align)
	if err != nil {
		return nil, &Error{Op: "allocate", Kind: ErrAllocFailed, Size: n, Align: a.align, Err: err}
	}
	a.fallbackAllocs++
	return p, nil
}

// Deallocate returns a block to the arena. It never reports an error.
//
// In-buffer pointers are reclaimed only when the block is the topmost
// allocation (p plus the rounded size meets the cursor); any other
// in-buffer pointer is a no-op until Reset. Pointers outside the buffer
// must come from the fallback path and are released through the block
// allocator.
func (a *Arena) Deallocate(p unsafe.Pointer, n int) {
	if p == nil || n <= 0 {
		return
	}
	if a.checkLive("deallocate") != nil {
		return
	}
	if a.contains(p) {
		if uintptr(p)+a.alignedSize(uintptr(n)) == uintptr(a.cursor()) {
			a.off -= a.alignedSize(uintptr(n))
		}
		// non-topmost block: no free list, space returns on Reset
		return
	}
	a.blocks.Free(p)
	a.fallbackFrees++
}

// Reset moves the cursor back to the start of the buffer. Every pointer
// previously returned from the buffer is invalidated; the caller must not
// reuse them. No-op while unattached.
func (a *Arena) Reset() {
	if a.buf == nil {
		return
	}
	a.off = 0
}

// SetFallback replaces the block allocator serving the fallback path and,
// for a DynamicArena, future buffer (re)allocations. Blocks handed out by
// the previous allocator must still be freed through it; swapping while
// fallback blocks are live splits that bookkeeping across both. Nil is
// ignored.
func (a *Arena) SetFallback(blocks BlockAllocator) {
	if blocks != nil {
		a.blocks = blocks
	}
}

// Option configures arena construction.
type Option func(*config)

type config struct {
	blocks BlockAllocator
}

// WithBlockAllocator injects the allocation primitive used for fallback
// allocations and, on DynamicArena, for the buffer itself.
func WithBlockAllocator(b BlockAllocator) Option {
	return func(c *config) { c.blocks = b }
}

func applyOptions(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return c
}
