package arena

import (
	"math"
	"unsafe"
)

// BlockAllocator is the aligned allocation primitive behind an arena. It
// serves two roles: the fallback path when the arena's buffer is exhausted,
// and the buffer source for DynamicArena. Implementations must keep every
// block they hand out reachable until Free is called with its pointer, and
// Free must tolerate pointers it does not know (it is a no-op then).
//
// Implementations are not goroutine-safe, matching the arenas that use them.
type BlockAllocator interface {
	Alloc(size, align uintptr) (unsafe.Pointer, error)
	Free(p unsafe.Pointer)
}

// HeapAllocator is the default BlockAllocator. Blocks come from the Go heap,
// over-allocated and rounded up to the requested alignment, and stay pinned
// in a table until freed.
type HeapAllocator struct {
	pinned map[uintptr][]byte
}

// NewHeapAllocator returns an empty heap-backed allocator.
func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{pinned: make(map[uintptr][]byte)}
}

// Alloc returns size bytes whose first byte is a multiple of align.
func (h *HeapAllocator) Alloc(size, align uintptr) (unsafe.Pointer, error) {
	if !validAlignment(align) {
		return nil, errOp("blockalloc", ErrConfig, int(size), align)
	}
	if size == 0 {
		return nil, errOp("blockalloc", ErrInvalidArgument, 0, align)
	}
	if size > math.MaxInt-align {
		return nil, errOp("blockalloc", ErrAllocFailed, 0, align)
	}
	raw := make([]byte, size+align-1)
	base := uintptr(unsafe.Pointer(&raw[0]))
	off := (align - base%align) % align
	p := unsafe.Pointer(&raw[off])
	h.pinned[uintptr(p)] = raw
	return p, nil
}

// Free unpins the block starting at p. Unknown pointers are ignored.
func (h *HeapAllocator) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	delete(h.pinned, uintptr(p))
}

// CountingAllocator wraps another BlockAllocator and counts Alloc and Free
// calls. Useful for verifying allocation behavior, e.g. that a reallocation
// frees exactly one buffer, or that a small-buffer workload never falls back.
type CountingAllocator struct {
	Inner  BlockAllocator
	Allocs int
	Frees  int
}

// NewCountingAllocator wraps inner; a nil inner gets a fresh HeapAllocator.
func NewCountingAllocator(inner BlockAllocator) *CountingAllocator {
	if inner == nil {
		inner = NewHeapAllocator()
	}
	return &CountingAllocator{Inner: inner}
}

func (c *CountingAllocator) Alloc(size, align uintptr) (unsafe.Pointer, error) {
	c.Allocs++
	return c.Inner.Alloc(size, align)
}

func (c *CountingAllocator) Free(p unsafe.Pointer) {
	c.Frees++
	c.Inner.Free(p)
}
