package arena

import "unsafe"

const (
	ptrSize = unsafe.Sizeof(uintptr(0))

	// maxNativeAlign is the strictest alignment the Go allocator guarantees
	// for ordinary heap objects. Anything above it is over-aligned and must
	// come from an aligned block allocator.
	maxNativeAlign = unsafe.Alignof(complex128(0))
)

// validAlignment reports whether align is usable as an arena or request
// alignment: a power of two, and when over-aligned beyond the natural
// maximum, also a multiple of the pointer size.
func validAlignment(align uintptr) bool {
	if align == 0 || align&(align-1) != 0 {
		return false
	}
	if align <= maxNativeAlign {
		return true
	}
	return align%ptrSize == 0
}

// Buffer describes a contiguous region of memory with a declared alignment.
// It is a value descriptor: copying a Buffer does not copy the memory.
type Buffer struct {
	base  unsafe.Pointer
	size  uintptr
	align uintptr

	// pin keeps the backing allocation reachable for buffers built over a
	// Go slice. Nil when the memory is pinned elsewhere (block allocators
	// pin their own blocks).
	pin []byte
}

// NewBuffer builds a Buffer over data, declaring that its first byte is
// aligned to align. The descriptor keeps data reachable. Fails with
// ErrInvalidState for empty data and ErrConfig for a bad alignment or a
// base address that is not a multiple of it.
func NewBuffer(data []byte, align uintptr) (Buffer, error) {
	if !validAlignment(align) {
		return Buffer{}, errOp("buffer", ErrConfig, len(data), align)
	}
	if len(data) == 0 {
		return Buffer{}, errOp("buffer", ErrInvalidState, 0, align)
	}
	base := unsafe.Pointer(&data[0])
	if uintptr(base)%align != 0 {
		return Buffer{}, errOp("buffer", ErrConfig, len(data), align)
	}
	return Buffer{base: base, size: uintptr(len(data)), align: align, pin: data}, nil
}

// Base returns the first byte of the described region.
func (b Buffer) Base() unsafe.Pointer { return b.base }

// Size returns the region size in bytes.
func (b Buffer) Size() int { return int(b.size) }

// Align returns the declared alignment.
func (b Buffer) Align() uintptr { return b.align }

// newAlignedBuffer allocates size bytes aligned to align. The buffer owns
// its storage through the pin. align must already be validated.
func newAlignedBuffer(size int, align uintptr) Buffer {
	raw := make([]byte, uintptr(size)+align-1)
	base := uintptr(unsafe.Pointer(&raw[0]))
	off := (align - base%align) % align
	return Buffer{
		base:  unsafe.Pointer(&raw[off]),
		size:  uintptr(size),
		align: align,
		pin:   raw,
	}
}
