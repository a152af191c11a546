package arena

import (
	"runtime"
	"unsafe"
)

// Alloc returns a pointer to a zeroed T stored in the arena. The pointer is
// valid until the block is deallocated, the arena is reset, or its buffer
// goes away. Zero-sized types return (nil, nil).
func Alloc[T any](src Source) (*T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return nil, nil
	}
	p, err := src.arenaRef().AllocateAligned(size, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	clear(unsafe.Slice((*byte)(p), size))
	return (*T)(p), nil
}

// AllocSlice returns a slice of n elements of T backed by the arena. The
// elements are not zeroed; bump memory may hold earlier allocations'
// contents after a Reset. Returns (nil, nil) for n <= 0 and for zero-sized
// element types.
func AllocSlice[T any](src Source, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return nil, nil
	}
	p, err := src.arenaRef().AllocateAligned(n*size, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(p), n), nil
}

// AllocSliceZeroed is AllocSlice with the memory cleared.
func AllocSliceZeroed[T any](src Source, n int) ([]T, error) {
	s, err := AllocSlice[T](src, n)
	if err != nil || s == nil {
		return nil, err
	}
	var zero T
	clear(unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), n*int(unsafe.Sizeof(zero))))
	return s, nil
}

// PtrAndKeepAlive returns t after pinning src against garbage collection up
// to this point. Useful when the only remaining reference to the arena is
// about to go out of scope while t is still consumed by unsafe code.
func PtrAndKeepAlive[T any](src Source, t *T) *T {
	runtime.KeepAlive(src)
	return t
}
