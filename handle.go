package arena

import "unsafe"

// Handle is a copyable, non-owning allocation capability bound to one
// arena, satisfying the minimal container-allocator contract: Allocate,
// Deallocate, rebind to another element type, and identity-based equality.
//
// A handle holds only a reference; its validity window is exactly the
// arena's lifetime. Two handles are equal (via == or Equal) iff they
// reference the identical arena and carry the same alignment parameter —
// identity of the arena, never value equality of its contents, because
// containers use this to decide whether two allocators are interchangeable.
type Handle[T any] struct {
	a     *Arena
	align uintptr
}

// Bind derives a handle for element type T from an arena. The element
// alignment must not exceed the arena's; this is checked here, once, so
// every later Allocate is free of it.
func Bind[T any](src Source) (Handle[T], error) {
	a := src.arenaRef()
	if a == nil || !validAlignment(a.align) {
		return Handle[T]{}, errOp("bind", ErrConfig, 0, 0)
	}
	var zero T
	if unsafe.Alignof(zero) > a.align {
		return Handle[T]{}, errOp("bind", ErrConfig, int(unsafe.Sizeof(zero)), unsafe.Alignof(zero))
	}
	return Handle[T]{a: a, align: a.align}, nil
}

// Allocate returns storage for n elements of T as a full-length slice
// backed by the arena (or its fallback path). n == 0 and zero-sized
// element types return (nil, nil).
func (h Handle[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, errOp("allocate", ErrInvalidArgument, n, h.align)
	}
	var zero T
	total := n * int(unsafe.Sizeof(zero))
	if total == 0 {
		return nil, nil
	}
	p, err := h.a.AllocateAligned(total, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(p), n), nil
}

// Deallocate returns a block obtained from Allocate. s must be the full
// slice as allocated. Never reports; nil and empty slices are ignored.
func (h Handle[T]) Deallocate(s []T) {
	if len(s) == 0 {
		return
	}
	var zero T
	h.a.Deallocate(unsafe.Pointer(&s[0]), len(s)*int(unsafe.Sizeof(zero)))
}

// Arena returns the bound arena.
func (h Handle[T]) Arena() *Arena { return h.a }

// Align returns the handle's alignment parameter (the arena alignment
// captured at bind time).
func (h Handle[T]) Align() uintptr { return h.align }

// Rebind converts a handle to element type U, preserving the arena
// reference and the alignment parameter. The Go spelling of the
// allocator rebind contract; methods cannot introduce type parameters.
func Rebind[U, T any](h Handle[T]) (Handle[U], error) {
	var zero U
	if unsafe.Alignof(zero) > h.align {
		return Handle[U]{}, errOp("rebind", ErrConfig, int(unsafe.Sizeof(zero)), unsafe.Alignof(zero))
	}
	return Handle[U]{a: h.a, align: h.align}, nil
}

// Equal reports handle equality across element types: same arena instance,
// same alignment parameter.
func Equal[T, U any](x Handle[T], y Handle[U]) bool {
	return x.a == y.a && x.align == y.align
}
