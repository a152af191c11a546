package arena

// DynamicArena is an Arena whose buffer comes from its block allocator. It
// starts unattached (or adopts a caller-supplied buffer), can swap in a
// fresh buffer through Reallocate, and frees its buffer on Release.
type DynamicArena struct {
	Arena
}

// NewDynamicArena builds a dynamic arena with the given alignment. A size
// of zero starts unattached: every allocation fails with ErrInvalidState
// until Reallocate attaches a buffer. A positive size allocates
// immediately.
func NewDynamicArena(size int, align uintptr, opts ...Option) (*DynamicArena, error) {
	if size < 0 {
		return nil, errOp("dynamic", ErrInvalidArgument, size, align)
	}
	cfg := applyOptions(opts)
	core, err := newArena(align, cfg.blocks)
	if err != nil {
		return nil, err
	}
	d := &DynamicArena{Arena: core}
	if size > 0 {
		if err := d.Reallocate(size); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// NewDynamicArenaFromBuffer builds a dynamic arena that adopts buf.
//
// Ownership of buf transfers to the arena: Release and Reallocate hand its
// base to the block allocator's free primitive and drop the descriptor.
// Callers who built buf over memory they still intend to own must not pass
// it here. The buffer's alignment must be at least align.
func NewDynamicArenaFromBuffer(buf Buffer, align uintptr, opts ...Option) (*DynamicArena, error) {
	cfg := applyOptions(opts)
	core, err := newArena(align, cfg.blocks)
	if err != nil {
		return nil, err
	}
	d := &DynamicArena{Arena: core}
	if err := d.attach(buf); err != nil {
		return nil, err
	}
	return d, nil
}

// Reallocate frees the attached buffer, if any, then attaches a freshly
// allocated buffer of size bytes. All previously returned pointers are
// invalidated. Fails with ErrInvalidArgument for size <= 0; on an
// allocation failure the arena is left unattached.
func (d *DynamicArena) Reallocate(size int) error {
	if size <= 0 {
		return errOp("reallocate", ErrInvalidArgument, size, d.align)
	}
	d.Release()
	p, err := d.blocks.Alloc(uintptr(size), d.align)
	if err != nil {
		return &Error{Op: "reallocate", Kind: ErrAllocFailed, Size: size, Align: d.align, Err: err}
	}
	return d.attach(Buffer{base: p, size: uintptr(size), align: d.align})
}

// Release frees the attached buffer and detaches it, including a buffer
// adopted through NewDynamicArenaFromBuffer. Safe to call repeatedly.
func (d *DynamicArena) Release() {
	if d.buf == nil {
		return
	}
	d.blocks.Free(d.buf.base)
	d.detach()
}
