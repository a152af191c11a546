package arena

// FixedArena is an Arena whose buffer is storage owned by the arena object
// itself: attached once at construction, never reattached, never freed
// before the arena. Its lifetime bounds the buffer's lifetime exactly.
type FixedArena struct {
	Arena
}

// NewFixedArena builds an arena over size bytes of owned storage aligned to
// align. Fails with ErrInvalidArgument for size <= 0 and ErrConfig for an
// unsupported alignment.
func NewFixedArena(size int, align uintptr, opts ...Option) (*FixedArena, error) {
	if size <= 0 {
		return nil, errOp("fixed", ErrInvalidArgument, size, align)
	}
	cfg := applyOptions(opts)
	core, err := newArena(align, cfg.blocks)
	if err != nil {
		return nil, err
	}
	f := &FixedArena{Arena: core}
	if err := f.attach(newAlignedBuffer(size, align)); err != nil {
		return nil, err
	}
	return f, nil
}
