//go:build linux

package arena

import (
	"os"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// MmapAllocator is a BlockAllocator backed by anonymous private mappings.
// Every block is page-aligned, so any alignment up to the page size is
// honored. Memory lives outside the Go heap and is returned to the kernel
// on Free.
type MmapAllocator struct {
	mapped map[uintptr][]byte
}

// NewMmapAllocator returns an empty mmap-backed allocator.
func NewMmapAllocator() *MmapAllocator {
	return &MmapAllocator{mapped: make(map[uintptr][]byte)}
}

// Alloc maps size bytes of zeroed memory. Alignments above the page size
// are rejected with ErrConfig.
func (m *MmapAllocator) Alloc(size, align uintptr) (unsafe.Pointer, error) {
	if !validAlignment(align) || align > uintptr(os.Getpagesize()) {
		return nil, errOp("mmap", ErrConfig, int(size), align)
	}
	if size == 0 {
		return nil, errOp("mmap", ErrInvalidArgument, 0, align)
	}
	b, err := unix.Mmap(-1, 0, int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, &Error{
			Op:    "mmap",
			Kind:  ErrAllocFailed,
			Size:  int(size),
			Align: align,
			Err:   errors.Wrapf(err, "mmap %d bytes", size),
		}
	}
	p := unsafe.Pointer(&b[0])
	m.mapped[uintptr(p)] = b
	return p, nil
}

// Free unmaps the block starting at p. Unknown pointers are ignored, and
// munmap failures are swallowed: Free never reports.
func (m *MmapAllocator) Free(p unsafe.Pointer) {
	b, ok := m.mapped[uintptr(p)]
	if !ok {
		return
	}
	delete(m.mapped, uintptr(p))
	_ = unix.Munmap(b)
}
