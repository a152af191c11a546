//go:build linux

package arena

import (
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMmapAllocatorAlloc(t *testing.T) {
	m := NewMmapAllocator()

	p, err := m.Alloc(4096, 64)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Zero(t, uintptr(p)%uintptr(os.Getpagesize()), "mappings are page aligned")

	// mapped memory is writable and zeroed
	b := unsafe.Slice((*byte)(p), 4096)
	assert.Zero(t, b[0])
	assert.Zero(t, b[4095])
	b[0], b[4095] = 1, 2
	assert.EqualValues(t, 1, b[0])

	m.Free(p)
}

func TestMmapAllocatorRejects(t *testing.T) {
	m := NewMmapAllocator()

	_, err := m.Alloc(0, 8)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// alignments beyond the page size cannot be honored
	tooBig := uintptr(os.Getpagesize()) * 2
	_, err = m.Alloc(4096, tooBig)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestMmapAllocatorFreeUnknown(t *testing.T) {
	m := NewMmapAllocator()
	var x int64
	m.Free(unsafe.Pointer(&x))
	m.Free(nil)
}

func TestDynamicArenaOnMmap(t *testing.T) {
	d, err := NewDynamicArena(8192, 8, WithBlockAllocator(NewMmapAllocator()))
	require.NoError(t, err)

	p, err := d.Allocate(128)
	require.NoError(t, err)
	require.NotNil(t, p)

	// mapped buffers behave like any other: bump, reclaim, reallocate
	d.Deallocate(p, 128)
	assert.Zero(t, d.Used())

	require.NoError(t, d.Reallocate(4096))
	assert.Equal(t, 4096, d.Capacity())

	s, err := AllocSlice[int64](d, 16)
	require.NoError(t, err)
	for i := range s {
		s[i] = int64(i)
	}
	assert.EqualValues(t, 15, s[15])

	d.Release()
	assert.False(t, d.Attached())
}
