package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVec(t *testing.T, arenaSize int) (*Vec[int64], *FixedArena) {
	t.Helper()
	fa, err := NewFixedArena(arenaSize, 8)
	require.NoError(t, err)
	h, err := Bind[int64](fa)
	require.NoError(t, err)
	return NewVec(h), fa
}

func TestVecPushPop(t *testing.T) {
	v, _ := newTestVec(t, 1024)

	assert.Zero(t, v.Len())
	assert.Zero(t, v.Cap())

	for i := int64(0); i < 10; i++ {
		require.NoError(t, v.Push(i*i))
	}
	assert.Equal(t, 10, v.Len())
	assert.GreaterOrEqual(t, v.Cap(), 10)
	assert.Equal(t, []int64{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}, v.Slice())

	x, ok := v.Pop()
	assert.True(t, ok)
	assert.EqualValues(t, 81, x)
	assert.Equal(t, 9, v.Len())

	for v.Len() > 0 {
		v.Pop()
	}
	_, ok = v.Pop()
	assert.False(t, ok)
}

func TestVecGrowth(t *testing.T) {
	v, _ := newTestVec(t, 1024)

	// capacity doubles from 1
	wantCaps := []int{1, 2, 4, 4, 8}
	for i := 0; i < 5; i++ {
		require.NoError(t, v.Push(int64(i)))
		assert.Equal(t, wantCaps[i], v.Cap(), "after push %d", i+1)
	}
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, v.Slice())
}

func TestVecReserve(t *testing.T) {
	v, fa := newTestVec(t, 1024)

	require.NoError(t, v.Reserve(16))
	assert.Equal(t, 16, v.Cap())
	assert.Equal(t, 128, fa.Used())

	// shrinking requests are no-ops
	require.NoError(t, v.Reserve(4))
	assert.Equal(t, 16, v.Cap())
	assert.Equal(t, 128, fa.Used())

	// elements survive a growth
	for i := int64(0); i < 16; i++ {
		require.NoError(t, v.Push(i))
	}
	require.NoError(t, v.Reserve(32))
	assert.Equal(t, 16, v.Len())
	assert.EqualValues(t, 15, v.Slice()[15])
}

func TestVecRelease(t *testing.T) {
	v, fa := newTestVec(t, 1024)

	require.NoError(t, v.Reserve(8))
	require.NoError(t, v.Push(7))
	assert.Equal(t, 64, fa.Used())

	// the backing block is the topmost allocation, so Release unwinds it
	v.Release()
	assert.Zero(t, v.Len())
	assert.Zero(t, v.Cap())
	assert.Zero(t, fa.Used())

	// the sequence stays usable
	require.NoError(t, v.Push(1))
	assert.Equal(t, 1, v.Len())
}

func TestVecSpillsToFallback(t *testing.T) {
	v, fa := newTestVec(t, 32)

	// 4 elements fill the arena exactly; the fifth forces a growth that
	// cannot fit and lands on the fallback path
	require.NoError(t, v.Reserve(4))
	for i := int64(0); i < 5; i++ {
		require.NoError(t, v.Push(i))
	}
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, v.Slice())
	assert.EqualValues(t, 1, fa.Metrics().FallbackAllocs)

	// the old in-buffer block was topmost and got reclaimed
	assert.Zero(t, fa.Used())
}

func TestVecAllocationFailure(t *testing.T) {
	fa, err := NewFixedArena(32, 8, WithBlockAllocator(failingAllocator{}))
	require.NoError(t, err)
	h, err := Bind[int64](fa)
	require.NoError(t, err)
	v := NewVec(h)

	require.NoError(t, v.Push(1))
	require.NoError(t, v.Push(2))
	// the arena is full and the fallback is broken
	err = v.Push(3)
	assert.ErrorIs(t, err, ErrAllocFailed)
	// the sequence is left intact
	assert.Equal(t, []int64{1, 2}, v.Slice())
}
