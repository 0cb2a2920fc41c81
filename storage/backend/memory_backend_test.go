package backend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryBackendAllocateAndFree(t *testing.T) {
	be := NewMemoryBackend(1024)

	buf, err := be.Allocate(512)
	require.NoError(t, err)
	require.Len(t, buf, 512)
	require.EqualValues(t, 512, be.AllocatedBytes())

	be.Free(buf)
	require.EqualValues(t, 0, be.AllocatedBytes())
}

func TestMemoryBackendBuffersAreZeroFilledAndStable(t *testing.T) {
	be := NewMemoryBackend(1024)

	first, err := be.Allocate(64)
	require.NoError(t, err)
	for _, b := range first {
		require.Zero(t, b, "fresh buffers must come back zero filled")
	}

	copy(first, []byte("written before the second allocation"))
	second, err := be.Allocate(64)
	require.NoError(t, err)

	// later allocations neither share storage with nor invalidate
	// earlier buffers
	require.NotSame(t, &first[0], &second[0])
	require.Equal(t, byte('w'), first[0])
	for _, b := range second {
		require.Zero(t, b)
	}

	require.EqualValues(t, 128, be.AllocatedBytes())
	be.Free(first)
	be.Free(second)
	require.EqualValues(t, 0, be.AllocatedBytes())
}

func TestMemoryBackendFreeIgnoresForeignBuffer(t *testing.T) {
	be := NewMemoryBackend(1024)

	buf, err := be.Allocate(32)
	require.NoError(t, err)

	be.Free(make([]byte, 32))
	require.EqualValues(t, 32, be.AllocatedBytes())

	be.Free(buf)
	be.Free(buf) // double free of a released buffer is a no-op
	require.EqualValues(t, 0, be.AllocatedBytes())
}

func TestMemoryBackendCapacityExceeded(t *testing.T) {
	be := NewMemoryBackend(100)

	buf, err := be.Allocate(80)
	require.NoError(t, err)

	_, err = be.Allocate(40)
	require.ErrorIs(t, err, ErrAllocation)
	// the failed request leaves the accounting untouched
	require.EqualValues(t, 80, be.AllocatedBytes())

	be.Free(buf)
	_, err = be.Allocate(100)
	require.NoError(t, err)
}
