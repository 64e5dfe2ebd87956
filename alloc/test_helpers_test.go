package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/provider"
)

// newTestHeap returns an empty heap over a Memory provider of the given capacity.
func newTestHeap(t testing.TB, capacity int) *Heap {
	t.Helper()
	p, err := provider.NewMemory(capacity)
	require.NoError(t, err)
	return New(p, nil)
}

// mustMalloc allocates or fails the test.
func mustMalloc(t testing.TB, h *Heap, size uint) Ptr {
	t.Helper()
	p, err := h.Malloc(size)
	require.NoError(t, err, "Malloc(%d)", size)
	require.NotEqual(t, Nil, p)
	return p
}

// requireRegions compares the region list against want and runs Check.
func requireRegions(t testing.TB, h *Heap, want ...Region) {
	t.Helper()
	require.Equal(t, want, h.Regions())
	require.NoError(t, h.Check())
}

// fill writes v over every byte of b.
func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}

// requireFilled asserts that every byte of b equals v.
func requireFilled(t testing.TB, b []byte, v byte) {
	t.Helper()
	for i, got := range b {
		if got != v {
			require.Failf(t, "unexpected byte", "offset %d: got 0x%02X, want 0x%02X", i, got, v)
		}
	}
}
