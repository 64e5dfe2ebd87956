package alloc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_Counters(t *testing.T) {
	h := newTestHeap(t, 4096)

	a := mustMalloc(t, h, 100)
	b := mustMalloc(t, h, 10)
	h.Free(a)
	mustMalloc(t, h, 10) // splits a
	_, err := h.Calloc(2, 8)
	require.NoError(t, err)
	b, err = h.Realloc(b, 300)
	require.NoError(t, err)
	h.Free(b)
	h.Free(Nil)
	_, err = h.Malloc(1 << 20)
	require.Error(t, err)

	s := h.Stats()
	assert.Equal(t, 4, s.MallocCalls)
	assert.Equal(t, 1, s.CallocCalls)
	assert.Equal(t, 1, s.ReallocCalls)
	assert.Equal(t, 2, s.FreeCalls)
	assert.Equal(t, 3, s.GrowCalls)
	assert.Equal(t, uint64(160+64+352), s.GrowBytes)
	assert.Equal(t, 1, s.Failures)
	assert.GreaterOrEqual(t, s.Splits, 1)
	assert.GreaterOrEqual(t, s.Coalesces, 1)
	require.NoError(t, h.Check())
}

func TestUsage(t *testing.T) {
	h := newTestHeap(t, 4096)
	assert.Equal(t, Usage{}, h.Usage())
	assert.Zero(t, h.Usage().Fragmentation())

	a := mustMalloc(t, h, 100) // 160
	mustMalloc(t, h, 10)       // 64
	c := mustMalloc(t, h, 10)  // 64
	mustMalloc(t, h, 10)       // 64
	h.Free(a)
	h.Free(c)

	u := h.Usage()
	assert.Equal(t, Usage{
		ArenaBytes:  352,
		UsedBytes:   128,
		FreeBytes:   224,
		Regions:     4,
		UsedRegions: 2,
		FreeRegions: 2,
		LargestFree: 160,
	}, u)
	assert.Equal(t, u.ArenaBytes, u.UsedBytes+u.FreeBytes)
	assert.InDelta(t, 1-160.0/224.0, u.Fragmentation(), 1e-9)
}

func TestPrintStats(t *testing.T) {
	h := newTestHeap(t, 4096)
	p := mustMalloc(t, h, 10)
	h.Free(p)

	var out bytes.Buffer
	h.PrintStats(&out)

	s := out.String()
	assert.Contains(t, s, "=== HEAP STATISTICS ===")
	assert.Contains(t, s, "Malloc calls:       1")
	assert.Contains(t, s, "Free calls:         1")
	assert.Contains(t, s, "Grow calls:         1 (64 bytes added)")
	assert.Contains(t, s, "Regions:          1 (0 used, 1 free)")
	assert.Contains(t, s, "Fragmentation:    0.0%")
}

func TestRegion_Accessors(t *testing.T) {
	r := Region{Off: 64, Size: 96, Free: true}
	assert.Equal(t, Ptr(96), r.Payload())
	assert.Equal(t, uint(64), r.Usable())
	assert.Equal(t, 160, r.End())
}
