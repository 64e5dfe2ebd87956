package alloc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_RandomOps_GuardInvariants drives random malloc/calloc/realloc/free
// traffic and checks after every step that the list is well formed and that
// every live allocation still holds the byte it was stamped with.
func Test_RandomOps_GuardInvariants(t *testing.T) {
	h := newTestHeap(t, 64<<10)
	rng := rand.New(rand.NewSource(42)) // Fixed seed for reproducibility

	type live struct {
		ptr  Ptr
		size uint
		tag  byte
	}
	var allocs []live
	stamp := func(p Ptr, size uint, tag byte) {
		fill(h.Bytes(p)[:size], tag)
		allocs = append(allocs, live{ptr: p, size: size, tag: tag})
	}

	for i := range 2000 {
		tag := byte(i)
		switch op := rng.Intn(10); {
		case op < 4: // Malloc
			size := uint(rng.Intn(700))
			if p, err := h.Malloc(size); err == nil {
				stamp(p, size, tag)
			}

		case op < 5: // Calloc
			count, size := uint(1+rng.Intn(16)), uint(rng.Intn(40))
			if p, err := h.Calloc(count, size); err == nil {
				requireFilled(t, h.Bytes(p), 0)
				stamp(p, count*size, tag)
			}

		case op < 7: // Realloc
			if len(allocs) == 0 {
				continue
			}
			j := rng.Intn(len(allocs))
			old := allocs[j]
			size := uint(rng.Intn(900))
			p, err := h.Realloc(old.ptr, size)
			if err != nil {
				requireFilled(t, h.Bytes(old.ptr)[:old.size], old.tag)
				continue
			}
			keep := min(old.size, size)
			requireFilled(t, h.Bytes(p)[:keep], old.tag)
			allocs = append(allocs[:j], allocs[j+1:]...)
			stamp(p, size, tag)

		default: // Free
			if len(allocs) == 0 {
				continue
			}
			j := rng.Intn(len(allocs))
			h.Free(allocs[j].ptr)
			allocs = append(allocs[:j], allocs[j+1:]...)
		}

		require.NoError(t, h.Check(), "step %d", i)
		for _, a := range allocs {
			requireFilled(t, h.Bytes(a.ptr)[:a.size], a.tag)
		}
	}

	for _, a := range allocs {
		h.Free(a.ptr)
	}
	require.NoError(t, h.Check())
	u := h.Usage()
	require.Equal(t, 1, u.Regions, "freeing everything must leave one region")
	require.Equal(t, u.ArenaBytes, u.FreeBytes)
	t.Logf("final stats: %+v", h.Stats())
}
