package alloc

import (
	"fmt"
	"io"
)

// Stats holds operation counters since the heap was created.
type Stats struct {
	MallocCalls  int    `json:"malloc_calls"`
	CallocCalls  int    `json:"calloc_calls"`
	ReallocCalls int    `json:"realloc_calls"`
	FreeCalls    int    `json:"free_calls"` // non-nil Free calls
	GrowCalls    int    `json:"grow_calls"` // successful provider requests
	GrowBytes    uint64 `json:"grow_bytes"` // bytes added by the provider
	Splits       int    `json:"splits"`     // regions split on allocation
	Coalesces    int    `json:"coalesces"`  // merges of two free neighbours
	Failures     int    `json:"failures"`   // out-of-memory returns
}

// Usage describes how the arena is currently carved up. Byte counts include
// headers, so UsedBytes+FreeBytes == ArenaBytes.
type Usage struct {
	ArenaBytes  uint `json:"arena_bytes"`
	UsedBytes   uint `json:"used_bytes"`
	FreeBytes   uint `json:"free_bytes"`
	Regions     int  `json:"regions"`
	UsedRegions int  `json:"used_regions"`
	FreeRegions int  `json:"free_regions"`
	LargestFree uint `json:"largest_free"`
}

// Fragmentation returns the share of free bytes that lie outside the largest
// free region: 0 when all free space is one region, approaching 1 as it
// scatters.
func (u Usage) Fragmentation() float64 {
	if u.FreeBytes == 0 {
		return 0
	}
	return 1 - float64(u.LargestFree)/float64(u.FreeBytes)
}

// Stats returns a copy of the operation counters.
func (h *Heap) Stats() Stats {
	return h.stats
}

// Regions returns a snapshot of the region list in address order.
func (h *Heap) Regions() []Region {
	var out []Region
	for off := h.head; off != none; off = h.next(off) {
		out = append(out, Region{Off: off, Size: h.size(off), Free: !h.inUse(off)})
	}
	return out
}

// Usage walks the list and summarizes it.
func (h *Heap) Usage() Usage {
	u := Usage{ArenaBytes: uint(len(h.p.Bytes()))}
	for off := h.head; off != none; off = h.next(off) {
		size := h.size(off)
		u.Regions++
		if h.inUse(off) {
			u.UsedRegions++
			u.UsedBytes += size
			continue
		}
		u.FreeRegions++
		u.FreeBytes += size
		u.LargestFree = max(u.LargestFree, size)
	}
	return u
}

// PrintStats writes a human-readable report of counters and usage to w.
func (h *Heap) PrintStats(w io.Writer) {
	s := h.stats
	u := h.Usage()
	fmt.Fprintf(w, "\n=== HEAP STATISTICS ===\n")
	fmt.Fprintf(w, "Malloc calls:       %d\n", s.MallocCalls)
	fmt.Fprintf(w, "Calloc calls:       %d\n", s.CallocCalls)
	fmt.Fprintf(w, "Realloc calls:      %d\n", s.ReallocCalls)
	fmt.Fprintf(w, "Free calls:         %d\n", s.FreeCalls)
	fmt.Fprintf(w, "Grow calls:         %d (%d bytes added)\n", s.GrowCalls, s.GrowBytes)
	fmt.Fprintf(w, "Region splits:      %d\n", s.Splits)
	fmt.Fprintf(w, "Coalesces:          %d\n", s.Coalesces)
	fmt.Fprintf(w, "Failures:           %d\n", s.Failures)

	fmt.Fprintf(w, "\nArena:\n")
	fmt.Fprintf(w, "  Size:             %d bytes\n", u.ArenaBytes)
	fmt.Fprintf(w, "  Regions:          %d (%d used, %d free)\n", u.Regions, u.UsedRegions, u.FreeRegions)
	fmt.Fprintf(w, "  Used:             %d bytes\n", u.UsedBytes)
	fmt.Fprintf(w, "  Free:             %d bytes\n", u.FreeBytes)
	fmt.Fprintf(w, "  Largest free:     %d bytes\n", u.LargestFree)
	fmt.Fprintf(w, "  Fragmentation:    %.1f%%\n", 100*u.Fragmentation())
	fmt.Fprintf(w, "========================\n\n")
}
