package alloc

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
)

// Check failure kinds.
const (
	CheckEnds      = "Ends"      // head/tail bookkeeping
	CheckHeader    = "Header"    // header unreadable or size malformed
	CheckLinks     = "Links"     // prev/next disagree
	CheckTiling    = "Tiling"    // regions do not cover the arena back to back
	CheckCoalesced = "Coalesced" // two free neighbours left unmerged
)

// CheckError describes the first broken list invariant found by Check.
type CheckError struct {
	Kind    string
	Message string
	Offset  int // region offset, or -1 when not tied to a region
}

func (e *CheckError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("alloc: %s at offset 0x%X: %s", e.Kind, e.Offset, e.Message)
	}
	return fmt.Sprintf("alloc: %s: %s", e.Kind, e.Message)
}

// Check walks the whole region list and returns a *CheckError for the first
// violated invariant, or nil:
//
//   - the head has no predecessor, the tail no successor
//   - each region's successor names it as predecessor
//   - regions are back to back from offset 0 to the arena end
//   - every size is a non-zero multiple of HeaderSize
//   - no two neighbouring regions are both free
//
// Check is linear in the number of regions and meant for tests and tooling.
func (h *Heap) Check() error {
	data := h.p.Bytes()

	if h.head == none || h.tail == none {
		if h.head != h.tail {
			return &CheckError{Kind: CheckEnds, Message: fmt.Sprintf("head %d but tail %d", h.head, h.tail), Offset: -1}
		}
		if len(data) != 0 {
			return &CheckError{Kind: CheckTiling, Message: fmt.Sprintf("empty list over %d arena bytes", len(data)), Offset: -1}
		}
		return nil
	}
	if h.head != 0 {
		return &CheckError{Kind: CheckTiling, Message: "first region does not start the arena", Offset: h.head}
	}

	// A well-formed list cannot hold more regions than this, which bounds
	// the walk on a corrupted cycle.
	limit := len(data)/HeaderSize + 1

	prev := none
	prevFree := false
	off := h.head
	for n := 0; ; n++ {
		if n >= limit {
			return &CheckError{Kind: CheckLinks, Message: "region list does not terminate", Offset: off}
		}
		r, err := format.ReadRegion(data, off)
		if err != nil {
			return &CheckError{Kind: CheckHeader, Message: err.Error(), Offset: off}
		}
		if r.Size == 0 || !format.IsHeaderAligned(uint(r.Size)) {
			return &CheckError{Kind: CheckHeader, Message: fmt.Sprintf("size %d is not a whole number of headers", r.Size), Offset: off}
		}
		if unlink(r.Prev) != prev {
			return &CheckError{Kind: CheckLinks, Message: fmt.Sprintf("prev is %d, want %d", unlink(r.Prev), prev), Offset: off}
		}
		end := uint64(off) + r.Size
		if end > uint64(len(data)) {
			return &CheckError{Kind: CheckTiling, Message: fmt.Sprintf("size %d runs past arena end %d", r.Size, len(data)), Offset: off}
		}
		free := !r.InUse()
		if free && prevFree {
			return &CheckError{Kind: CheckCoalesced, Message: fmt.Sprintf("free region follows free region at %d", prev), Offset: off}
		}

		next := unlink(r.Next)
		if next == none {
			if off != h.tail {
				return &CheckError{Kind: CheckEnds, Message: fmt.Sprintf("list ends here but tail is %d", h.tail), Offset: off}
			}
			if end != uint64(len(data)) {
				return &CheckError{Kind: CheckTiling, Message: fmt.Sprintf("last region ends at %d, arena at %d", end, len(data)), Offset: off}
			}
			return nil
		}
		if uint64(next) != end {
			return &CheckError{Kind: CheckTiling, Message: fmt.Sprintf("next is %d, region ends at %d", next, end), Offset: off}
		}

		prev, prevFree, off = off, free, next
	}
}
