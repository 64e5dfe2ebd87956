package alloc

import "github.com/joshuapare/heapkit/internal/format"

// Ptr is the arena offset of a payload. It is what Malloc returns and what
// Free, Realloc and Bytes accept.
type Ptr uint

// Nil is the absent pointer. No payload ever lives at offset 0 because a
// header always precedes it.
const Nil Ptr = 0

// HeaderSize is the size of the in-band region header, and the allocation
// granularity.
const HeaderSize = format.HeaderSize

// Provider supplies raw blocks for the heap to carve up.
//
// Successive Extend calls must return adjacent blocks: the offset of each new
// block equals the arena length before the call. The memory behind Bytes must
// not move once handed out. A provider backs exactly one Heap.
type Provider interface {
	// Extend grows the arena by n bytes and returns the offset of the new
	// block, which starts where the previous block ended.
	Extend(n int) (int, error)

	// Bytes returns the arena from offset 0 to its current end.
	Bytes() []byte
}

// Region is a snapshot of one list entry, as returned by Heap.Regions.
type Region struct {
	Off  int  // header offset in the arena
	Size uint // total size including the header
	Free bool
}

// Payload returns the pointer a caller would hold for this region.
func (r Region) Payload() Ptr {
	return payloadOf(r.Off)
}

// Usable returns the payload capacity in bytes.
func (r Region) Usable() uint {
	return r.Size - HeaderSize
}

// End returns the offset just past the region.
func (r Region) End() int {
	return r.Off + int(r.Size)
}

func payloadOf(off int) Ptr {
	return Ptr(off + HeaderSize)
}

func regionOf(p Ptr) int {
	return int(p) - HeaderSize
}
