package alloc

import "github.com/joshuapare/heapkit/internal/format"

// none is the in-memory form of format.NoRegion.
const none = -1

func link(off int) uint64 {
	if off == none {
		return format.NoRegion
	}
	return uint64(off)
}

func unlink(v uint64) int {
	if v == format.NoRegion {
		return none
	}
	return int(v)
}

// Header accessors read and write the arena directly. The slice is fetched on
// every call because Extend may have moved the break since the last one.

func (h *Heap) prev(off int) int {
	return unlink(format.ReadU64(h.p.Bytes(), off+format.RegionPrevOffset))
}

func (h *Heap) next(off int) int {
	return unlink(format.ReadU64(h.p.Bytes(), off+format.RegionNextOffset))
}

func (h *Heap) size(off int) uint {
	return uint(format.ReadU64(h.p.Bytes(), off+format.RegionSizeOffset))
}

func (h *Heap) inUse(off int) bool {
	return format.ReadU32(h.p.Bytes(), off+format.RegionFlagsOffset)&format.FlagInUse != 0
}

func (h *Heap) setPrev(off, prev int) {
	format.PutU64(h.p.Bytes(), off+format.RegionPrevOffset, link(prev))
}

func (h *Heap) setNext(off, next int) {
	format.PutU64(h.p.Bytes(), off+format.RegionNextOffset, link(next))
}

func (h *Heap) setSize(off int, size uint) {
	format.PutU64(h.p.Bytes(), off+format.RegionSizeOffset, uint64(size))
}

func (h *Heap) setInUse(off int, used bool) {
	b := h.p.Bytes()
	flags := format.ReadU32(b, off+format.RegionFlagsOffset)
	if used {
		flags |= format.FlagInUse
	} else {
		flags &^= format.FlagInUse
	}
	format.PutU32(b, off+format.RegionFlagsOffset, flags)
}
