// Package format describes the in-band region header the allocator threads
// through its arena. The goal is to keep the byte-level layout in one place,
// independent from the allocator logic, so every read or write of a header
// goes through the same offsets.
package format

const (
	// HeaderSize is the size of the region header in bytes. It is also the
	// allocation granularity: every region size is a multiple of it.
	HeaderSize = 0x20

	// HeaderAlignmentMask rounds a length up to a whole number of headers.
	HeaderAlignmentMask = HeaderSize - 1

	// NoRegion marks an absent prev/next link.
	NoRegion uint64 = 0xFFFFFFFFFFFFFFFF
)

// Region header layout (little-endian):
//
//	Offset  Size  Description
//	0x00    8     Offset of the previous region (NoRegion for the head)
//	0x08    8     Offset of the next region (NoRegion for the tail)
//	0x10    8     Total region size, INCLUDING this header
//	0x18    4     Flags (FlagInUse)
//	0x1C    4     Reserved, always zero
const (
	RegionPrevOffset     = 0x00
	RegionNextOffset     = 0x08
	RegionSizeOffset     = 0x10
	RegionFlagsOffset    = 0x18
	RegionReservedOffset = 0x1C
)

const (
	// FlagInUse is set while the region is handed out to a caller.
	FlagInUse uint32 = 1 << 0
)
