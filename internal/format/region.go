package format

// RegionHeader is the decoded form of an in-band region header.
type RegionHeader struct {
	Prev  uint64 // NoRegion when absent
	Next  uint64 // NoRegion when absent
	Size  uint64 // including header
	Flags uint32
}

// InUse reports whether FlagInUse is set.
func (r RegionHeader) InUse() bool {
	return r.Flags&FlagInUse != 0
}

// DecodeRegion reads the header starting at off. The caller must ensure
// off+HeaderSize is within b.
func DecodeRegion(b []byte, off int) RegionHeader {
	return RegionHeader{
		Prev:  ReadU64(b, off+RegionPrevOffset),
		Next:  ReadU64(b, off+RegionNextOffset),
		Size:  ReadU64(b, off+RegionSizeOffset),
		Flags: ReadU32(b, off+RegionFlagsOffset),
	}
}

// EncodeRegion writes r as a header at off, zeroing the reserved word.
func EncodeRegion(b []byte, off int, r RegionHeader) {
	PutU64(b, off+RegionPrevOffset, r.Prev)
	PutU64(b, off+RegionNextOffset, r.Next)
	PutU64(b, off+RegionSizeOffset, r.Size)
	PutU32(b, off+RegionFlagsOffset, r.Flags)
	PutU32(b, off+RegionReservedOffset, 0)
}

// ReadRegion is DecodeRegion with a bounds check, for walkers that cannot
// trust the offset they were handed.
func ReadRegion(b []byte, off int) (RegionHeader, error) {
	if off < 0 || off+HeaderSize > len(b) || off+HeaderSize < off {
		return RegionHeader{}, ErrTruncated
	}
	return DecodeRegion(b, off), nil
}
