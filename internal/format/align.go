package format

// AlignHeader returns n rounded up to the next multiple of HeaderSize.
//
// Example:
//
//	AlignHeader(0)  = 0
//	AlignHeader(1)  = 32
//	AlignHeader(32) = 32
//	AlignHeader(33) = 64
//
// ok is false when the rounded value does not fit in a uint.
func AlignHeader(n uint) (uint, bool) {
	r := (n + HeaderAlignmentMask) &^ HeaderAlignmentMask
	if r < n {
		return 0, false
	}
	return r, true
}

// IsHeaderAligned reports whether n is a whole number of headers.
func IsHeaderAligned(n uint) bool {
	return n&HeaderAlignmentMask == 0
}
