// Package buf contains overflow-safe size arithmetic and bounds helpers shared
// by the allocator and its providers.
package buf

import (
	"math"
	"math/bits"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow uint.
func AddOverflowSafe(a, b uint) (uint, bool) {
	sum, carry := bits.Add(a, b, 0)
	if carry != 0 {
		return 0, false
	}
	return sum, true
}

// ProductFits reports whether a*b is guaranteed to fit in a uint, judged by
// bit length alone: the product of an m-bit and an n-bit number needs at most
// m+n bits. The check is conservative. It rejects some products that would
// have fit, never one that would not.
//
//	ProductFits(1<<31, 1<<31) // true on 64-bit: 32+32 bits
//	ProductFits(1<<32, 1<<31) // false on 64-bit: 33+32 bits, product would fit but is refused
func ProductFits(a, b uint) bool {
	return bits.Len(a)+bits.Len(b) <= bits.UintSize
}

// IntSize converts n to int, returning ok = false when it exceeds math.MaxInt.
// Providers index Go slices, so every request has to survive this conversion.
func IntSize(n uint) (int, bool) {
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	if n > len(b)-off {
		return nil, false
	}
	return b[off : off+n], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
