//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly) && !windows

package mmfile

import "fmt"

// Reserve allocates a Go slice when no anonymous mapping API is available.
func Reserve(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmfile: invalid reservation size %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}
