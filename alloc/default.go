package alloc

import (
	"sync"

	"github.com/joshuapare/heapkit/provider"
)

// DefaultArenaSize is the capacity reserved for the process-wide heap.
const DefaultArenaSize = 256 << 20

var (
	defaultOnce sync.Once
	defaultHeap *Locked
)

// Default returns the process-wide heap, creating it on first use. Its arena
// is an anonymous mapping of DefaultArenaSize bytes where the platform
// supports one, and a Go slice otherwise. It is never released.
func Default() *Locked {
	defaultOnce.Do(func() {
		var p Provider
		if m, err := provider.NewMmap(DefaultArenaSize); err == nil {
			p = m
		} else {
			mem, _ := provider.NewMemory(DefaultArenaSize) // capacity is positive
			p = mem
		}
		defaultHeap = NewLocked(New(p, nil))
	})
	return defaultHeap
}

// Malloc allocates from the process-wide heap.
func Malloc(size uint) (Ptr, error) {
	return Default().Malloc(size)
}

// Calloc allocates zeroed memory from the process-wide heap.
func Calloc(count, size uint) (Ptr, error) {
	return Default().Calloc(count, size)
}

// Realloc resizes an allocation of the process-wide heap.
func Realloc(p Ptr, size uint) (Ptr, error) {
	return Default().Realloc(p, size)
}

// Free releases an allocation of the process-wide heap.
func Free(p Ptr) {
	Default().Free(p)
}
