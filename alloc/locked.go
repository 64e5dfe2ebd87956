package alloc

import (
	"io"
	"sync"
)

// Locked serializes every operation on a Heap behind one mutex.
type Locked struct {
	mu sync.Mutex
	h  *Heap
}

// NewLocked wraps h. The caller must not use h directly afterwards.
func NewLocked(h *Heap) *Locked {
	return &Locked{h: h}
}

// Malloc calls Heap.Malloc under the lock.
func (l *Locked) Malloc(size uint) (Ptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Malloc(size)
}

// Calloc calls Heap.Calloc under the lock.
func (l *Locked) Calloc(count, size uint) (Ptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Calloc(count, size)
}

// Realloc calls Heap.Realloc under the lock.
func (l *Locked) Realloc(p Ptr, size uint) (Ptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Realloc(p, size)
}

// Free calls Heap.Free under the lock.
func (l *Locked) Free(p Ptr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.h.Free(p)
}

// Bytes returns the payload of p. Reads and writes through the slice are not
// guarded; only the owner of p should touch it.
func (l *Locked) Bytes(p Ptr) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Bytes(p)
}

// Err calls Heap.Err under the lock.
func (l *Locked) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Err()
}

// Stats calls Heap.Stats under the lock.
func (l *Locked) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Stats()
}

// Usage calls Heap.Usage under the lock.
func (l *Locked) Usage() Usage {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Usage()
}

// Check calls Heap.Check under the lock.
func (l *Locked) Check() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Check()
}

// PrintStats calls Heap.PrintStats under the lock.
func (l *Locked) PrintStats(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.h.PrintStats(w)
}

// Usable calls Heap.Usable under the lock.
func (l *Locked) Usable(p Ptr) uint {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Usable(p)
}

// Regions calls Heap.Regions under the lock.
func (l *Locked) Regions() []Region {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Regions()
}
