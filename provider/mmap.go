package provider

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/mmfile"
)

// Mmap is a provider whose arena is an anonymous memory reservation.
type Mmap struct {
	a       arena
	cleanup func() error
}

// NewMmap reserves capacity bytes of anonymous memory.
func NewMmap(capacity int) (*Mmap, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %d", ErrBadSize, capacity)
	}
	data, cleanup, err := mmfile.Reserve(capacity)
	if err != nil {
		return nil, err
	}
	return &Mmap{a: arena{mem: data}, cleanup: cleanup}, nil
}

// Extend hands out the next n bytes of the reservation and returns their offset.
func (m *Mmap) Extend(n int) (int, error) {
	return m.a.extend(n)
}

// Bytes returns the reservation from offset 0 to the current break.
func (m *Mmap) Bytes() []byte {
	if m.a.mem == nil {
		return nil
	}
	return m.a.bytes()
}

// Cap returns the reservation size.
func (m *Mmap) Cap() int {
	return len(m.a.mem)
}

// Len returns the number of bytes handed out so far.
func (m *Mmap) Len() int {
	return m.a.brk
}

// Close releases the reservation. Every pointer into the heap built on this
// provider becomes invalid. Calling Close twice is a no-op.
func (m *Mmap) Close() error {
	if m.a.mem == nil {
		return nil
	}
	m.a.mem = nil
	m.a.brk = 0
	return m.cleanup()
}
