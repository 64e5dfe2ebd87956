package provider

import "fmt"

// Memory is a provider whose arena is a plain Go slice of fixed capacity.
type Memory struct {
	a arena
}

// NewMemory allocates an arena of capacity bytes. Capacity 0 is valid and
// yields a provider that refuses every non-empty request.
func NewMemory(capacity int) (*Memory, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: capacity %d", ErrBadSize, capacity)
	}
	return &Memory{a: arena{mem: make([]byte, capacity)}}, nil
}

// Extend hands out the next n bytes of the arena and returns their offset.
func (m *Memory) Extend(n int) (int, error) {
	return m.a.extend(n)
}

// Bytes returns the arena from offset 0 to the current break. The slice's
// capacity is clipped so appends can never scribble past the break.
func (m *Memory) Bytes() []byte {
	return m.a.bytes()
}

// Cap returns the arena capacity.
func (m *Memory) Cap() int {
	return len(m.a.mem)
}

// Len returns the number of bytes handed out so far.
func (m *Memory) Len() int {
	return m.a.brk
}
