package alloc

import "errors"

var (
	// ErrOutOfMemory indicates that a request could not be satisfied: the
	// provider refused to grow the arena, Calloc's count×size guard tripped,
	// or the rounded request size does not fit in a uint.
	ErrOutOfMemory = errors.New("alloc: out of memory")
)
