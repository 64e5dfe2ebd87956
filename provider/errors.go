package provider

import "errors"

var (
	// ErrExhausted indicates the arena has no room left for the requested block.
	ErrExhausted = errors.New("provider: arena exhausted")

	// ErrBadSize indicates a negative block request or arena capacity.
	ErrBadSize = errors.New("provider: invalid size")

	// ErrClosed indicates Extend was called after Close.
	ErrClosed = errors.New("provider: closed")
)
