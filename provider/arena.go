package provider

import "fmt"

// arena is the break-pointer bookkeeping shared by every provider: a fixed
// backing slice and the length handed out so far.
type arena struct {
	mem []byte // full capacity, never resliced beyond cap
	brk int    // current break: bytes handed out
}

func (a *arena) extend(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: block of %d bytes", ErrBadSize, n)
	}
	if a.mem == nil {
		return 0, ErrClosed
	}
	if n > len(a.mem)-a.brk {
		return 0, fmt.Errorf("%w: need %d bytes, %d of %d left", ErrExhausted, n, len(a.mem)-a.brk, len(a.mem))
	}
	off := a.brk
	a.brk += n
	return off, nil
}

func (a *arena) bytes() []byte {
	return a.mem[:a.brk:a.brk]
}
