package alloc

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/heapkit/internal/buf"
	"github.com/joshuapare/heapkit/internal/format"
)

// Heap is a first-fit allocator over the arena of a single Provider.
//
// The region list is threaded through the arena: each region's header holds
// the offsets of its neighbours. Heap itself only remembers the two ends.
type Heap struct {
	p Provider

	head int // first region, none while the arena is empty
	tail int // last region

	err   error // last out-of-memory condition, see Err
	stats Stats

	log      *slog.Logger
	logAlloc bool

	// Test hook: called with the block size before the provider is asked to
	// grow (nil in production)
	onGrow func(n uint)
}

// New returns an empty heap that draws blocks from p. The provider must not
// have handed out any bytes yet. A nil config selects DefaultConfig.
func New(p Provider, config *Config) *Heap {
	if config == nil {
		config = &DefaultConfig
	}
	h := &Heap{p: p, head: none, tail: none}
	h.log, h.logAlloc = config.logger()
	return h
}

// Malloc returns a pointer to at least size bytes of uninitialized payload.
//
// On failure it returns Nil and an error wrapping ErrOutOfMemory; the heap is
// unchanged apart from its error state.
func (h *Heap) Malloc(size uint) (Ptr, error) {
	h.stats.MallocCalls++
	return h.malloc(size)
}

// Calloc returns a pointer to count*size bytes, all zero.
//
// Requests whose operand bit lengths sum past the width of uint are refused
// before the heap is touched. The guard is conservative: a few products that
// would fit are refused too, but no overflowing one is accepted.
func (h *Heap) Calloc(count, size uint) (Ptr, error) {
	h.stats.CallocCalls++
	if !buf.ProductFits(count, size) {
		return Nil, h.fail(fmt.Errorf("%w: calloc(%d, %d) overflows", ErrOutOfMemory, count, size))
	}
	p, err := h.malloc(count * size)
	if err != nil {
		return Nil, err
	}
	clear(h.Bytes(p))
	return p, nil
}

// Realloc moves the allocation at p into a region of at least size bytes.
//
// The first min(old capacity, size) bytes are carried over and p is released.
// Realloc(Nil, size) is Malloc(size). If the new allocation fails, Realloc
// returns Nil and the error; p stays valid and still holds its contents, and
// the caller remains responsible for freeing it.
func (h *Heap) Realloc(p Ptr, size uint) (Ptr, error) {
	h.stats.ReallocCalls++
	if p == Nil {
		return h.malloc(size)
	}
	oldCap := h.Usable(p)
	q, err := h.malloc(size)
	if err != nil {
		return Nil, err
	}
	n := int(min(oldCap, size))
	b := h.p.Bytes()
	copy(b[int(q):int(q)+n], b[int(p):int(p)+n])
	h.release(regionOf(p))
	return q, nil
}

// Free releases the allocation at p and merges it with free neighbours.
// Free(Nil) does nothing. Freeing a pointer twice, or one this heap did not
// return, corrupts the heap.
func (h *Heap) Free(p Ptr) {
	if p == Nil {
		return
	}
	h.stats.FreeCalls++
	h.release(regionOf(p))
}

// Err returns the last out-of-memory error raised by this heap, or nil.
// Successful calls leave it in place.
func (h *Heap) Err() error {
	return h.err
}

// ClearErr resets the error state.
func (h *Heap) ClearErr() {
	h.err = nil
}

// Bytes returns the payload of the live allocation at p, sized to its full
// capacity. The slice stays valid until p is freed or reallocated.
func (h *Heap) Bytes(p Ptr) []byte {
	off := regionOf(p)
	end := off + int(h.size(off))
	return h.p.Bytes()[int(p):end:end]
}

// Usable returns the payload capacity of the live allocation at p.
func (h *Heap) Usable(p Ptr) uint {
	return h.size(regionOf(p)) - HeaderSize
}

// requiredSize returns the region size for a request of n payload bytes: the
// smallest multiple of HeaderSize holding n plus a header.
func requiredSize(n uint) (uint, bool) {
	total, ok := buf.AddOverflowSafe(n, HeaderSize)
	if !ok {
		return 0, false
	}
	return format.AlignHeader(total)
}

func (h *Heap) malloc(size uint) (Ptr, error) {
	need, ok := requiredSize(size)
	if !ok {
		return Nil, h.fail(fmt.Errorf("%w: request of %d bytes", ErrOutOfMemory, size))
	}

	off := h.findFit(need)
	if off == none {
		var err error
		if off, err = h.grow(need); err != nil {
			return Nil, h.fail(err)
		}
	}

	if h.size(off) > need+HeaderSize {
		h.split(off, need)
	}
	h.setInUse(off, true)
	return payloadOf(off), nil
}

// findFit returns the first free region, in address order, of at least need
// bytes.
func (h *Heap) findFit(need uint) int {
	for off := h.head; off != none; off = h.next(off) {
		if !h.inUse(off) && h.size(off) >= need {
			return off
		}
	}
	return none
}

// grow asks the provider for exactly need bytes and appends them to the list
// as one free region.
func (h *Heap) grow(need uint) (int, error) {
	n, ok := buf.IntSize(need)
	if !ok {
		return none, fmt.Errorf("%w: block of %d bytes", ErrOutOfMemory, need)
	}
	if h.onGrow != nil {
		h.onGrow(need)
	}

	off, err := h.p.Extend(n)
	if err != nil {
		return none, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}

	format.EncodeRegion(h.p.Bytes(), off, format.RegionHeader{
		Prev: link(h.tail),
		Next: format.NoRegion,
		Size: uint64(need),
	})
	if h.tail == none {
		h.head = off
	} else {
		h.setNext(h.tail, off)
	}
	h.tail = off

	h.stats.GrowCalls++
	h.stats.GrowBytes += uint64(need)
	if h.logAlloc {
		h.log.Debug("grow", "off", off, "size", need)
	}
	return off, nil
}

// split shrinks the region at off to need bytes and turns the remainder into
// a free region right after it. Remainders that could not hold a header plus
// at least one byte stay with the region as slack.
func (h *Heap) split(off int, need uint) {
	size := h.size(off)
	if size <= need+HeaderSize {
		return
	}
	rest := off + int(need)
	next := h.next(off)

	h.setSize(off, need)
	format.EncodeRegion(h.p.Bytes(), rest, format.RegionHeader{
		Prev: link(off),
		Next: link(next),
		Size: uint64(size - need),
	})
	if next == none {
		h.tail = rest
	} else {
		h.setPrev(next, rest)
	}
	h.setNext(off, rest)

	h.stats.Splits++
	if h.logAlloc {
		h.log.Debug("split", "off", off, "size", need, "rest", rest, "rest_size", size-need)
	}
}

// release marks the region free, folds it into a free predecessor, then folds
// the surviving region's free successor into it.
func (h *Heap) release(off int) {
	h.setInUse(off, false)
	if prev := h.prev(off); h.combine(prev) {
		off = prev
	}
	h.combine(off)
}

// combine absorbs the successor of off when both are free. It reports whether
// a merge happened.
func (h *Heap) combine(off int) bool {
	if off == none {
		return false
	}
	next := h.next(off)
	if next == none || h.inUse(off) || h.inUse(next) {
		return false
	}

	after := h.next(next)
	h.setSize(off, h.size(off)+h.size(next))
	h.setNext(off, after)
	if after == none {
		h.tail = off
	} else {
		h.setPrev(after, off)
	}
	clear(h.p.Bytes()[next : next+HeaderSize])

	h.stats.Coalesces++
	if h.logAlloc {
		h.log.Debug("coalesce", "off", off, "absorbed", next, "size", h.size(off))
	}
	return true
}

func (h *Heap) fail(err error) error {
	h.err = err
	h.stats.Failures++
	if h.logAlloc {
		h.log.Debug("out of memory", "err", err)
	}
	return err
}
