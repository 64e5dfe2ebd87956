// Package alloc provides a first-fit dynamic memory allocator over an arena
// obtained from a block provider.
//
// # Overview
//
// A Heap manages one contiguous arena as a doubly linked list of regions kept
// in address order. Every region starts with a fixed-size in-band header
// (prev, next, size, flags) followed by its payload, so the list is threaded
// through the managed memory itself rather than a side table.
//
//	arena:  | hdr | payload ... | hdr | payload | hdr | payload ...... |
//	          ^ head                                  ^ tail
//
// # Operations
//
//   - Malloc(size): first-fit search in address order; grow the arena on a
//     miss; split the chosen region when the leftover can hold a header plus
//     at least one byte
//   - Calloc(count, size): Malloc plus zero fill, guarded against count×size
//     overflow
//   - Realloc(ptr, size): allocate new, copy the common prefix, release old
//   - Free(ptr): mark free, then merge with the left and right neighbours
//
// # Usage Example
//
//	p, err := provider.NewMemory(1 << 20)
//	if err != nil {
//	    return err
//	}
//	h := alloc.New(p, nil)
//
//	ptr, err := h.Malloc(100)
//	if err != nil {
//	    return err // errors.Is(err, alloc.ErrOutOfMemory)
//	}
//	copy(h.Bytes(ptr), "hello")
//
//	ptr, err = h.Realloc(ptr, 400)
//	...
//	h.Free(ptr)
//
// # Sizes and Alignment
//
// A request of n bytes occupies the smallest multiple of the header size
// (32 bytes) that holds n bytes plus the header:
//
//	Malloc(0)   → 32-byte region, 0 bytes usable
//	Malloc(1)   → 64-byte region, 32 bytes usable
//	Malloc(32)  → 64-byte region, 32 bytes usable
//	Malloc(33)  → 96-byte region, 64 bytes usable
//
// Even a zero-byte request gets its own region, so the returned pointer is
// distinct from every other live pointer. Payload offsets are multiples of 32
// from the arena start; nothing stronger is promised.
//
// # Pointers
//
// A Ptr is the byte offset of a payload within the arena. Nil (0) is never a
// valid payload because a header always precedes it. Passing Free, Realloc or
// Bytes a Ptr that this heap did not return, or one that was already freed,
// is undefined behaviour: it is neither detected nor reported. Check walks the
// list and reports corruption after the fact.
//
// # Errors
//
// The only error is ErrOutOfMemory, returned (wrapped) when the provider
// cannot supply a block, when Calloc's overflow guard trips, or when a size
// computation would overflow. The last such error is also kept on the heap and
// available through Err, in the manner of errno.
//
// # Thread Safety
//
// Heap instances are not thread-safe. Callers must serialize access
// externally or use Locked, which guards every operation with one mutex. The
// package-level Malloc, Calloc, Realloc and Free use a process-wide Locked
// heap built on first use.
//
// # Related Packages
//
//   - github.com/joshuapare/heapkit/provider: Memory and Mmap block providers
//   - github.com/joshuapare/heapkit/trace: Replays allocation scripts against a heap
//   - github.com/joshuapare/heapkit/internal/format: Header layout and encoding
package alloc
