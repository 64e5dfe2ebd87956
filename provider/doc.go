// Package provider supplies the block providers an alloc.Heap grows into.
//
// A provider owns one contiguous arena with a fixed capacity chosen up front.
// Extend hands out the next n bytes of that arena, exactly like moving a
// program break: every block starts where the previous one ended, and the
// backing memory never moves, so payload slices stay valid while the heap
// grows.
//
// # Implementations
//
//   - Memory: arena backed by a Go slice. Portable, garbage collected, and
//     the natural choice for tests (a small capacity makes out-of-memory
//     paths easy to reach).
//   - Mmap: arena backed by an anonymous mapping (mmap on unix, VirtualAlloc
//     on windows). Pages are committed lazily, so large capacities are cheap.
//     Call Close to release the mapping.
//
// # Usage Example
//
//	p, err := provider.NewMmap(64 << 20)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	h := alloc.New(p, nil)
//	ptr, err := h.Malloc(128)
//
// # Thread Safety
//
// Providers are not thread-safe. They are driven by exactly one heap, which
// is itself single-threaded unless wrapped in alloc.Locked.
package provider
