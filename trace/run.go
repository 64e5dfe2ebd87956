package trace

import (
	"fmt"

	"github.com/joshuapare/heapkit/alloc"
)

// Heap is the allocator surface a script drives. Both *alloc.Heap and
// *alloc.Locked satisfy it.
type Heap interface {
	Malloc(size uint) (alloc.Ptr, error)
	Calloc(count, size uint) (alloc.Ptr, error)
	Realloc(p alloc.Ptr, size uint) (alloc.Ptr, error)
	Free(p alloc.Ptr)
	Bytes(p alloc.Ptr) []byte
	Usable(p alloc.Ptr) uint
	Check() error
}

var (
	_ Heap = (*alloc.Heap)(nil)
	_ Heap = (*alloc.Locked)(nil)
)

// Step records the outcome of one executed operation.
type Step struct {
	Line int
	Op   Op
	Name string
	Ptr  alloc.Ptr // pointer bound or operated on, alloc.Nil if none
	Size uint      // region size including header, 0 when Ptr is Nil or freed
	Err  error
}

func (s Step) String() string {
	var out string
	switch s.Op {
	case OpMalloc, OpCalloc, OpRealloc:
		out = fmt.Sprintf("%s = %s -> 0x%X", s.Name, s.Op, uint(s.Ptr))
		if s.Ptr != alloc.Nil {
			out += fmt.Sprintf(" (%d bytes)", s.Size)
		}
	case OpFree, OpFill:
		out = fmt.Sprintf("%s %s (0x%X)", s.Op, s.Name, uint(s.Ptr))
	default:
		out = string(s.Op)
	}
	if s.Err != nil {
		out += ": " + s.Err.Error()
	}
	return fmt.Sprintf("line %d: %s", s.Line, out)
}

// Run executes s against h and returns one Step per instruction. Operation
// failures are recorded on their step; the run always reaches the end.
func Run(h Heap, s *Script) []Step {
	ptrs := make(map[string]alloc.Ptr)
	lookup := func(name string) alloc.Ptr {
		if name == NilName {
			return alloc.Nil
		}
		return ptrs[name]
	}
	regionSize := func(p alloc.Ptr) uint {
		if p == alloc.Nil {
			return 0
		}
		return h.Usable(p) + alloc.HeaderSize
	}

	steps := make([]Step, 0, len(s.Instrs))
	for _, in := range s.Instrs {
		st := Step{Line: in.Line, Op: in.Op, Name: in.Name}
		switch in.Op {
		case OpMalloc:
			st.Ptr, st.Err = h.Malloc(in.Args[0])
			ptrs[in.Name] = st.Ptr
			st.Size = regionSize(st.Ptr)

		case OpCalloc:
			st.Ptr, st.Err = h.Calloc(in.Args[0], in.Args[1])
			ptrs[in.Name] = st.Ptr
			st.Size = regionSize(st.Ptr)

		case OpRealloc:
			src := lookup(in.Src)
			delete(ptrs, in.Src)
			st.Ptr, st.Err = h.Realloc(src, in.Args[0])
			ptrs[in.Name] = st.Ptr
			st.Size = regionSize(st.Ptr)

		case OpFree:
			st.Ptr = lookup(in.Name)
			delete(ptrs, in.Name)
			h.Free(st.Ptr)

		case OpFill:
			st.Ptr = lookup(in.Name)
			if st.Ptr == alloc.Nil {
				st.Err = ErrNilPointer
				break
			}
			b := h.Bytes(st.Ptr)
			for i := range b {
				b[i] = byte(in.Args[0])
			}
			st.Size = regionSize(st.Ptr)

		case OpCheck:
			st.Err = h.Check()
		}
		steps = append(steps, st)
	}
	return steps
}

// FirstError returns the error of the first failed step, or nil.
func FirstError(steps []Step) error {
	for _, s := range steps {
		if s.Err != nil {
			return fmt.Errorf("line %d: %w", s.Line, s.Err)
		}
	}
	return nil
}
