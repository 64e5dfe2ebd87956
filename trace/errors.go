package trace

import (
	"errors"
	"fmt"
)

// ErrNilPointer is recorded on a fill step whose name is bound to alloc.Nil,
// typically because the allocation that bound it failed.
var ErrNilPointer = errors.New("trace: fill of nil pointer")

// ParseError reports a malformed script line.
type ParseError struct {
	Line int    // 1-based
	Text string // the offending line, trimmed
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("trace: line %d: %s: %q", e.Line, e.Msg, e.Text)
}
