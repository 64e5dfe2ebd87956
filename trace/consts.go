package trace

// Op names a script operation.
type Op string

const (
	OpMalloc  Op = "malloc"
	OpCalloc  Op = "calloc"
	OpRealloc Op = "realloc"
	OpFree    Op = "free"
	OpFill    Op = "fill"
	OpCheck   Op = "check"
)

const (
	// CommentPrefix starts a comment that runs to the end of the line.
	CommentPrefix = "#"

	// Assign separates the bound name from an allocating operation.
	Assign = "="

	// NilName is the literal that stands for alloc.Nil.
	NilName = "nil"

	// ScannerMaxLineSize bounds a single script line.
	ScannerMaxLineSize = 64 * 1024
)
