// Package trace replays allocation scripts against a heap.
//
// A script is plain text, one operation per line. Names bind the pointers
// returned by the allocating operations so later lines can refer to them:
//
//	# two neighbours, freed in reverse order
//	a = malloc 100
//	b = calloc 4 25
//	a = realloc a 200
//	fill a 0xAB          # byte pattern over the whole payload
//	free b
//	free a
//	check
//
// Numbers accept Go integer syntax (0x1F, 0b101, 1_000). The literal nil may
// stand in for a name in realloc and free. Using a name that was never bound,
// or one already freed, is rejected at parse time with a *ParseError.
//
// Input is UTF-8 by default; a UTF-16 or UTF-8 byte order mark switches the
// decoder, so scripts saved by Windows editors load unchanged.
//
// Run executes a parsed script and records one Step per operation. Failed
// allocations bind their name to alloc.Nil and the run continues.
package trace
