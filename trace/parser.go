package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Instr is one parsed script operation.
type Instr struct {
	Line int
	Op   Op

	// Name is the bound name for malloc, calloc and realloc, and the operand
	// for free and fill. It is NilName for free nil.
	Name string

	// Src is the realloc operand, possibly NilName.
	Src string

	// Args holds the numeric operands: the size (malloc, realloc), count and
	// element size (calloc), or the byte pattern (fill).
	Args [2]uint
}

// Script is a parsed allocation script.
type Script struct {
	Instrs []Instr
}

// ParseString parses a script held in memory.
func ParseString(s string) (*Script, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads and validates a script.
func Parse(r io.Reader) (*Script, error) {
	// UTF-8 unless a byte order mark says otherwise
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	scanner := bufio.NewScanner(transform.NewReader(r, decoder))
	scanner.Buffer(make([]byte, 0, 4096), ScannerMaxLineSize)

	p := parser{bound: make(map[string]bool)}
	s := &Script{}
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if i := strings.Index(text, CommentPrefix); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		in, err := p.parseLine(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Msg: err.Error()}
		}
		in.Line = line
		s.Instrs = append(s.Instrs, in)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("trace: reading script: %w", err)
	}
	return s, nil
}

// parser tracks which names hold a live pointer at each point of the script.
type parser struct {
	bound map[string]bool
}

func (p *parser) parseLine(text string) (Instr, error) {
	f := strings.Fields(text)

	if len(f) >= 3 && f[1] == Assign {
		name := f[0]
		if err := checkName(name); err != nil {
			return Instr{}, err
		}
		in, err := p.parseAlloc(Op(f[2]), f[3:])
		if err != nil {
			return Instr{}, err
		}
		in.Name = name
		p.bound[name] = true
		return in, nil
	}

	switch Op(f[0]) {
	case OpFree:
		if len(f) != 2 {
			return Instr{}, errors.New("free takes one name")
		}
		if err := p.use(f[1]); err != nil {
			return Instr{}, err
		}
		delete(p.bound, f[1])
		return Instr{Op: OpFree, Name: f[1]}, nil

	case OpFill:
		if len(f) != 3 {
			return Instr{}, errors.New("fill takes a name and a byte")
		}
		if f[1] == NilName {
			return Instr{}, errors.New("cannot fill nil")
		}
		if err := p.use(f[1]); err != nil {
			return Instr{}, err
		}
		v, err := strconv.ParseUint(f[2], 0, 8)
		if err != nil {
			return Instr{}, fmt.Errorf("bad fill byte %q", f[2])
		}
		return Instr{Op: OpFill, Name: f[1], Args: [2]uint{uint(v)}}, nil

	case OpCheck:
		if len(f) != 1 {
			return Instr{}, errors.New("check takes no operands")
		}
		return Instr{Op: OpCheck}, nil

	case OpMalloc, OpCalloc, OpRealloc:
		return Instr{}, fmt.Errorf("%s result must be bound: name = %s ...", f[0], f[0])
	}
	return Instr{}, fmt.Errorf("unknown operation %q", f[0])
}

func (p *parser) parseAlloc(op Op, args []string) (Instr, error) {
	in := Instr{Op: op}
	switch op {
	case OpMalloc:
		if len(args) != 1 {
			return in, errors.New("malloc takes a size")
		}
		n, err := parseSize(args[0])
		if err != nil {
			return in, err
		}
		in.Args[0] = n

	case OpCalloc:
		if len(args) != 2 {
			return in, errors.New("calloc takes a count and an element size")
		}
		for i, a := range args {
			n, err := parseSize(a)
			if err != nil {
				return in, err
			}
			in.Args[i] = n
		}

	case OpRealloc:
		if len(args) != 2 {
			return in, errors.New("realloc takes a name and a size")
		}
		if err := p.use(args[0]); err != nil {
			return in, err
		}
		n, err := parseSize(args[1])
		if err != nil {
			return in, err
		}
		delete(p.bound, args[0])
		in.Src, in.Args[0] = args[0], n

	default:
		return in, fmt.Errorf("cannot bind result of %q", op)
	}
	return in, nil
}

// use validates an operand: nil or a name holding a live pointer.
func (p *parser) use(name string) error {
	if name == NilName {
		return nil
	}
	if err := checkName(name); err != nil {
		return err
	}
	if !p.bound[name] {
		return fmt.Errorf("name %q is not bound to a live pointer", name)
	}
	return nil
}

func checkName(name string) error {
	if name == NilName {
		return fmt.Errorf("%q cannot be bound", NilName)
	}
	for i, r := range name {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		default:
			return fmt.Errorf("bad name %q", name)
		}
	}
	return nil
}

func parseSize(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 0, bits.UintSize)
	if err != nil {
		return 0, fmt.Errorf("bad size %q", s)
	}
	return uint(n), nil
}
