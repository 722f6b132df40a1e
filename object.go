package csgx

import (
	"fmt"
	"strconv"
	"strings"
)

// Object is the tagged value universe of the language. Every concrete
// type below is a valid Object; there is no interface method set
// because classification happens entirely through type switches.
type Object interface{}

// Mode is the literal/executable flag carried by Names, Operators and
// Arrays. For a Name or Operator, Executable mode means the object is
// looked up or called the moment it is encountered; Literal mode means
// it is always just pushed. An Array's mode instead only matters once
// something invokes it by name or by exec/if/ifelse/repeat: encountered
// directly, an Array of either mode is simply pushed.
type Mode int

const (
	Literal Mode = iota
	Executable
)

func (m Mode) String() string {
	if m == Executable {
		return "executable"
	}
	return "literal"
}

// Integer is a signed 64-bit whole number.
type Integer int64

// Real is a 64-bit binary floating point number.
type Real float64

// Boolean is a two-valued truth value.
type Boolean bool

// Mark is the singleton sentinel pushed by `[`, `<<` and `mark`,
// consumed by `]` and `cleartomark`, and counted up to (but left in
// place) by `counttomark`. It carries no
// data; every Mark value compares equal to every other.
type Mark struct{}

// TheMark is the one Mark value the engine ever produces.
var TheMark Object = Mark{}

// Name is a symbolic identifier. Literal names are pushed onto the
// operand stack when encountered; Executable names are looked up in
// the dictionary stack and invoked.
type Name struct {
	Mode Mode
	Text string
}

// Operator is a built-in bound to a name in the system dictionary.
// Op is drawn from the closed opCode enumeration in systemdict.go.
type Operator struct {
	Mode Mode
	Op   opCode
}

// Array is an ordered, finite sequence of Objects. When Mode is
// Executable the array is a procedure: a captured, unexecuted token
// sequence. Merely encountering a procedure — as a token straight from
// the scanner, or as an item inside another procedure's body — pushes
// it like any other value; it only runs when invoked by exec, if,
// ifelse, repeat, or by a name bound to it.
type Array struct {
	Mode  Mode
	Items []Object
}

// String and File are placeholders for object variants the grammar
// names but the scanner never produces (see SPEC_FULL.md §3).
type String struct {
	Mode Mode
	Text string
}

type File struct {
	Mode Mode
	Name string
}

// builtin is the Go function backing an Operator.
type builtin func(*Interpreter) error

// format renders o in the engine's canonical textual form, used by
// the `=` and `pstack` operators. The form is stable across runs: no
// pointer addresses, no map iteration order, no timestamps.
func (intp *Interpreter) format(o Object) string {
	switch o := o.(type) {
	case Integer:
		return strconv.FormatInt(int64(o), 10)
	case Real:
		s := strconv.FormatFloat(float64(o), 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case Boolean:
		if o {
			return "true"
		}
		return "false"
	case Mark:
		return "-mark-"
	case Name:
		if o.Mode == Literal {
			return "/" + o.Text
		}
		return o.Text
	case Operator:
		return "--" + opNames[o.Op] + "--"
	case Array:
		open, close := "[", "]"
		if o.Mode == Executable {
			open, close = "{", "}"
		}
		parts := make([]string, len(o.Items))
		for i, item := range o.Items {
			parts[i] = intp.format(item)
		}
		return open + strings.Join(parts, ", ") + close
	case String:
		return strconv.Quote(o.Text)
	case File:
		return "-file-"
	default:
		return fmt.Sprintf("<%T>", o)
	}
}
