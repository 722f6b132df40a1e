package csgx

// opCode enumerates the closed set of built-in operators bound in the
// system dictionary (SPEC_FULL.md §4.3/§4.6).
type opCode int

const (
	opAdd opCode = iota
	opSub
	opMul
	opDiv
	opMod
	opEq
	opNe
	opGt
	opDup
	opPop
	opExch
	opCopy
	opIndex
	opRoll
	opClear
	opMark
	opEndArray
	opCountToMark
	opClearToMark
	opDef
	opUndef
	opLoad
	opIf
	opIfelse
	opRepeat
	opExec
	opPrint // `=`
	opPstack
)

// opNames backs the `--op--` canonical display form (object.go).
var opNames = map[opCode]string{
	opAdd:         "add",
	opSub:         "sub",
	opMul:         "mul",
	opDiv:         "div",
	opMod:         "mod",
	opEq:          "eq",
	opNe:          "ne",
	opGt:          "gt",
	opDup:         "dup",
	opPop:         "pop",
	opExch:        "exch",
	opCopy:        "copy",
	opIndex:       "index",
	opRoll:        "roll",
	opClear:       "clear",
	opMark:        "mark",
	opEndArray:    "]",
	opCountToMark: "counttomark",
	opClearToMark: "cleartomark",
	opDef:         "def",
	opUndef:       "undef",
	opLoad:        "load",
	opIf:          "if",
	opIfelse:      "ifelse",
	opRepeat:      "repeat",
	opExec:        "exec",
	opPrint:       "=",
	opPstack:      "pstack",
}

// builtins maps each opCode to its Go implementation (builtin.go).
// opExec is added in init: bExec reaches back into builtins through
// invoke, which a package-level initializer rejects as an
// initialization cycle.
var builtins = map[opCode]builtin{
	opAdd:         bAdd,
	opSub:         bSub,
	opMul:         bMul,
	opDiv:         bDiv,
	opMod:         bMod,
	opEq:          bEq,
	opNe:          bNe,
	opGt:          bGt,
	opDup:         bDup,
	opPop:         bPop,
	opExch:        bExch,
	opCopy:        bCopy,
	opIndex:       bIndex,
	opRoll:        bRoll,
	opClear:       bClear,
	opMark:        bMark,
	opEndArray:    bEndArray,
	opCountToMark: bCountToMark,
	opClearToMark: bClearToMark,
	opDef:         bDef,
	opUndef:       bUndef,
	opLoad:        bLoad,
	opIf:          bIf,
	opIfelse:      bIfelse,
	opRepeat:      bRepeat,
	opPrint:       bPrint,
	opPstack:      bPstack,
}

func init() {
	builtins[opExec] = bExec
}

// makeSystemDict builds the immutable system dictionary: every
// operator name bound to Operator(Executable, op), plus the two
// boolean constants. "mark" and "[" are bound here too (per the
// required-bindings table) even though the scanner already resolves
// both spellings straight to a Mark token; the bindings exist so
// `/mark load` still yields a usable Operator value.
func makeSystemDict() Dict {
	d := Dict{
		"true":  Boolean(true),
		"false": Boolean(false),
	}
	for op, name := range opNames {
		d[name] = Operator{Mode: Executable, Op: op}
	}
	d["["] = Operator{Mode: Executable, Op: opMark}
	return d
}
