package csgx

import "io"

// DefaultMaxOps bounds how many objects the evaluation driver will
// pull off the execution stack during a single Execute/ExecuteString/
// ReplLine call before giving up with a RangeError. Zero disables the
// limit; internal/config exposes this as MaxOps.
const DefaultMaxOps = 10_000_000

// Interpreter holds every piece of engine state described in
// SPEC_FULL.md §3: the operand stack plus the dictionary stack,
// execution stack and procedure builder that drive evaluation. A
// zero-value Interpreter is not usable; construct one with
// NewInterpreter.
type Interpreter struct {
	Stack   []Object
	Dicts   *dictStack
	Exec    *executionStack
	Builder procBuilder
	Out     io.Writer

	MaxOps               int64
	MaxOperandStackDepth int // 0 disables the check
	numOps               int64
}

// NewInterpreter builds an Interpreter with a freshly bound system
// dictionary and an empty user dictionary, ready to accept source via
// Execute, ExecuteString or ReplLine.
func NewInterpreter(out io.Writer) *Interpreter {
	return &Interpreter{
		Dicts:  newDictStack(makeSystemDict()),
		Exec:   &executionStack{},
		Out:    out,
		MaxOps: DefaultMaxOps,
	}
}

// StackSize reports the current depth of the operand stack.
func (intp *Interpreter) StackSize() int {
	return len(intp.Stack)
}

// Execute scans and evaluates every token read from r, returning the
// first engine error encountered. On success, the operand and
// dictionary stacks retain whatever state the source left them in,
// matching spec.md §5's single cooperative-engine model.
func (intp *Interpreter) Execute(r io.Reader) error {
	intp.numOps = 0
	sc := newScanner(r)
	for {
		tok, err := sc.ScanToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := intp.handleToken(tok); err != nil {
			return err
		}
		if err := intp.drain(); err != nil {
			return err
		}
	}
	if intp.Builder.isOpen() {
		return intp.e(ErrSyntax, "unexpected end of input: %d procedure(s) still open", intp.Builder.depth())
	}
	return nil
}

// ExecuteString is Execute over a string source, provided as a
// convenience for callers (including tests) that already hold source
// text in memory.
func (intp *Interpreter) ExecuteString(src string) error {
	return intp.Execute(stringReader(src))
}

// ReplLine feeds a single line of source to the interpreter and
// drains it exactly like Execute, but never complains about an open
// procedure builder: a `{` on one line and its `}` on the next is the
// ordinary shape of interactive input, so the builder is left open
// across calls until it closes naturally.
func (intp *Interpreter) ReplLine(line string) error {
	intp.numOps = 0
	sc := newScanner(stringReader(line + "\n"))
	for {
		tok, err := sc.ScanToken()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := intp.handleToken(tok); err != nil {
			return err
		}
		if !intp.Builder.isOpen() {
			if err := intp.drain(); err != nil {
				return err
			}
		}
	}
}

// handleToken applies the token-dispatch rules of SPEC_FULL.md §4.7:
// procedure delimiters drive the builder directly; immediate names
// resolve now; literal names and plain objects are always pushed or
// captured as-is; bare executable names are captured unevaluated
// inside an open procedure and invoked immediately otherwise.
func (intp *Interpreter) handleToken(tok *token) error {
	switch tok.kind {
	case tokBeginProc:
		intp.Builder.open()
		return nil
	case tokEndProc:
		if !intp.Builder.isOpen() {
			return intp.e(ErrSyntax, "unmatched '}'")
		}
		proc, ok := intp.Builder.close()
		if !ok {
			return nil
		}
		return intp.emit(proc)
	case tokImmediateName:
		target, ok := intp.Dicts.get(tok.text)
		if !ok {
			return intp.e(ErrUndefined, "%s is not defined", tok.text)
		}
		return intp.emit(target)
	case tokLiteralName:
		return intp.emit(Name{Mode: Literal, Text: tok.text})
	case tokExecutableName:
		if intp.Builder.isOpen() {
			return intp.emit(Name{Mode: Executable, Text: tok.text})
		}
		return intp.encounter(Name{Mode: Executable, Text: tok.text})
	default:
		return intp.emit(tok.obj)
	}
}

// emit pushes obj onto the operand stack, or captures it into the
// innermost open procedure body. It never performs a dictionary
// lookup or invokes anything: this is the path taken by plain
// literals and by the procedure object a closing `}` produces, which
// is always pushed, never auto-run.
func (intp *Interpreter) emit(obj Object) error {
	if intp.Builder.isOpen() {
		intp.Builder.push(obj)
		return nil
	}
	if intp.MaxOperandStackDepth > 0 && len(intp.Stack) >= intp.MaxOperandStackDepth {
		return intp.e(ErrRange, "operand stack overflow (limit %d)", intp.MaxOperandStackDepth)
	}
	intp.Stack = append(intp.Stack, obj)
	return nil
}

// encounter processes an object the way the interpreter processes
// anything it meets directly in the execution stream: a top-level
// source token, or an item pulled off a running procedure's body by
// drain. A bare Executable Name or Operator is resolved and invoked;
// everything else — including a directly-encountered procedure array,
// such as the branch literals nested inside another procedure's body
// — is simply pushed. This is what keeps `{ { 1 2 } { 3 } ifelse }`
// from auto-running its branch procedures the moment they're reached;
// they only run once ifelse explicitly schedules the chosen one.
func (intp *Interpreter) encounter(obj Object) error {
	switch obj.(type) {
	case Name, Operator:
		return intp.invoke(obj)
	default:
		return intp.emit(obj)
	}
}

// invoke runs whatever a Name resolves to, or whatever exec/if/
// ifelse/repeat were explicitly handed: an Executable Name looks
// itself up again (so one name can be defined as an alias for
// another); an Executable Operator calls its Go implementation; an
// Executable Array is scheduled on the execution stack instead of
// being run directly, so deeply iterative or recursive source never
// grows the Go call stack. Everything else is simply pushed.
func (intp *Interpreter) invoke(obj Object) error {
	switch o := obj.(type) {
	case Name:
		if o.Mode == Literal {
			return intp.emit(obj)
		}
		target, ok := intp.Dicts.get(o.Text)
		if !ok {
			return intp.e(ErrUndefined, "%s is not defined", o.Text)
		}
		return intp.invoke(target)
	case Operator:
		if o.Mode == Literal {
			return intp.emit(obj)
		}
		fn, ok := builtins[o.Op]
		if !ok {
			return intp.e(ErrUndefined, "operator %s has no implementation", opNames[o.Op])
		}
		return fn(intp)
	case Array:
		if o.Mode == Executable {
			intp.Exec.push(newOnceRunner(o.Items))
			return nil
		}
		return intp.emit(obj)
	default:
		return intp.emit(obj)
	}
}

// drain fully empties the execution stack before the driver reads its
// next token, per SPEC_FULL.md §4.7. Every object pulled off it is
// itself capable of pushing further runners (nested procedure calls,
// repeat bodies), so this loop — not recursion — is what lets deeply
// nested or long-running procedures execute without overflowing the
// Go call stack.
func (intp *Interpreter) drain() error {
	for {
		obj, ok := intp.Exec.pull()
		if !ok {
			return nil
		}
		if intp.MaxOps > 0 {
			intp.numOps++
			if intp.numOps > intp.MaxOps {
				return intp.e(ErrRange, "operation limit of %d exceeded", intp.MaxOps)
			}
		}
		if err := intp.encounter(obj); err != nil {
			return err
		}
	}
}

// stringReaderType adapts a string to an io.Reader.
type stringReaderType struct {
	s   string
	pos int
}

func stringReader(s string) io.Reader {
	return &stringReaderType{s: s}
}

func (r *stringReaderType) Read(p []byte) (int, error) {
	if r.pos >= len(r.s) {
		return 0, io.EOF
	}
	n := copy(p, r.s[r.pos:])
	r.pos += n
	return n, nil
}
