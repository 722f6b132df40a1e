package csgx

import "fmt"

// Every builtin below mutates intp.Stack directly and returns an
// *engineError classified per SPEC_FULL.md §7. The two-operand helpers
// (popTwo, popIntegerPair) check arity before any type assertion, so
// an underflow is reported even when the items present are also the
// wrong type. Operators that pop their operands one at a time (if,
// ifelse, repeat) type-check each operand as it is popped, so a
// wrong-typed top operand is reported as a type error even when
// operands below it are missing.

func (intp *Interpreter) pop() (Object, error) {
	n := len(intp.Stack)
	if n == 0 {
		return nil, intp.e(ErrUnderflow, "operand stack is empty")
	}
	obj := intp.Stack[n-1]
	intp.Stack = intp.Stack[:n-1]
	return obj, nil
}

// popTwo returns (a, b) where a was pushed before b, i.e. b is on top.
// This matches the "a b op" reading order used throughout §4.6.
func (intp *Interpreter) popTwo(opName string) (a, b Object, err error) {
	if len(intp.Stack) < 2 {
		return nil, nil, intp.e(ErrUnderflow, "%s: need 2 operands", opName)
	}
	b, a = intp.Stack[len(intp.Stack)-1], intp.Stack[len(intp.Stack)-2]
	intp.Stack = intp.Stack[:len(intp.Stack)-2]
	return a, b, nil
}

func (intp *Interpreter) popInteger(opName string) (Integer, error) {
	obj, err := intp.pop()
	if err != nil {
		return 0, err
	}
	n, ok := obj.(Integer)
	if !ok {
		return 0, intp.e(ErrType, "%s: expected an integer, got %T", opName, obj)
	}
	return n, nil
}

func (intp *Interpreter) popIntegerPair(opName string) (a, b Integer, err error) {
	ao, bo, err := intp.popTwo(opName)
	if err != nil {
		return 0, 0, err
	}
	ai, aok := ao.(Integer)
	bi, bok := bo.(Integer)
	if !aok || !bok {
		return 0, 0, intp.e(ErrType, "%s: expected two integers", opName)
	}
	return ai, bi, nil
}

func (intp *Interpreter) popExecArray(opName string) (Array, error) {
	obj, err := intp.pop()
	if err != nil {
		return Array{}, err
	}
	a, ok := obj.(Array)
	if !ok || a.Mode != Executable {
		return Array{}, intp.e(ErrType, "%s: expected a procedure, got %T", opName, obj)
	}
	return a, nil
}

func (intp *Interpreter) popLiteralName(opName string) (string, error) {
	obj, err := intp.pop()
	if err != nil {
		return "", err
	}
	n, ok := obj.(Name)
	if !ok || n.Mode != Literal {
		return "", intp.e(ErrType, "%s: expected a literal name, got %T", opName, obj)
	}
	return n.Text, nil
}

// --- arithmetic ------------------------------------------------------------

func bAdd(intp *Interpreter) error {
	a, b, err := intp.popIntegerPair("add")
	if err != nil {
		return err
	}
	intp.Stack = append(intp.Stack, a+b)
	return nil
}

func bSub(intp *Interpreter) error {
	a, b, err := intp.popIntegerPair("sub")
	if err != nil {
		return err
	}
	intp.Stack = append(intp.Stack, a-b)
	return nil
}

func bMul(intp *Interpreter) error {
	a, b, err := intp.popIntegerPair("mul")
	if err != nil {
		return err
	}
	intp.Stack = append(intp.Stack, a*b)
	return nil
}

func bDiv(intp *Interpreter) error {
	a, b, err := intp.popIntegerPair("div")
	if err != nil {
		return err
	}
	if b == 0 {
		return intp.e(ErrArithmetic, "div: division by zero")
	}
	intp.Stack = append(intp.Stack, a/b) // Go's / truncates toward zero
	return nil
}

func bMod(intp *Interpreter) error {
	a, b, err := intp.popIntegerPair("mod")
	if err != nil {
		return err
	}
	if b == 0 {
		return intp.e(ErrArithmetic, "mod: division by zero")
	}
	intp.Stack = append(intp.Stack, a%b) // Go's % carries the sign of the dividend
	return nil
}

// --- comparison --------------------------------------------------------

func bEq(intp *Interpreter) error {
	a, b, err := intp.popTwo("eq")
	if err != nil {
		return err
	}
	r, err := intp.compareEqual("eq", a, b)
	if err != nil {
		return err
	}
	intp.Stack = append(intp.Stack, Boolean(r))
	return nil
}

func bNe(intp *Interpreter) error {
	a, b, err := intp.popTwo("ne")
	if err != nil {
		return err
	}
	r, err := intp.compareEqual("ne", a, b)
	if err != nil {
		return err
	}
	intp.Stack = append(intp.Stack, Boolean(!r))
	return nil
}

func (intp *Interpreter) compareEqual(opName string, a, b Object) (bool, error) {
	switch a := a.(type) {
	case Integer:
		bi, ok := b.(Integer)
		if !ok {
			return false, intp.e(ErrType, "%s: mismatched operand types", opName)
		}
		return a == bi, nil
	case Boolean:
		bb, ok := b.(Boolean)
		if !ok {
			return false, intp.e(ErrType, "%s: mismatched operand types", opName)
		}
		return a == bb, nil
	default:
		return false, intp.e(ErrType, "%s: unsupported operand type %T", opName, a)
	}
}

func bGt(intp *Interpreter) error {
	a, b, err := intp.popTwo("gt")
	if err != nil {
		return err
	}
	switch a := a.(type) {
	case Integer:
		bi, ok := b.(Integer)
		if !ok {
			return intp.e(ErrType, "gt: mismatched operand types")
		}
		intp.Stack = append(intp.Stack, Boolean(a > bi))
	case Boolean:
		bb, ok := b.(Boolean)
		if !ok {
			return intp.e(ErrType, "gt: mismatched operand types")
		}
		intp.Stack = append(intp.Stack, Boolean(bool(a) && !bool(bb)))
	default:
		return intp.e(ErrType, "gt: unsupported operand type %T", a)
	}
	return nil
}

// --- stack manipulation ------------------------------------------------

func bDup(intp *Interpreter) error {
	obj, err := intp.pop()
	if err != nil {
		return intp.e(ErrUnderflow, "dup: operand stack is empty")
	}
	intp.Stack = append(intp.Stack, obj, obj)
	return nil
}

func bPop(intp *Interpreter) error {
	_, err := intp.pop()
	if err != nil {
		return intp.e(ErrUnderflow, "pop: operand stack is empty")
	}
	return nil
}

func bExch(intp *Interpreter) error {
	a, b, err := intp.popTwo("exch")
	if err != nil {
		return err
	}
	intp.Stack = append(intp.Stack, b, a)
	return nil
}

func bCopy(intp *Interpreter) error {
	n, err := intp.popInteger("copy")
	if err != nil {
		return err
	}
	if n < 0 {
		return intp.e(ErrRange, "copy: negative count %d", n)
	}
	if Integer(len(intp.Stack)) < n {
		return intp.e(ErrUnderflow, "copy: stack has fewer than %d items", n)
	}
	top := intp.Stack[len(intp.Stack)-int(n):]
	dup := make([]Object, n)
	copy(dup, top)
	intp.Stack = append(intp.Stack, dup...)
	return nil
}

func bIndex(intp *Interpreter) error {
	n, err := intp.popInteger("index")
	if err != nil {
		return err
	}
	if n < 0 {
		return intp.e(ErrRange, "index: negative index %d", n)
	}
	if Integer(len(intp.Stack)) <= n {
		return intp.e(ErrRange, "index: %d is below the bottom of the stack", n)
	}
	obj := intp.Stack[len(intp.Stack)-1-int(n)]
	intp.Stack = append(intp.Stack, obj)
	return nil
}

func bRoll(intp *Interpreter) error {
	n, j, err := intp.popIntegerPair("roll")
	if err != nil {
		return err
	}
	if n < 0 {
		return intp.e(ErrRange, "roll: negative length %d", n)
	}
	if Integer(len(intp.Stack)) < n {
		return intp.e(ErrRange, "roll: stack has fewer than %d items", n)
	}
	if n <= 1 {
		return nil
	}
	window := intp.Stack[len(intp.Stack)-int(n):]
	shift := int64(j) % int64(n)
	if shift < 0 {
		shift += int64(n)
	}
	rotated := make([]Object, n)
	for i := range rotated {
		src := (int64(i) - shift + int64(n)) % int64(n)
		rotated[i] = window[src]
	}
	copy(window, rotated)
	return nil
}

func bClear(intp *Interpreter) error {
	intp.Stack = intp.Stack[:0]
	return nil
}

// --- mark-based ----------------------------------------------------------

func bMark(intp *Interpreter) error {
	intp.Stack = append(intp.Stack, TheMark)
	return nil
}

func bEndArray(intp *Interpreter) error {
	items, err := intp.popToMark("]")
	if err != nil {
		return err
	}
	intp.Stack = append(intp.Stack, Array{Mode: Literal, Items: items})
	return nil
}

func bCountToMark(intp *Interpreter) error {
	for i := len(intp.Stack) - 1; i >= 0; i-- {
		if _, isMark := intp.Stack[i].(Mark); isMark {
			intp.Stack = append(intp.Stack, Integer(len(intp.Stack)-1-i))
			return nil
		}
	}
	return intp.e(ErrMarkNotFound, "counttomark: no mark on the operand stack")
}

func bClearToMark(intp *Interpreter) error {
	for i := len(intp.Stack) - 1; i >= 0; i-- {
		if _, isMark := intp.Stack[i].(Mark); isMark {
			intp.Stack = intp.Stack[:i]
			return nil
		}
	}
	return intp.e(ErrMarkNotFound, "cleartomark: no mark on the operand stack")
}

// popToMark removes and returns every item above the topmost Mark, in
// their original bottom-to-top order. The Mark itself is removed too
// but is not part of the returned slice.
func (intp *Interpreter) popToMark(opName string) ([]Object, error) {
	for i := len(intp.Stack) - 1; i >= 0; i-- {
		if _, isMark := intp.Stack[i].(Mark); isMark {
			items := make([]Object, len(intp.Stack)-1-i)
			copy(items, intp.Stack[i+1:])
			intp.Stack = intp.Stack[:i]
			return items, nil
		}
	}
	return nil, intp.e(ErrMarkNotFound, "%s: no mark on the operand stack", opName)
}

// --- name binding --------------------------------------------------------

func bDef(intp *Interpreter) error {
	obj, err := intp.pop()
	if err != nil {
		return intp.e(ErrUnderflow, "def: need a name and a value")
	}
	name, err := intp.popLiteralName("def")
	if err != nil {
		return err
	}
	intp.Dicts.def(name, obj)
	return nil
}

func bUndef(intp *Interpreter) error {
	name, err := intp.popLiteralName("undef")
	if err != nil {
		return err
	}
	intp.Dicts.undef(name)
	return nil
}

func bLoad(intp *Interpreter) error {
	name, err := intp.popLiteralName("load")
	if err != nil {
		return err
	}
	obj, ok := intp.Dicts.get(name)
	if !ok {
		return intp.e(ErrUndefined, "load: %s is not defined", name)
	}
	intp.Stack = append(intp.Stack, obj)
	return nil
}

// --- control flow ----------------------------------------------------------

func bIf(intp *Interpreter) error {
	proc, err := intp.popExecArray("if")
	if err != nil {
		return err
	}
	cond, err := intp.pop()
	if err != nil {
		return intp.e(ErrUnderflow, "if: need a boolean and a procedure")
	}
	b, ok := cond.(Boolean)
	if !ok {
		return intp.e(ErrType, "if: expected a boolean, got %T", cond)
	}
	if b {
		intp.Exec.push(newOnceRunner(proc.Items))
	}
	return nil
}

func bIfelse(intp *Interpreter) error {
	elseProc, err := intp.popExecArray("ifelse")
	if err != nil {
		return err
	}
	thenProc, err := intp.popExecArray("ifelse")
	if err != nil {
		return err
	}
	cond, err := intp.pop()
	if err != nil {
		return intp.e(ErrUnderflow, "ifelse: need a boolean and two procedures")
	}
	b, ok := cond.(Boolean)
	if !ok {
		return intp.e(ErrType, "ifelse: expected a boolean, got %T", cond)
	}
	if b {
		intp.Exec.push(newOnceRunner(thenProc.Items))
	} else {
		intp.Exec.push(newOnceRunner(elseProc.Items))
	}
	return nil
}

func bRepeat(intp *Interpreter) error {
	proc, err := intp.popExecArray("repeat")
	if err != nil {
		return err
	}
	n, err := intp.popInteger("repeat")
	if err != nil {
		return err
	}
	if n < 0 {
		return intp.e(ErrRange, "repeat: negative count %d", n)
	}
	if n > 0 {
		intp.Exec.push(newRepeatRunner(proc.Items, n))
	}
	return nil
}

func bExec(intp *Interpreter) error {
	obj, err := intp.pop()
	if err != nil {
		return intp.e(ErrUnderflow, "exec: operand stack is empty")
	}
	return intp.invoke(obj)
}

// --- output ----------------------------------------------------------------

func bPrint(intp *Interpreter) error {
	obj, err := intp.pop()
	if err != nil {
		return intp.e(ErrUnderflow, "=: operand stack is empty")
	}
	fmt.Fprintln(intp.Out, intp.format(obj))
	return nil
}

func bPstack(intp *Interpreter) error {
	for i := len(intp.Stack) - 1; i >= 0; i-- {
		fmt.Fprintln(intp.Out, intp.format(intp.Stack[i]))
	}
	return nil
}
