package csgx

// procBuilder captures `{ ... }` token sequences into executable
// arrays without evaluating them, per SPEC_FULL.md §4.4. Depth 0
// means closed (the driver evaluates normally); depth >= 1 means the
// driver is appending tokens to the innermost accumulator instead.
type procBuilder struct {
	frames [][]Object
}

func (pb *procBuilder) isOpen() bool {
	return len(pb.frames) > 0
}

func (pb *procBuilder) depth() int {
	return len(pb.frames)
}

// open starts capturing a new, nested procedure body.
func (pb *procBuilder) open() {
	pb.frames = append(pb.frames, nil)
}

// push appends obj to the innermost accumulator. It panics if called
// while closed; callers must check isOpen first, exactly as the
// evaluation driver does.
func (pb *procBuilder) push(obj Object) {
	i := len(pb.frames) - 1
	pb.frames[i] = append(pb.frames[i], obj)
}

// close pops the innermost accumulator and wraps it as an executable
// Array. If another frame remains open, the new array is appended to
// it and nothing is yielded to the caller (ok=false); otherwise the
// array is returned for the driver to push onto the operand stack.
func (pb *procBuilder) close() (proc Array, ok bool) {
	n := len(pb.frames)
	items := pb.frames[n-1]
	pb.frames = pb.frames[:n-1]
	proc = Array{Mode: Executable, Items: items}
	if len(pb.frames) == 0 {
		return proc, true
	}
	pb.push(proc)
	return Array{}, false
}
