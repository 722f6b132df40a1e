package csgx

import "fmt"

// ErrorKind names one of the closed set of failure classifications
// from SPEC_FULL.md §7. It is a plain string type (rather than an
// int enum) so error messages and Is-comparisons stay readable.
type ErrorKind string

const (
	ErrScan         ErrorKind = "scanerror"
	ErrSyntax       ErrorKind = "syntaxerror"
	ErrUnderflow    ErrorKind = "underflowerror"
	ErrType         ErrorKind = "typeerror"
	ErrRange        ErrorKind = "rangeerror"
	ErrUndefined    ErrorKind = "undefinedname"
	ErrArithmetic   ErrorKind = "arithmeticerror"
	ErrMarkNotFound ErrorKind = "marknotfound"
)

// engineError is the concrete error type returned from every CORE
// failure path. Kind is normative (SPEC_FULL.md §7); Msg is
// informational and may change wording between versions.
type engineError struct {
	Kind ErrorKind
	Msg  string
}

func (err *engineError) Error() string {
	return fmt.Sprintf("%s: %s", err.Kind, err.Msg)
}

// newError builds an engineError of the given kind. It is a free
// function (not a method) because the scanner raises ScanErrors
// before an Interpreter necessarily exists.
func newError(kind ErrorKind, format string, a ...any) error {
	return &engineError{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// e is the Interpreter-method form of newError, used throughout
// interpreter.go and builtin.go so call sites read intp.e(...) instead
// of the free function.
func (intp *Interpreter) e(kind ErrorKind, format string, a ...any) error {
	return newError(kind, format, a...)
}
