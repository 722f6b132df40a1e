package csgx

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func exec(t *testing.T, src string) *Interpreter {
	t.Helper()
	intp := NewInterpreter(&bytes.Buffer{})
	if err := intp.ExecuteString(src); err != nil {
		t.Fatalf("ExecuteString(%q): %v", src, err)
	}
	return intp
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want Integer
	}{
		{"2 3 add", 5},
		{"5 3 sub", 2},
		{"4 3 mul", 12},
		{"7 2 div", 3},
		{"-7 2 div", -3},
		{"7 2 mod", 1},
		{"-7 2 mod", -1},
	}
	for _, c := range cases {
		intp := exec(t, c.src)
		if diff := cmp.Diff(intp.Stack, []Object{c.want}); diff != "" {
			t.Errorf("%s: %s", c.src, diff)
		}
	}
}

func TestDivByZero(t *testing.T) {
	intp := NewInterpreter(&bytes.Buffer{})
	err := intp.ExecuteString("1 0 div")
	assertKind(t, err, ErrArithmetic)
}

func TestModByZero(t *testing.T) {
	intp := NewInterpreter(&bytes.Buffer{})
	err := intp.ExecuteString("1 0 mod")
	assertKind(t, err, ErrArithmetic)
}

func TestArithmeticTypeMismatch(t *testing.T) {
	intp := NewInterpreter(&bytes.Buffer{})
	err := intp.ExecuteString("true 1 add")
	assertKind(t, err, ErrType)
}

func TestComparison(t *testing.T) {
	cases := []struct {
		src  string
		want Boolean
	}{
		{"1 1 eq", true},
		{"1 2 eq", false},
		{"1 2 ne", true},
		{"2 1 gt", true},
		{"1 2 gt", false},
		{"true false gt", true},
		{"false true gt", false},
	}
	for _, c := range cases {
		intp := exec(t, c.src)
		if diff := cmp.Diff(intp.Stack, []Object{c.want}); diff != "" {
			t.Errorf("%s: %s", c.src, diff)
		}
	}
}

func TestComparisonTypeMismatch(t *testing.T) {
	intp := NewInterpreter(&bytes.Buffer{})
	err := intp.ExecuteString("1 true eq")
	assertKind(t, err, ErrType)
}

func TestDupPopExch(t *testing.T) {
	intp := exec(t, "1 dup")
	if diff := cmp.Diff(intp.Stack, []Object{Integer(1), Integer(1)}); diff != "" {
		t.Fatal(diff)
	}
	intp = exec(t, "1 2 pop")
	if diff := cmp.Diff(intp.Stack, []Object{Integer(1)}); diff != "" {
		t.Fatal(diff)
	}
	intp = exec(t, "1 2 exch")
	if diff := cmp.Diff(intp.Stack, []Object{Integer(2), Integer(1)}); diff != "" {
		t.Fatal(diff)
	}
}

func TestCopy(t *testing.T) {
	intp := exec(t, "1 2 3 2 copy")
	want := []Object{Integer(1), Integer(2), Integer(3), Integer(2), Integer(3)}
	if diff := cmp.Diff(intp.Stack, want); diff != "" {
		t.Fatal(diff)
	}
}

func TestCopyZero(t *testing.T) {
	intp := exec(t, "1 2 3 0 copy")
	if diff := cmp.Diff(intp.Stack, []Object{Integer(1), Integer(2), Integer(3)}); diff != "" {
		t.Fatal(diff)
	}
}

func TestCopyNegativeIsRangeError(t *testing.T) {
	intp := NewInterpreter(&bytes.Buffer{})
	err := intp.ExecuteString("1 -1 copy")
	assertKind(t, err, ErrRange)
}

func TestIndex(t *testing.T) {
	intp := exec(t, "1 2 3 0 index")
	if diff := cmp.Diff(intp.Stack, []Object{Integer(1), Integer(2), Integer(3), Integer(3)}); diff != "" {
		t.Fatal(diff)
	}
	intp = exec(t, "1 2 3 2 index")
	if diff := cmp.Diff(intp.Stack, []Object{Integer(1), Integer(2), Integer(3), Integer(1)}); diff != "" {
		t.Fatal(diff)
	}
}

func TestIndexOutOfRange(t *testing.T) {
	intp := NewInterpreter(&bytes.Buffer{})
	err := intp.ExecuteString("1 5 index")
	assertKind(t, err, ErrRange)
}

func TestClear(t *testing.T) {
	intp := exec(t, "1 2 3 clear")
	if intp.StackSize() != 0 {
		t.Fatalf("StackSize() = %d, want 0", intp.StackSize())
	}
}

func TestEndArrayWithoutMarkErrors(t *testing.T) {
	intp := NewInterpreter(&bytes.Buffer{})
	err := intp.ExecuteString("1 2 ]")
	assertKind(t, err, ErrMarkNotFound)
}

func TestCountToMarkWithoutMarkErrors(t *testing.T) {
	intp := NewInterpreter(&bytes.Buffer{})
	err := intp.ExecuteString("1 2 counttomark")
	assertKind(t, err, ErrMarkNotFound)
}

func TestDefPopUndefTypeError(t *testing.T) {
	intp := NewInterpreter(&bytes.Buffer{})
	err := intp.ExecuteString("1 2 def")
	assertKind(t, err, ErrType)
}

func TestLoad(t *testing.T) {
	intp := exec(t, "/x 42 def /x load")
	if diff := cmp.Diff(intp.Stack, []Object{Integer(42)}); diff != "" {
		t.Fatal(diff)
	}
}

func TestLoadUndefined(t *testing.T) {
	intp := NewInterpreter(&bytes.Buffer{})
	err := intp.ExecuteString("/nope load")
	assertKind(t, err, ErrUndefined)
}

func TestRepeatNegativeCountIsRangeError(t *testing.T) {
	intp := NewInterpreter(&bytes.Buffer{})
	err := intp.ExecuteString("-1 { } repeat")
	assertKind(t, err, ErrRange)
}

func TestRepeatZeroIsNoOp(t *testing.T) {
	intp := exec(t, "0 { 1 } repeat")
	if intp.StackSize() != 0 {
		t.Fatalf("StackSize() = %d, want 0", intp.StackSize())
	}
}

func TestPstack(t *testing.T) {
	var out bytes.Buffer
	intp := NewInterpreter(&out)
	if err := intp.ExecuteString("1 2 3 pstack"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "3\n2\n1\n" {
		t.Errorf("output = %q, want %q", out.String(), "3\n2\n1\n")
	}
}
