package lispy

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOps(t *testing.T) {
	fns, err := filepath.Glob("testdir/*.lisp")
	if err != nil {
		t.Fatal(err)
	}
	if len(fns) == 0 {
		t.Fatal("no test files")
	}

	for _, fn := range fns {
		t.Log(fn)
		f, err := os.Open(fn)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		err = EvalLines(f, &buf, "<stdin>")
		f.Close()
		if err != nil {
			t.Error(err)
			continue
		}
		got := buf.String()
		b, err := os.ReadFile(fn[:len(fn)-4] + "out")
		if err != nil {
			t.Fatal(err)
		}
		want := string(b)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", fn, diff)
		}
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "()", want: "()"},
		{input: "(5)", want: "5"},
		{input: "(+ 1 (/ 1 0) (/ 1 0))", want: "Error: Division By Zero!"},
		{input: "(/ 10 0)", want: "Error: Division By Zero!"},
		{input: "(/ 10 2)", want: "5"},
		{input: "(- 5)", want: "-5"},
		{input: "(- 5 3)", want: "2"},
		{input: "(1 2 3)", want: "Error: S-expression Does not start with a symbol"},
		{input: "(+ 1 +)", want: "Error: Cannot operate on a non-number"},
		{input: "(+ 1 (* 2 3))", want: "7"},
		{input: "(+ 1 99999999999999999999)", want: "Error: invalid number"},
		{input: "(- 10 1 2 3)", want: "4"},
		{input: "(/ 100 0 (foo))", want: "Error: Cannot operate on a non-number"},
		{input: "(^ 3 4)", want: "81"},
		{input: "(^ -2 3)", want: "-8"},
		{input: "(min 4 -2 9)", want: "-2"},
		{input: "(max 4 -2 9)", want: "9"},
		{input: "(min 4)", want: "4"},
		{input: "(* 7)", want: "7"},
		{input: "(^ 1 -1)", want: "Error: Negative Exponent!"},
		{input: "(^ -1 -1)", want: "Error: Negative Exponent!"},
		{input: "(^ 2 -1)", want: "Error: Negative Exponent!"},
	}
	for _, test := range tests {
		v, err := EvalString("<stdin>", test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if got := v.String(); got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestEvalLiteral(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 42, -1000, 1 << 40, -(1 << 62), 9223372036854775807, -9223372036854775808} {
		s := strconv.FormatInt(n, 10)
		v, err := EvalString("<stdin>", s)
		if err != nil {
			t.Fatal(err)
		}
		if got := v.String(); got != s {
			t.Errorf("want %q but got %q", s, got)
		}
		if v.Type() != ValueNumber {
			t.Errorf("want number for %q but got %v", s, v.Type())
		}
	}
}

func TestEvalSelf(t *testing.T) {
	for _, v := range []Value{NewNumber(3), NewError("boom"), NewSymbol("+")} {
		if got := Eval(v); got != v {
			t.Errorf("want %v to evaluate to itself but got %v", v, got)
		}
	}
}

func TestEvalReleasesChildren(t *testing.T) {
	s := NewSexpr().
		Add(NewSymbol("+")).
		Add(NewNumber(1)).
		Add(NewSexpr().Add(NewSymbol("/")).Add(NewNumber(1)).Add(NewNumber(0)))
	v := Eval(s)
	if got := v.String(); got != "Error: Division By Zero!" {
		t.Errorf("want division error but got %q", got)
	}
	if s.Len() != 0 {
		t.Errorf("want evaluated expression to be empty but got %v", s)
	}
}

func TestErrorNotContagious(t *testing.T) {
	// An error operand handed straight to the fold is replaced, not passed on.
	a := NewSexpr().Add(NewNumber(1)).Add(NewError("inner"))
	v := applyBuiltin(a, "+", ops["+"])
	if got := v.String(); got != "Error: Cannot operate on a non-number" {
		t.Errorf("want non-number error but got %q", got)
	}
}

func TestRegister(t *testing.T) {
	Register("avg2", func(x, y Number) (Number, error) {
		return (x + y) / 2, nil
	})
	defer delete(ops, "avg2")

	v, err := EvalString("<stdin>", "(avg2 10 20 40)")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.String(); got != "27" {
		t.Errorf("want 27 but got %q", got)
	}

	names := Builtins()
	sort.Strings(names)
	if !strings.Contains(strings.Join(names, " "), "avg2") {
		t.Errorf("want avg2 in %v", names)
	}
}

func TestBuiltins(t *testing.T) {
	names := Builtins()
	sort.Strings(names)
	want := []string{"%", "*", "+", "-", "/", "^", "max", "min"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
