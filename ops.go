package lispy

import (
	"errors"
)

const (
	msgBadNumber   = "invalid number"
	msgNotSymbol   = "S-expression Does not start with a symbol"
	msgBadOp       = "Unknown Operator!"
	msgNotNumber   = "Cannot operate on a non-number"
	msgDivZero     = "Division By Zero!"
	msgNegExponent = "Negative Exponent!"
)

var (
	errDivZero = errors.New(msgDivZero)
	// Integer powers have no negative exponents. A truncated float pow
	// would give 0 for (^ 2 -1); an error is reported instead.
	errNegExp  = errors.New(msgNegExponent)
)

// Fn folds the operand y into the accumulator x. A non-nil error stops the
// fold and becomes the result.
type Fn func(x, y Number) (Number, error)

var ops map[string]Fn

func init() {
	ops = make(map[string]Fn)
	ops["+"] = doPlus
	ops["-"] = doMinus
	ops["*"] = doMul
	ops["/"] = doDiv
	ops["%"] = doMod
	ops["^"] = doPow
	ops["min"] = doMin
	ops["max"] = doMax
}

// Register adds or replaces the builtin named name. It must not be called
// while an evaluation is running.
func Register(name string, fn Fn) {
	ops[name] = fn
}

// Builtins returns the names of all registered operators.
func Builtins() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	return names
}

// Eval reduces v to a single value. Only S-expressions are reduced; every
// other value evaluates to itself.
func Eval(v Value) Value {
	if s, ok := v.(*Sexpr); ok {
		return evalSexpr(s)
	}
	return v
}

func evalSexpr(s *Sexpr) Value {
	for i, c := range s.cell {
		s.cell[i] = Eval(c)
	}

	for i, c := range s.cell {
		if c.Type() == ValueError {
			return s.Take(i)
		}
	}

	switch s.Len() {
	case 0:
		return s
	case 1:
		return s.Take(0)
	}

	f, ok := s.Pop(0).(Symbol)
	if !ok {
		s.Release()
		return NewError(msgNotSymbol)
	}
	fn, ok := ops[string(f)]
	if !ok {
		s.Release()
		return NewError(msgBadOp)
	}
	return applyBuiltin(s, string(f), fn)
}

func applyBuiltin(a *Sexpr, op string, fn Fn) Value {
	for _, c := range a.cell {
		if c.Type() != ValueNumber {
			a.Release()
			return NewError(msgNotNumber)
		}
	}

	x := a.Pop(0).(Number)
	if op == "-" && a.Len() == 0 {
		return -x
	}

	for a.Len() > 0 {
		y := a.Pop(0).(Number)
		var err error
		x, err = fn(x, y)
		if err != nil {
			a.Release()
			return NewError(err.Error())
		}
	}
	return x
}

func doPlus(x, y Number) (Number, error) {
	return x + y, nil
}

func doMinus(x, y Number) (Number, error) {
	return x - y, nil
}

func doMul(x, y Number) (Number, error) {
	return x * y, nil
}

func doDiv(x, y Number) (Number, error) {
	if y == 0 {
		return 0, errDivZero
	}
	return x / y, nil
}

func doMod(x, y Number) (Number, error) {
	if y == 0 {
		return 0, errDivZero
	}
	return x % y, nil
}

func doPow(x, y Number) (Number, error) {
	if y < 0 {
		return 0, errNegExp
	}
	ret := Number(1)
	for y > 0 {
		if y&1 == 1 {
			ret *= x
		}
		x *= x
		y >>= 1
	}
	return ret, nil
}

func doMin(x, y Number) (Number, error) {
	if x <= y {
		return x, nil
	}
	return y, nil
}

func doMax(x, y Number) (Number, error) {
	if x >= y {
		return x, nil
	}
	return y, nil
}

// EvalString parses, reads and evaluates one input. The error result is
// only set when the input cannot be parsed.
func EvalString(filename, input string) (Value, error) {
	a, err := ParseString(filename, input)
	if err != nil {
		return nil, err
	}
	return Eval(Read(a)), nil
}
