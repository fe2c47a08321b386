package lispy

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

type ValueType int

const (
	ValueNumber ValueType = iota
	ValueError
	ValueSymbol
	ValueSexpr
)

func (t ValueType) String() string {
	switch t {
	case ValueNumber:
		return "number"
	case ValueError:
		return "error"
	case ValueSymbol:
		return "symbol"
	case ValueSexpr:
		return "sexpr"
	}
	return "unknown"
}

// Value is the result of reading or evaluating an expression. It is one of
// Number, *Error, Symbol or *Sexpr.
type Value interface {
	Type() ValueType
	String() string
}

type Number int64

func NewNumber(x int64) Number {
	return Number(x)
}

func (n Number) Type() ValueType { return ValueNumber }

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// Error is an evaluation failure. It travels through the evaluator like any
// other value.
type Error struct {
	Msg string
}

func NewError(msg string) *Error {
	return &Error{Msg: msg}
}

func NewErrorf(format string, args ...interface{}) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Type() ValueType { return ValueError }

func (e *Error) String() string {
	return "Error: " + e.Msg
}

type Symbol string

func NewSymbol(name string) Symbol {
	return Symbol(name)
}

func (s Symbol) Type() ValueType { return ValueSymbol }

func (s Symbol) String() string {
	return string(s)
}

// Sexpr owns an ordered list of child values. A child belongs to exactly one
// Sexpr; Pop and Take move it out.
type Sexpr struct {
	cell []Value
}

func NewSexpr() *Sexpr {
	return &Sexpr{}
}

func (s *Sexpr) Type() ValueType { return ValueSexpr }

// Add appends v to the list and returns s.
func (s *Sexpr) Add(v Value) *Sexpr {
	s.cell = append(s.cell, v)
	return s
}

func (s *Sexpr) Len() int {
	return len(s.cell)
}

func (s *Sexpr) At(i int) Value {
	return s.cell[i]
}

// Pop removes the i-th child and returns it. The remaining children keep
// their order.
func (s *Sexpr) Pop(i int) Value {
	v := s.cell[i]
	copy(s.cell[i:], s.cell[i+1:])
	s.cell[len(s.cell)-1] = nil
	s.cell = s.cell[:len(s.cell)-1]
	return v
}

// Take returns the i-th child and releases every other child, leaving s
// empty.
func (s *Sexpr) Take(i int) Value {
	v := s.cell[i]
	s.Release()
	return v
}

// Release drops all children.
func (s *Sexpr) Release() {
	for i := range s.cell {
		s.cell[i] = nil
	}
	s.cell = nil
}

func (s *Sexpr) String() string {
	var buf bytes.Buffer
	buf.WriteByte('(')
	for i, v := range s.cell {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(v.String())
	}
	buf.WriteByte(')')
	return buf.String()
}

func Print(w io.Writer, v Value) error {
	_, err := io.WriteString(w, v.String())
	return err
}

func Println(w io.Writer, v Value) error {
	_, err := fmt.Fprintln(w, v.String())
	return err
}
