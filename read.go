package lispy

import (
	"strconv"
	"strings"
)

func readNumber(a *AST) Value {
	x, err := strconv.ParseInt(a.Contents, 10, 64)
	if err != nil {
		return NewError(msgBadNumber)
	}
	return NewNumber(x)
}

// Read converts a syntax tree into a value without evaluating it.
func Read(a *AST) Value {
	if strings.Contains(a.Tag, "number") {
		return readNumber(a)
	}
	if strings.Contains(a.Tag, "symbol") {
		return NewSymbol(a.Contents)
	}

	x := NewSexpr()
	for _, c := range a.Children {
		if c.Contents == "(" || c.Contents == ")" || c.Tag == "regex" {
			continue
		}
		x.Add(Read(c))
	}
	return x
}
