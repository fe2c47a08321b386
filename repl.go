package lispy

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// EvalLine evaluates input and writes its result, or the parse error, to w as
// a single line.
func EvalLine(w io.Writer, filename, input string) error {
	v, err := EvalString(filename, input)
	if err != nil {
		_, err = fmt.Fprintln(w, err)
		return err
	}
	return Println(w, v)
}

// evalLineSkipEmpty is EvalLine for batch input: lines holding no
// expression, such as blank or comment-only lines, print nothing.
func evalLineSkipEmpty(w io.Writer, filename, input string) error {
	a, err := ParseString(filename, input)
	if err != nil {
		_, err = fmt.Fprintln(w, err)
		return err
	}
	// the root always holds the two anchors
	if len(a.Children) == 2 {
		return nil
	}
	return Println(w, Eval(Read(a)))
}

// EvalLines treats every line of r as a separate input. Lines may be of any
// length.
func EvalLines(r io.Reader, w io.Writer, filename string) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		if werr := evalLineSkipEmpty(w, filename, line); werr != nil {
			return werr
		}
		if err == io.EOF {
			return nil
		}
	}
}
