package lispy

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"
)

var (
	EOF = errors.New("unexpected end of file")
)

var numberRe = regexp.MustCompile(`^-?[0-9]+$`)

// AST is a node of the syntax tree produced by Parser. Tag lists the grammar
// rules that matched, separated by '|'; leaves carry the matched text in
// Contents.
type AST struct {
	Tag      string
	Contents string
	Line     int
	Col      int
	Children []*AST
}

func (a *AST) String() string {
	var buf bytes.Buffer
	a.dump(&buf, 0)
	return buf.String()
}

func (a *AST) dump(buf *bytes.Buffer, depth int) {
	buf.WriteString(strings.Repeat("  ", depth))
	if len(a.Children) == 0 {
		fmt.Fprintf(buf, "%s:%d:%d '%s'\n", a.Tag, a.Line, a.Col, a.Contents)
		return
	}
	fmt.Fprintf(buf, "%s\n", a.Tag)
	for _, c := range a.Children {
		c.dump(buf, depth+1)
	}
}

type ParseError struct {
	Filename string
	Line     int
	Col      int
	Msg      string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: error: %s", e.Filename, e.Line, e.Col, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type Parser struct {
	buf      *bufio.Reader
	filename string
	line     int
	col      int
	prevLine int
	prevCol  int
}

func NewParser(r io.Reader) *Parser {
	return &Parser{
		buf:      bufio.NewReader(r),
		filename: "<stdin>",
		line:     1,
		col:      1,
	}
}

// ParseString parses a single input held in memory.
func ParseString(filename, input string) (*AST, error) {
	p := NewParser(strings.NewReader(input))
	p.SetFilename(filename)
	return p.Parse()
}

func (p *Parser) SetFilename(name string) {
	p.filename = name
}

func (p *Parser) errorf(line, col int, err error, format string, args ...interface{}) error {
	return &ParseError{
		Filename: p.filename,
		Line:     line,
		Col:      col,
		Msg:      fmt.Sprintf(format, args...),
		Err:      err,
	}
}

func (p *Parser) readRune() (rune, error) {
	r, _, err := p.buf.ReadRune()
	if err != nil {
		return r, err
	}
	p.prevLine, p.prevCol = p.line, p.col
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return r, nil
}

func (p *Parser) unreadRune() error {
	err := p.buf.UnreadRune()
	if err == nil {
		p.line, p.col = p.prevLine, p.prevCol
	}
	return err
}

func (p *Parser) SkipWhite() {
	for {
		r, err := p.readRune()
		if err != nil {
			return
		}
		if r == ';' {
			for {
				r, err = p.readRune()
				if err != nil {
					return
				}
				if r == '\n' {
					break
				}
			}
			continue
		}
		if !unicode.IsSpace(r) {
			p.unreadRune()
			return
		}
	}
}

func isSymbolLetter(r rune) bool {
	return strings.ContainsRune(`+-*/%^<>=!&?._#$:@`, r)
}

func isPrimitiveRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || isSymbolLetter(r)
}

// ParseParen parses expressions up to, but not including, a closing paren or
// the end of input.
func (p *Parser) ParseParen() ([]*AST, error) {
	var children []*AST
	for {
		p.SkipWhite()
		b, err := p.buf.Peek(1)
		if err == io.EOF || (len(b) > 0 && b[0] == ')') {
			break
		}
		child, err := p.ParseAny()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func (p *Parser) ParsePrimitive() (*AST, error) {
	line, col := p.line, p.col
	var buf bytes.Buffer
	for {
		r, err := p.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if !isPrimitiveRune(r) {
			p.unreadRune()
			break
		}
		buf.WriteRune(r)
	}

	s := buf.String()
	tag := "expr|symbol"
	if numberRe.MatchString(s) {
		tag = "expr|number|regex"
	}
	return &AST{
		Tag:      tag,
		Contents: s,
		Line:     line,
		Col:      col,
	}, nil
}

func (p *Parser) ParseAny() (*AST, error) {
	p.SkipWhite()
	line, col := p.line, p.col
	r, err := p.readRune()
	if err != nil {
		if err == io.EOF {
			return nil, p.errorf(line, col, EOF, "unexpected end of input")
		}
		return nil, err
	}

	if r == '(' {
		children, err := p.ParseParen()
		if err != nil {
			return nil, err
		}
		cline, ccol := p.line, p.col
		r, err := p.readRune()
		if err != nil || r != ')' {
			return nil, p.errorf(cline, ccol, EOF, "expected ')' at end of input")
		}
		node := &AST{
			Tag:  "expr|sexpr|>",
			Line: line,
			Col:  col,
		}
		node.Children = append(node.Children, &AST{Tag: "char", Contents: "(", Line: line, Col: col})
		node.Children = append(node.Children, children...)
		node.Children = append(node.Children, &AST{Tag: "char", Contents: ")", Line: cline, Col: ccol})
		return node, nil
	}
	if isPrimitiveRune(r) {
		p.unreadRune()
		return p.ParsePrimitive()
	}
	return nil, p.errorf(line, col, nil, "invalid token: '%c'", r)
}

// Parse reads the whole input as one program: zero or more expressions
// wrapped in a root node.
func (p *Parser) Parse() (*AST, error) {
	root := &AST{
		Tag:  ">",
		Line: 1,
		Col:  1,
	}
	root.Children = append(root.Children, &AST{Tag: "regex", Line: 1, Col: 1})
	children, err := p.ParseParen()
	if err != nil {
		return nil, err
	}
	p.SkipWhite()
	line, col := p.line, p.col
	if r, err := p.readRune(); err == nil {
		return nil, p.errorf(line, col, nil, "unexpected '%c'", r)
	}
	root.Children = append(root.Children, children...)
	root.Children = append(root.Children, &AST{Tag: "regex", Line: line, Col: col})
	return root, nil
}
