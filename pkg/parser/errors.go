package parser

import "fmt"

// Error is a fatal parse failure at a token position. The parser never
// recovers or resynchronizes: the first Error produced aborts the whole
// parse and is propagated unchanged to the caller.
type Error struct {
	Pos  int // index into the token sequence
	Line int
	Col  int
	Msg  string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at token %d (line %d, col %d): %s", e.Pos, e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("parse error at token %d: %s", e.Pos, e.Msg)
}

// errorf builds an Error for the token at pos, pulling line/col from the
// token when in bounds (or from the last token when pos is past the end).
func (p *Parser) errorf(pos int, format string, args ...interface{}) *Error {
	e := &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
	switch {
	case pos >= 0 && pos < len(p.tokens):
		e.Line, e.Col = p.tokens[pos].Line, p.tokens[pos].Col
	case len(p.tokens) > 0:
		last := p.tokens[len(p.tokens)-1]
		e.Line, e.Col = last.Line, last.Col
	}
	return e
}
