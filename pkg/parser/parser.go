// Package parser implements the concept-notation scanner: a lexer-driven
// recursive descent over a materialized token sequence. Embedded code bodies
// and type expressions are delimited by bracket balance and a small set of
// keyword triggers, never parsed in full; their text is carried through
// verbatim.
package parser

import (
	"fmt"
	"io"
	"os"

	"conceptc/pkg/ast"
	"conceptc/pkg/lexer"
)

// Options configures a Parser at construction time.
type Options struct {
	// Debug enables trace output while scanning.
	Debug bool

	// DebugWriter receives trace output; defaults to os.Stderr.
	DebugWriter io.Writer

	// StrictBrackets makes ProcessCode reject a closing bracket whose type
	// does not match the most recently opened one. When false (the default)
	// any closer pops any opener.
	StrictBrackets bool
}

// Parser scans a token sequence into an output tree. The cursor is the sole
// traversal mechanism: every scanning method advances pos and documents how
// far it moves on success and on failure. A Parser is single-use per input
// and not safe for concurrent use.
type Parser struct {
	tokens []lexer.Token
	pos    int

	debug  bool
	debugW io.Writer
	strict bool
}

// New creates a parser with the given options.
func New(opts Options) *Parser {
	w := opts.DebugWriter
	if w == nil {
		w = os.Stderr
	}
	return &Parser{
		debug:  opts.Debug,
		debugW: w,
		strict: opts.StrictBrackets,
	}
}

// Load tokenizes src and resets the cursor to the first token. The name is
// used in diagnostics only.
func (p *Parser) Load(name string, src []byte) error {
	tokens, err := lexer.New().Tokenize(name, src)
	if err != nil {
		return err
	}
	p.tokens = tokens
	p.pos = 0
	return nil
}

// Tokens returns the materialized token sequence of the loaded input.
func (p *Parser) Tokens() []lexer.Token {
	return p.tokens
}

// Pos returns the current cursor position.
func (p *Parser) Pos() int {
	return p.pos
}

// Parse tokenizes src and scans it from the outermost scope, returning the
// root of the output tree. The first violation aborts the parse; the
// returned error carries the offending token position.
func (p *Parser) Parse(name string, src []byte) (*ast.Scope, error) {
	if err := p.Load(name, src); err != nil {
		return nil, err
	}
	root := &ast.Scope{}
	if err := p.ProcessTop(root); err != nil {
		return nil, err
	}
	// ProcessTop stops at a close brace so namespace bodies can share it; at
	// the outermost scope a leftover close brace has no opener.
	if p.pos < len(p.tokens) {
		return nil, p.errorf(p.pos, "unmatched close brace at outer scope")
	}
	return root, nil
}

func (p *Parser) debugf(format string, args ...interface{}) {
	if p.debug {
		fmt.Fprintf(p.debugW, "DEBUG: "+format+"\n", args...)
	}
}
