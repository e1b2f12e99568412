package parser

import "strings"

// Bounds-checked positional predicates over the token sequence.

func (p *Parser) hasToken(pos int) bool {
	return pos >= 0 && pos < len(p.tokens)
}

func (p *Parser) isID(pos int) bool {
	return p.hasToken(pos) && p.tokens[pos].IsIdentifier()
}

func (p *Parser) isNumber(pos int) bool {
	return p.hasToken(pos) && p.tokens[pos].IsNumber()
}

func (p *Parser) isString(pos int) bool {
	return p.hasToken(pos) && p.tokens[pos].IsString()
}

func (p *Parser) isPP(pos int) bool {
	return p.hasToken(pos) && p.tokens[pos].IsPreprocessor()
}

// asChar returns the first rune of a symbol token, or 0 for any other token
// kind or an out-of-range position.
func (p *Parser) asChar(pos int) rune {
	if !p.hasToken(pos) || !p.tokens[pos].IsSymbol() {
		return 0
	}
	return rune(p.tokens[pos].Lexeme[0])
}

// asLexeme returns the lexeme at pos, or "" out of range.
func (p *Parser) asLexeme(pos int) string {
	if !p.hasToken(pos) {
		return ""
	}
	return p.tokens[pos].Lexeme
}

// concatLexemes reconstructs the source text of the token span [start, end),
// joining lexemes with single spaces.
func (p *Parser) concatLexemes(start, end int) string {
	if end > len(p.tokens) {
		end = len(p.tokens)
	}
	if start >= end {
		return ""
	}
	parts := make([]string, end-start)
	for i := start; i < end; i++ {
		parts[i-start] = p.tokens[i].Lexeme
	}
	return strings.Join(parts, " ")
}

// requireID checks for an identifier at the cursor and consumes it,
// returning its lexeme. On failure the cursor does not move.
func (p *Parser) requireID(msg string) (string, error) {
	if !p.isID(p.pos) {
		return "", p.errorf(p.pos, "%s", msg)
	}
	id := p.tokens[p.pos].Lexeme
	p.pos++
	return id, nil
}

// requireChar checks for the given symbol at the cursor and consumes it.
// On failure the cursor does not move.
func (p *Parser) requireChar(want rune, msg string) error {
	if p.asChar(p.pos) != want {
		return p.errorf(p.pos, "%s", msg)
	}
	p.pos++
	return nil
}
