package parser

import (
	"conceptc/pkg/ast"
)

// ProcessType collects the tokens describing one type and returns them as
// verbatim text. A type is an optional leading "const", then one or more
// "::"-joined identifiers (each optionally preceded by "typename" or
// "template" and optionally followed by a template argument list), then an
// optional trailing '&' or '*'. The cursor stops on the first token that is
// not part of the type. Fails if an identifier is missing where required.
func (p *Parser) ProcessType() (string, error) {
	start := p.pos

	if p.asLexeme(p.pos) == "const" {
		p.pos++
	}

	needID := true
	for needID {
		if p.asLexeme(p.pos) == "typename" {
			p.pos++
		}
		if p.asLexeme(p.pos) == "template" {
			p.pos++
		}

		if !p.isID(p.pos) {
			return "", p.errorf(p.pos, "expected type, found %q", p.asLexeme(p.pos))
		}
		p.pos++
		needID = false

		// A template argument list is scanned opaquely with angle brackets
		// treated as brackets.
		if p.asLexeme(p.pos) == "<" {
			p.pos++
			if _, err := p.ProcessCode(true, false); err != nil {
				return "", err
			}
			if err := p.requireChar('>', "template arguments must end in a close angle bracket"); err != nil {
				return "", err
			}
		}

		if p.asLexeme(p.pos) == "::" {
			p.pos++
			needID = true
		}
	}

	if p.asLexeme(p.pos) == "&" {
		p.pos++
	}
	if p.asLexeme(p.pos) == "*" {
		p.pos++
	}

	return p.concatLexemes(start, p.pos), nil
}

// ProcessParams collects the comma-separated (type, optional identifier)
// parameter pairs of a function, in declaration order. The cursor stops at
// the closing ')' without consuming it.
func (p *Parser) ProcessParams() ([]ast.ParamInfo, error) {
	var params []ast.ParamInfo

	for p.asChar(p.pos) != ')' {
		if len(params) > 0 {
			if err := p.requireChar(',', "parameters must be separated by commas"); err != nil {
				return nil, err
			}
		}

		typeName, err := p.ProcessType()
		if err != nil {
			return nil, err
		}

		var name string
		if p.isID(p.pos) {
			name = p.tokens[p.pos].Lexeme
			p.pos++
		}

		params = append(params, ast.ParamInfo{Type: typeName, Name: name})
	}

	return params, nil
}

// ProcessIDList collects a run of bare identifiers as a set; attribute lists
// are order-insensitive. The cursor stops at the first non-identifier.
func (p *Parser) ProcessIDList() map[string]struct{} {
	ids := make(map[string]struct{})
	for p.isID(p.pos) {
		ids[p.tokens[p.pos].Lexeme] = struct{}{}
		p.pos++
	}
	return ids
}

// ProcessTemplate collects a "template < ... >" prefix as verbatim text. If
// the cursor is not on the "template" keyword it returns "" and does not
// move.
func (p *Parser) ProcessTemplate() (string, error) {
	start := p.pos
	if p.asLexeme(p.pos) != "template" {
		return "", nil
	}
	p.pos++

	if err := p.requireChar('<', "a template header must begin with '<'"); err != nil {
		return "", err
	}
	if _, err := p.ProcessCode(true, false); err != nil {
		return "", err
	}
	if err := p.requireChar('>', "a template header must end with '>'"); err != nil {
		return "", err
	}
	return p.concatLexemes(start, p.pos), nil
}
