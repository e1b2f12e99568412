package parser

import (
	"strings"

	"conceptc/pkg/ast"
)

// ProcessTop scans statements into scope until end of input or a close brace
// at depth zero. The close brace is left at the cursor so the namespace
// scanner can consume it; at the outermost scope Parse rejects a leftover
// one. Mutually recursive with itself (namespaces nest) and with
// ProcessConcept (concepts are members of any scope).
func (p *Parser) ProcessTop(scope *ast.Scope) error {
	for p.hasToken(p.pos) && p.asChar(p.pos) != '}' {
		// Preprocessor directives are hooked in verbatim.
		if p.isPP(p.pos) {
			scope.AddChild(&ast.Preproc{Text: p.asLexeme(p.pos)})
			p.pos++
			continue
		}

		if !p.isID(p.pos) {
			return p.errorf(p.pos, "statements in outer scope must begin with an identifier or keyword (found %q)", p.asLexeme(p.pos))
		}

		if p.asLexeme(p.pos) == "template" {
			if err := p.processTemplated(scope); err != nil {
				return err
			}
			continue
		}

		keyword := p.asLexeme(p.pos)
		p.pos++

		switch keyword {
		case "concept":
			if _, err := p.ProcessConcept(scope); err != nil {
				return err
			}

		case "struct", "class":
			if err := p.processClass(scope, keyword, ""); err != nil {
				return err
			}

		case "namespace":
			ns := &ast.Namespace{}
			if p.isID(p.pos) {
				ns.Name = p.asLexeme(p.pos)
				p.pos++
			}
			if err := p.requireChar('{', "a namespace must be defined in braces ('{' and '}')"); err != nil {
				return err
			}
			p.debugf("entering namespace %q", ns.Name)
			if err := p.ProcessTop(&ns.Scope); err != nil {
				return err
			}
			if err := p.requireChar('}', "the end of a namespace must have a close brace ('}')"); err != nil {
				return err
			}
			scope.AddChild(ns)

		case "using":
			if !p.isID(p.pos) {
				return p.errorf(p.pos, "a using statement must first specify the new type name")
			}
			name, err := p.ProcessType()
			if err != nil {
				return err
			}
			if err := p.requireChar('=', "a using statement must provide an equals ('=') to assign the type"); err != nil {
				return err
			}
			value, err := p.ProcessCode(false, false)
			if err != nil {
				return err
			}
			scope.AddChild(&ast.Using{Name: name, Value: trimStatement(value)})

		default:
			return p.errorf(p.pos-1, "unknown keyword %q", keyword)
		}
	}
	return nil
}

// processTemplated handles a "template < ... >" header, which may only
// introduce a struct or class definition.
func (p *Parser) processTemplated(scope *ast.Scope) error {
	head, err := p.ProcessTemplate()
	if err != nil {
		return err
	}
	keyword := p.asLexeme(p.pos)
	if keyword != "struct" && keyword != "class" {
		return p.errorf(p.pos, "a template header must introduce a struct or class")
	}
	p.pos++
	return p.processClass(scope, keyword, head)
}

// processClass scans "struct"/"class" with an optional name: the body is
// kept as verbatim text, not recursively parsed.
func (p *Parser) processClass(scope *ast.Scope, keyword, templateHead string) error {
	class := &ast.Class{Keyword: keyword, TemplateHead: templateHead}
	if p.isID(p.pos) {
		class.Name = p.asLexeme(p.pos)
		p.pos++
	}
	if err := p.requireChar('{', "a "+keyword+" must be defined in braces ('{' and '}')"); err != nil {
		return err
	}
	body, err := p.ProcessCode(false, true)
	if err != nil {
		return err
	}
	class.Body = body
	if err := p.requireChar('}', "the end of a "+keyword+" must have a close brace ('}')"); err != nil {
		return err
	}
	if err := p.requireChar(';', "a "+keyword+" must end with a semi-colon (';')"); err != nil {
		return err
	}
	scope.AddChild(class)
	return nil
}

// trimStatement strips the statement terminator ProcessCode consumes, so
// node fields hold just the expression text and renderers re-emit the ';'.
func trimStatement(code string) string {
	if code == ";" {
		return ""
	}
	return strings.TrimSuffix(code, " ;")
}
