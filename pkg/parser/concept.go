package parser

import (
	"conceptc/pkg/ast"
)

// ProcessConcept scans a concept definition, the cursor sitting just past
// the "concept" keyword: name, ':', base class name, then a brace-delimited
// member list and a trailing ';'. The completed node is appended to scope
// and returned.
func (p *Parser) ProcessConcept(scope *ast.Scope) (*ast.Concept, error) {
	concept := &ast.Concept{}

	name, err := p.requireID("concept declaration must be followed by a name identifier")
	if err != nil {
		return nil, err
	}
	concept.Name = name

	if err := p.requireChar(':', "a concept name must be followed by a colon (':')"); err != nil {
		return nil, err
	}

	base, err := p.requireID("concept declaration must include the name of a base class")
	if err != nil {
		return nil, err
	}
	concept.BaseName = base

	p.debugf("defining concept %q with base class %q", concept.Name, concept.BaseName)

	if err := p.requireChar('{', "a concept must be defined in braces ('{' and '}')"); err != nil {
		return nil, err
	}

	for p.asChar(p.pos) != '}' {
		if err := p.processMember(concept); err != nil {
			return nil, err
		}
	}
	p.pos++ // close brace

	if err := p.requireChar(';', "a concept definition must end in a semi-colon (';')"); err != nil {
		return nil, err
	}

	scope.AddChild(concept)
	return concept, nil
}

// processMember scans one concept member: a using-alias, a variable, or a
// function. Functions are recognized by a '(' after the member name and are
// further split into required, defaulted, and inline-bodied variants.
func (p *Parser) processMember(concept *ast.Concept) error {
	if !p.isID(p.pos) {
		return p.errorf(p.pos, "concept members must be functions, variables, or using-statements (found %q)", p.asLexeme(p.pos))
	}

	var elem ast.ElementInfo

	if p.asLexeme(p.pos) == "using" {
		p.pos++
		if !p.isID(p.pos) {
			return p.errorf(p.pos, "a using member must first specify the new type name")
		}
		name, err := p.ProcessType()
		if err != nil {
			return err
		}
		elem.Name = name
		if err := p.requireChar('=', "a using member must provide an equals ('=') to assign the type"); err != nil {
			return err
		}
		value, err := p.ProcessCode(false, false)
		if err != nil {
			return err
		}
		elem.DefaultCode = trimStatement(value)
		if elem.DefaultCode == "required" {
			elem.Special = ast.SpecialRequired
		}
		concept.AddTypedef(elem)
		return nil
	}

	typeName, err := p.ProcessType()
	if err != nil {
		return err
	}
	elem.Type = typeName

	name, err := p.requireID("concept functions and variables must provide an identifier after the type name")
	if err != nil {
		return err
	}
	elem.Name = name

	if p.asChar(p.pos) != '(' {
		return p.processVariable(concept, elem)
	}
	p.pos++
	return p.processFunction(concept, elem)
}

// processFunction finishes a function member, the cursor sitting just past
// the open parenthesis.
func (p *Parser) processFunction(concept *ast.Concept, elem ast.ElementInfo) error {
	params, err := p.ProcessParams()
	if err != nil {
		return err
	}
	elem.Params = params

	if err := p.requireChar(')', "function arguments must end with a close parenthesis (')')"); err != nil {
		return err
	}

	elem.Attributes = p.ProcessIDList()

	switch p.asChar(p.pos) {
	case '=':
		p.pos++
		if !p.isID(p.pos) {
			return p.errorf(p.pos, "a function must be assigned to 'required' or 'default'")
		}
		switch p.asLexeme(p.pos) {
		case "required":
			elem.Special = ast.SpecialRequired
		case "default":
			elem.Special = ast.SpecialDefault
		default:
			return p.errorf(p.pos, "functions can only be set to 'required' or 'default' (found %q)", p.asLexeme(p.pos))
		}
		p.pos++
		if err := p.requireChar(';', "a "+elem.Special.String()+" function must end in a semi-colon (';')"); err != nil {
			return err
		}

	case '{':
		p.pos++
		body, err := p.ProcessCode(false, true)
		if err != nil {
			return err
		}
		elem.DefaultCode = body
		p.debugf("function %q body: %s", elem.Name, elem.DefaultCode)
		if err := p.requireChar('}', "a function body must end with a close brace ('}')"); err != nil {
			return err
		}

	default:
		return p.errorf(p.pos, "a function tail must be an open brace or an assignment ('{' or '=')")
	}

	concept.AddFunction(elem)
	return nil
}

// processVariable finishes a variable member, the cursor sitting just past
// the member name.
func (p *Parser) processVariable(concept *ast.Concept, elem ast.ElementInfo) error {
	if p.asChar(p.pos) == ';' {
		p.pos++
	} else {
		code, err := p.ProcessCode(false, false)
		if err != nil {
			return err
		}
		elem.DefaultCode = trimStatement(code)
	}
	concept.AddVariable(elem)
	return nil
}
