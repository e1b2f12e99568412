// Package generator produces the transformed rendering of an output tree:
// concept nodes are expanded into generated class code and every other node
// passes through unchanged, exactly as the echo rendering would emit it.
//
// A concept "Name : Base" expands to "class Name : public Base". Required
// functions become pure virtual declarations, defaulted functions virtual
// no-op definitions, and inline-bodied functions virtual definitions carrying
// the recorded body. Typedefs and variables are emitted as members; a
// required typedef becomes a marker comment, since the consumer must supply
// it.
package generator

import (
	"fmt"
	"io"
	"strings"

	"conceptc/pkg/ast"
)

// Generator renders an output tree in transformed mode.
type Generator struct {
	indentSize int
	useSpaces  bool
}

// Option adjusts a Generator.
type Option func(*Generator)

// WithIndent sets the indent width in spaces.
func WithIndent(size int) Option {
	return func(g *Generator) { g.indentSize = size }
}

// WithTabs switches indentation to tabs.
func WithTabs() Option {
	return func(g *Generator) { g.useSpaces = false }
}

// New creates a generator with two-space indentation.
func New(opts ...Option) *Generator {
	g := &Generator{indentSize: 2, useSpaces: true}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) indent(depth int) string {
	if g.useSpaces {
		return strings.Repeat(" ", g.indentSize*depth)
	}
	return strings.Repeat("\t", depth)
}

// Generate writes the transformed rendering of the tree rooted at scope.
func (g *Generator) Generate(w io.Writer, scope *ast.Scope) {
	g.generateScope(w, scope, 0)
}

func (g *Generator) generateScope(w io.Writer, scope *ast.Scope, depth int) {
	for _, child := range scope.Children {
		switch node := child.(type) {
		case *ast.Concept:
			g.generateConcept(w, node, depth)
		case *ast.Namespace:
			header := "namespace"
			if node.Name != "" {
				header += " " + node.Name
			}
			fmt.Fprintf(w, "%s%s {\n", g.indent(depth), header)
			g.generateScope(w, &node.Scope, depth+1)
			fmt.Fprintf(w, "%s}\n", g.indent(depth))
		default:
			child.Echo(w, g.indent(depth))
		}
	}
}

// generateConcept assembles the expansion as output tree nodes and echoes
// them, so generated code flows through the same rendering path as parsed
// code.
func (g *Generator) generateConcept(w io.Writer, c *ast.Concept, depth int) {
	body := &ast.Block{}
	body.AddChild(&ast.Code{Text: "public:"})

	c.EachMember(func(kind ast.MemberKind, e *ast.ElementInfo) {
		switch kind {
		case ast.MemberTypedef:
			if e.Special == ast.SpecialRequired {
				body.AddChild(&ast.Code{Text: fmt.Sprintf("// required: using %s;", e.Name)})
			} else {
				body.AddChild(&ast.Using{Name: e.Name, Value: e.DefaultCode})
			}
		case ast.MemberVariable:
			body.AddChild(&ast.VarDeclare{Type: e.Type, Name: e.Name, Default: e.DefaultCode})
		case ast.MemberFunction:
			body.AddChild(&ast.Code{Text: g.functionLine(e)})
		}
	})

	fmt.Fprintf(w, "%sclass %s : public %s {\n", g.indent(depth), c.Name, c.BaseName)
	body.Scope.Echo(w, g.indent(depth+1))
	fmt.Fprintf(w, "%s};\n", g.indent(depth))
}

func (g *Generator) functionLine(e *ast.ElementInfo) string {
	signature := fmt.Sprintf("virtual %s %s(%s)", e.Type, e.Name, e.ParamList())
	switch e.Special {
	case ast.SpecialRequired:
		return signature + " = 0; // required"
	case ast.SpecialDefault:
		return signature + " { } /* default */"
	default:
		return fmt.Sprintf("%s { %s }", signature, e.DefaultCode)
	}
}
