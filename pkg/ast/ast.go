// Package ast defines the output tree built by the concept-notation parser.
//
// The tree is a closed set of node variants. Each node corresponds to a
// contiguous, fully consumed span of input tokens and owns its children
// exclusively; the structure is produced by a single-pass descent and never
// re-parented. Once parsing completes the tree is read-only.
//
// Every node knows how to render itself in echo mode, reproducing the
// original input modulo normalized whitespace. The transformed rendering,
// which expands Concept nodes into generated code, lives in the generator
// package.
package ast

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Node is the interface shared by all output tree variants. The variant set
// is closed: only types in this package implement it.
type Node interface {
	// Echo writes the node back out as source text, prefixing each emitted
	// line with indent.
	Echo(w io.Writer, indent string)

	node()
}

// Scope is an ordered sequence of statements: the tree root, and the body of
// each namespace.
type Scope struct {
	Children []Node
}

func (s *Scope) node() {}

// AddChild appends a child node, preserving statement order.
func (s *Scope) AddChild(n Node) {
	s.Children = append(s.Children, n)
}

func (s *Scope) Echo(w io.Writer, indent string) {
	for _, child := range s.Children {
		child.Echo(w, indent)
	}
}

// Code is verbatim text echoed through unchanged.
type Code struct {
	Text string
}

func (c *Code) node() {}

func (c *Code) Echo(w io.Writer, indent string) {
	fmt.Fprintf(w, "%s%s\n", indent, c.Text)
}

// Block is a brace-delimited sequence of statements.
type Block struct {
	Scope
}

func (b *Block) Echo(w io.Writer, indent string) {
	fmt.Fprintf(w, "%s{\n", indent)
	b.Scope.Echo(w, indent+"  ")
	fmt.Fprintf(w, "%s}\n", indent)
}

// Using is a type alias: "using Name = Value;".
type Using struct {
	Name  string
	Value string
}

func (u *Using) node() {}

func (u *Using) Echo(w io.Writer, indent string) {
	fmt.Fprintf(w, "%susing %s = %s;\n", indent, u.Name, u.Value)
}

// VarDeclare is a variable declaration with an optional default expression.
// Default carries the full initializer text including the leading "=".
type VarDeclare struct {
	Type    string
	Name    string
	Default string
}

func (v *VarDeclare) node() {}

func (v *VarDeclare) Echo(w io.Writer, indent string) {
	if v.Default == "" {
		fmt.Fprintf(w, "%s%s %s;\n", indent, v.Type, v.Name)
	} else {
		fmt.Fprintf(w, "%s%s %s %s;\n", indent, v.Type, v.Name, v.Default)
	}
}

// Class is a struct or class definition whose body is kept as verbatim text,
// not recursively parsed. Keyword is "struct" or "class"; TemplateHead holds
// a verbatim "template < ... >" prefix when present.
type Class struct {
	Keyword      string
	Name         string
	TemplateHead string
	Body         string
}

func (c *Class) node() {}

func (c *Class) Echo(w io.Writer, indent string) {
	if c.TemplateHead != "" {
		fmt.Fprintf(w, "%s%s\n", indent, c.TemplateHead)
	}
	header := c.Keyword
	if c.Name != "" {
		header += " " + c.Name
	}
	fmt.Fprintf(w, "%s%s {\n", indent, header)
	if c.Body != "" {
		fmt.Fprintf(w, "%s  %s\n", indent, c.Body)
	}
	fmt.Fprintf(w, "%s};\n", indent)
}

// Namespace is a named (or anonymous) scope.
type Namespace struct {
	Name string
	Scope
}

func (n *Namespace) Echo(w io.Writer, indent string) {
	header := "namespace"
	if n.Name != "" {
		header += " " + n.Name
	}
	fmt.Fprintf(w, "%s%s {\n", indent, header)
	n.Scope.Echo(w, indent+"  ")
	fmt.Fprintf(w, "%s}\n", indent)
}

// Preproc is a preprocessor directive passed through verbatim.
type Preproc struct {
	Text string
}

func (p *Preproc) node() {}

func (p *Preproc) Echo(w io.Writer, indent string) {
	fmt.Fprintf(w, "%s\n", p.Text)
}

// SpecialValue marks a concept function as required or defaulted instead of
// carrying an inline body.
type SpecialValue int

const (
	SpecialNone SpecialValue = iota
	SpecialRequired
	SpecialDefault
)

func (sv SpecialValue) String() string {
	switch sv {
	case SpecialRequired:
		return "required"
	case SpecialDefault:
		return "default"
	default:
		return ""
	}
}

// ParamInfo is one function parameter: a type with an optional name.
type ParamInfo struct {
	Type string
	Name string
}

func (p ParamInfo) String() string {
	if p.Name == "" {
		return p.Type
	}
	return p.Type + " " + p.Name
}

// ElementInfo describes one concept member: a typedef, variable, or function.
// It is created during concept-body scanning and never mutated afterwards.
type ElementInfo struct {
	Name       string
	Type       string
	Params     []ParamInfo
	Attributes map[string]struct{}
	// DefaultCode holds the alias value for typedefs, the initializer for
	// variables ("= expr"), or the body text for inline-defined functions.
	DefaultCode string
	Special     SpecialValue
}

// HasAttribute reports whether the member carries the named attribute.
func (e *ElementInfo) HasAttribute(name string) bool {
	_, ok := e.Attributes[name]
	return ok
}

// ParamList renders the parameters in declaration order.
func (e *ElementInfo) ParamList() string {
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// attrSuffix renders the attribute set, sorted for deterministic output.
func (e *ElementInfo) attrSuffix() string {
	if len(e.Attributes) == 0 {
		return ""
	}
	return " " + strings.Join(sortedKeys(e.Attributes), " ")
}

// Concept is a named interface specification: a base class plus ordered
// collections of typedef, variable, and function members. Name and BaseName
// are non-empty once construction completes; each collection preserves
// declaration order.
type Concept struct {
	Name     string
	BaseName string

	Typedefs  []ElementInfo
	Variables []ElementInfo
	Functions []ElementInfo

	// order keeps every member in overall declaration order for echoing.
	order []member
}

func (c *Concept) node() {}

type member struct {
	kind MemberKind
	// index into the collection selected by kind
	index int
}

// MemberKind distinguishes the three member collections of a concept.
type MemberKind int

const (
	MemberTypedef MemberKind = iota
	MemberVariable
	MemberFunction
)

// AddTypedef appends a typedef member.
func (c *Concept) AddTypedef(e ElementInfo) {
	c.Typedefs = append(c.Typedefs, e)
	c.order = append(c.order, member{MemberTypedef, len(c.Typedefs) - 1})
}

// AddVariable appends a variable member.
func (c *Concept) AddVariable(e ElementInfo) {
	c.Variables = append(c.Variables, e)
	c.order = append(c.order, member{MemberVariable, len(c.Variables) - 1})
}

// AddFunction appends a function member.
func (c *Concept) AddFunction(e ElementInfo) {
	c.Functions = append(c.Functions, e)
	c.order = append(c.order, member{MemberFunction, len(c.Functions) - 1})
}

// EachMember calls fn for every member in overall declaration order.
func (c *Concept) EachMember(fn func(kind MemberKind, e *ElementInfo)) {
	for _, m := range c.order {
		switch m.kind {
		case MemberTypedef:
			fn(m.kind, &c.Typedefs[m.index])
		case MemberVariable:
			fn(m.kind, &c.Variables[m.index])
		case MemberFunction:
			fn(m.kind, &c.Functions[m.index])
		}
	}
}

func (c *Concept) Echo(w io.Writer, indent string) {
	fmt.Fprintf(w, "%sconcept %s : %s {\n", indent, c.Name, c.BaseName)
	inner := indent + "  "
	c.EachMember(func(kind MemberKind, e *ElementInfo) {
		switch kind {
		case MemberTypedef:
			fmt.Fprintf(w, "%susing %s = %s;\n", inner, e.Name, e.DefaultCode)
		case MemberVariable:
			if e.DefaultCode == "" {
				fmt.Fprintf(w, "%s%s %s;\n", inner, e.Type, e.Name)
			} else {
				fmt.Fprintf(w, "%s%s %s %s;\n", inner, e.Type, e.Name, e.DefaultCode)
			}
		case MemberFunction:
			fmt.Fprintf(w, "%s%s %s(%s)%s", inner, e.Type, e.Name, e.ParamList(), e.attrSuffix())
			switch e.Special {
			case SpecialRequired, SpecialDefault:
				fmt.Fprintf(w, " = %s;\n", e.Special)
			default:
				fmt.Fprintf(w, " { %s }\n", e.DefaultCode)
			}
		}
	})
	fmt.Fprintf(w, "%s};\n", indent)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
