package ast

import (
	"strings"
	"testing"
)

func echo(n Node) string {
	var buf strings.Builder
	n.Echo(&buf, "")
	return buf.String()
}

func TestCodeEcho(t *testing.T) {
	if got := echo(&Code{Text: "x = 1 ;"}); got != "x = 1 ;\n" {
		t.Errorf("Got %q", got)
	}
}

func TestUsingEcho(t *testing.T) {
	if got := echo(&Using{Name: "X", Value: "int"}); got != "using X = int;\n" {
		t.Errorf("Got %q", got)
	}
}

func TestVarDeclareEcho(t *testing.T) {
	if got := echo(&VarDeclare{Type: "int", Name: "x"}); got != "int x;\n" {
		t.Errorf("Got %q", got)
	}
	if got := echo(&VarDeclare{Type: "int", Name: "x", Default: "= 42"}); got != "int x = 42;\n" {
		t.Errorf("Got %q", got)
	}
}

func TestPreprocEcho(t *testing.T) {
	if got := echo(&Preproc{Text: "#pragma once"}); got != "#pragma once\n" {
		t.Errorf("Got %q", got)
	}
}

func TestBlockEcho(t *testing.T) {
	b := &Block{}
	b.AddChild(&Code{Text: "a ;"})
	b.AddChild(&Code{Text: "b ;"})

	want := "{\n  a ;\n  b ;\n}\n"
	if got := echo(b); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNamespaceEchoIndentsChildren(t *testing.T) {
	ns := &Namespace{Name: "tools"}
	ns.AddChild(&Using{Name: "X", Value: "int"})

	want := "namespace tools {\n  using X = int;\n}\n"
	if got := echo(ns); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestClassEcho(t *testing.T) {
	c := &Class{Keyword: "struct", Name: "Raw", Body: "int x ;"}
	want := "struct Raw {\n  int x ;\n};\n"
	if got := echo(c); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	anon := &Class{Keyword: "class", Body: ""}
	want = "class {\n};\n"
	if got := echo(anon); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestConceptEchoAndOrder(t *testing.T) {
	c := &Concept{Name: "Fitness", BaseName: "Base"}
	c.AddTypedef(ElementInfo{Name: "fit_t", DefaultCode: "double"})
	c.AddFunction(ElementInfo{Name: "GetFitness", Type: "double", Special: SpecialRequired})
	c.AddVariable(ElementInfo{Name: "age", Type: "int", DefaultCode: "= 42"})
	c.AddFunction(ElementInfo{Name: "Print", Type: "void", DefaultCode: "return ;"})

	want := strings.Join([]string{
		"concept Fitness : Base {",
		"  using fit_t = double;",
		"  double GetFitness() = required;",
		"  int age = 42;",
		"  void Print() { return ; }",
		"};",
		"",
	}, "\n")
	if got := echo(c); got != want {
		t.Errorf("Expected:\n%s\nGot:\n%s", want, got)
	}

	var order []string
	c.EachMember(func(kind MemberKind, e *ElementInfo) {
		order = append(order, e.Name)
	})
	if strings.Join(order, " ") != "fit_t GetFitness age Print" {
		t.Errorf("Member order broken: %v", order)
	}
}

func TestElementInfoParamList(t *testing.T) {
	e := ElementInfo{Params: []ParamInfo{
		{Type: "int", Name: "a"},
		{Type: "double"},
	}}
	if got := e.ParamList(); got != "int a, double" {
		t.Errorf("Got %q", got)
	}
}

func TestAttributesSortedInEcho(t *testing.T) {
	c := &Concept{Name: "C", BaseName: "B"}
	c.AddFunction(ElementInfo{
		Name: "f", Type: "void",
		Attributes: map[string]struct{}{"noexcept": {}, "const": {}},
		Special:    SpecialRequired,
	})

	out := echo(c)
	if !strings.Contains(out, "void f() const noexcept = required;") {
		t.Errorf("Expected sorted attributes, got:\n%s", out)
	}
}

func TestSpecialValueString(t *testing.T) {
	if SpecialRequired.String() != "required" || SpecialDefault.String() != "default" || SpecialNone.String() != "" {
		t.Error("SpecialValue rendering broken")
	}
}

func TestScopePreservesChildOrder(t *testing.T) {
	s := &Scope{}
	s.AddChild(&Code{Text: "first"})
	s.AddChild(&Code{Text: "second"})

	if got := echo(s); got != "first\nsecond\n" {
		t.Errorf("Got %q", got)
	}
}
