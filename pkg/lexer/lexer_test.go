package lexer

import (
	"testing"
)

func tokenize(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := New().Tokenize("test.cc", []byte(src))
	if err != nil {
		t.Fatalf("Failed to tokenize %q: %v", src, err)
	}
	return tokens
}

func TestTokenClassification(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
	}{
		{"identifier", KindIdentifier},
		{"_under_score1", KindIdentifier},
		{"42", KindNumber},
		{"3.14", KindNumber},
		{`"a string"`, KindString},
		{"#include <vector>", KindPreprocessor},
		{"{", KindSymbol},
		{";", KindSymbol},
		{"@", KindSymbol},
	}

	for _, tt := range tests {
		tokens := tokenize(t, tt.src)
		if len(tokens) != 1 {
			t.Errorf("%q: expected 1 token, got %d (%v)", tt.src, len(tokens), tokens)
			continue
		}
		if tokens[0].Kind != tt.kind {
			t.Errorf("%q: expected kind %s, got %s", tt.src, tt.kind, tokens[0].Kind)
		}
		if tokens[0].Lexeme != tt.src {
			t.Errorf("%q: expected lexeme preserved, got %q", tt.src, tokens[0].Lexeme)
		}
	}
}

func TestWhitespaceAndCommentsDiscarded(t *testing.T) {
	src := `foo // line comment
	/* block
	   comment */ bar`

	tokens := tokenize(t, src)
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %d (%v)", len(tokens), tokens)
	}
	if tokens[0].Lexeme != "foo" || tokens[1].Lexeme != "bar" {
		t.Errorf("Expected [foo bar], got %v", tokens)
	}
}

func TestDoubleColonIsOneSymbol(t *testing.T) {
	tokens := tokenize(t, "std::vector")
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d (%v)", len(tokens), tokens)
	}
	if tokens[1].Kind != KindSymbol || tokens[1].Lexeme != "::" {
		t.Errorf("Expected symbol \"::\", got %v", tokens[1])
	}
}

func TestSingleColonStaysSplit(t *testing.T) {
	tokens := tokenize(t, "Name : Base")
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d (%v)", len(tokens), tokens)
	}
	if tokens[1].Lexeme != ":" {
		t.Errorf("Expected \":\", got %q", tokens[1].Lexeme)
	}
}

func TestSourceOrderAndPositions(t *testing.T) {
	src := "int x;\nint y;"
	tokens := tokenize(t, src)

	want := []string{"int", "x", ";", "int", "y", ";"}
	if len(tokens) != len(want) {
		t.Fatalf("Expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, lexeme := range want {
		if tokens[i].Lexeme != lexeme {
			t.Errorf("Token %d: expected %q, got %q", i, lexeme, tokens[i].Lexeme)
		}
	}

	if tokens[0].Line != 1 || tokens[0].Col != 1 {
		t.Errorf("Expected first token at 1:1, got %d:%d", tokens[0].Line, tokens[0].Col)
	}
	if tokens[3].Line != 2 || tokens[3].Col != 1 {
		t.Errorf("Expected second int at 2:1, got %d:%d", tokens[3].Line, tokens[3].Col)
	}
}

func TestPredicates(t *testing.T) {
	tokens := tokenize(t, `name 1 "s" ( #define X`)
	if len(tokens) != 5 {
		t.Fatalf("Expected 5 tokens, got %d (%v)", len(tokens), tokens)
	}
	if !tokens[0].IsIdentifier() || !tokens[1].IsNumber() || !tokens[2].IsString() ||
		!tokens[3].IsSymbol() || !tokens[4].IsPreprocessor() {
		t.Errorf("Predicate mismatch on %v", tokens)
	}
	if tokens[0].IsSymbol() || tokens[3].IsIdentifier() {
		t.Errorf("Predicates must be exclusive, got %v", tokens)
	}
}

func TestPreprocessorStopsAtNewline(t *testing.T) {
	tokens := tokenize(t, "#include <set>\nint x;")
	if len(tokens) != 4 {
		t.Fatalf("Expected 4 tokens, got %d (%v)", len(tokens), tokens)
	}
	if tokens[0].Lexeme != "#include <set>" {
		t.Errorf("Expected directive lexeme to span the line, got %q", tokens[0].Lexeme)
	}
	if tokens[1].Lexeme != "int" {
		t.Errorf("Expected parsing to resume after the directive, got %q", tokens[1].Lexeme)
	}
}

func TestLexerIsReusable(t *testing.T) {
	l := New()
	for _, src := range []string{"a b", "c d"} {
		tokens, err := l.Tokenize("test.cc", []byte(src))
		if err != nil {
			t.Fatalf("Failed to tokenize %q: %v", src, err)
		}
		if len(tokens) != 2 {
			t.Errorf("%q: expected 2 tokens, got %d", src, len(tokens))
		}
	}
}
