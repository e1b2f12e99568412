package lexer

import "fmt"

// Kind classifies a token into one of the categories the parser dispatches on.
// Whitespace and comments are recognized and discarded at the lexing layer, so
// they never appear in a token stream.
type Kind int

const (
	KindIdentifier Kind = iota
	KindNumber
	KindString
	KindPreprocessor
	KindSymbol
)

func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindPreprocessor:
		return "preprocessor"
	case KindSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Token is a single classified lexical unit. Tokens are produced once, in
// source order, and never mutated.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Col    int
}

// String returns a debug representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s:%q", t.Kind, t.Lexeme)
}

// IsIdentifier reports whether the token is an identifier or keyword.
func (t Token) IsIdentifier() bool { return t.Kind == KindIdentifier }

// IsNumber reports whether the token is a numeric literal.
func (t Token) IsNumber() bool { return t.Kind == KindNumber }

// IsString reports whether the token is a string literal.
func (t Token) IsString() bool { return t.Kind == KindString }

// IsPreprocessor reports whether the token is a preprocessor directive.
func (t Token) IsPreprocessor() bool { return t.Kind == KindPreprocessor }

// IsSymbol reports whether the token is an operator or punctuation symbol.
func (t Token) IsSymbol() bool { return t.Kind == KindSymbol }
