// Package lexer adapts the llx regexp-rule lexer for concept-notation input.
//
// The rule set is deliberately small: the parser only needs tokens delimited
// and classified, not understood. Rules are tried in priority order (encoded
// as regexp alternation order): whitespace and comments first, both dropped,
// then preprocessor directives, identifiers, numbers, strings, and finally a
// catch-all symbol rule. The "::" symbol is the one multi-character symbol,
// since qualified type names are matched against it as a whole lexeme.
package lexer

import (
	"regexp"

	llxlexer "github.com/ava12/llx/lexer"
	"github.com/ava12/llx/source"
)

// Alternatives without capturing groups (whitespace, comments) are matched
// and discarded by the llx lexer. Capturing group n maps to tokenTypes[n-1].
var tokenRe = regexp.MustCompile(`(?:[ \t\r\n]+)` +
	`|(?://[^\n]*)` +
	`|(?:/\*(?:[^*]|\*+[^*/])*\*+/)` +
	`|(#[^\n]*)` +
	`|([A-Za-z_][A-Za-z0-9_]*)` +
	`|([0-9]+(?:\.[0-9]+)?)` +
	`|("[^"\n]*")` +
	`|(::|.)`)

var tokenTypes = []llxlexer.TokenType{
	{Type: int(KindPreprocessor), TypeName: KindPreprocessor.String()},
	{Type: int(KindIdentifier), TypeName: KindIdentifier.String()},
	{Type: int(KindNumber), TypeName: KindNumber.String()},
	{Type: int(KindString), TypeName: KindString.String()},
	{Type: int(KindSymbol), TypeName: KindSymbol.String()},
}

// Lexer tokenizes concept-notation source text. It is stateless and safe to
// reuse across inputs.
type Lexer struct {
	lx *llxlexer.Lexer
}

// New creates a lexer with the concept-notation rule set.
func New() *Lexer {
	return &Lexer{lx: llxlexer.New(tokenRe, tokenTypes)}
}

// Tokenize scans src and returns the complete token sequence in source order,
// with whitespace and comments already filtered out. The name is used only in
// error positions. A character that matches no rule yields a positioned error
// and no tokens.
func (l *Lexer) Tokenize(name string, src []byte) ([]Token, error) {
	q := source.NewQueue().Append(source.New(name, src))

	var tokens []Token
	for {
		t, err := l.lx.Next(q)
		if err != nil {
			return nil, err
		}
		switch t.Type() {
		case llxlexer.EofTokenType:
			continue
		case llxlexer.EoiTokenType:
			return tokens, nil
		}
		line, col := t.LineCol()
		tokens = append(tokens, Token{
			Kind:   Kind(t.Type()),
			Lexeme: t.Text(),
			Line:   line,
			Col:    col,
		})
	}
}
