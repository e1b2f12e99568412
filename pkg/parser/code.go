package parser

// ProcessCode collects one logical unit of code as verbatim text, without
// understanding its grammar, and returns the lexemes joined with single
// spaces. It advances the cursor one token past the last consumed token.
//
// The scan ends at:
//   - a ';' outside all brackets, unless multiLine is set (the ';' is
//     consumed and included in the returned text);
//   - a closing bracket with no matching opener: the closer is left at the
//     cursor for the caller and excluded from the returned text;
//   - end of input.
//
// '<' and '>' participate in bracket matching only when matchAngle is set,
// which is needed when scanning template argument lists; everywhere else
// they are ordinary comparison symbols.
//
// By default a closer pops whatever bracket is on top of the stack even when
// the types differ, so "( }" passes; the strict-brackets option turns that
// into an error, leaving the cursor at the offending closer.
func (p *Parser) ProcessCode(matchAngle, multiLine bool) (string, error) {
	start := p.pos
	var open []rune
	for p.hasToken(p.pos) {
		c := p.asChar(p.pos)
		p.pos++
		switch c {
		case ';':
			if len(open) == 0 && !multiLine {
				return p.concatLexemes(start, p.pos), nil
			}
		case '(', '[', '{', '<':
			if c == '<' && !matchAngle {
				break
			}
			open = append(open, c)
		case ')', ']', '}', '>':
			if c == '>' && !matchAngle {
				break
			}
			if len(open) > 0 {
				if p.strict && closerFor(open[len(open)-1]) != c {
					p.pos--
					return "", p.errorf(p.pos, "bracket %q closed by %q", string(open[len(open)-1]), string(c))
				}
				open = open[:len(open)-1]
				break
			}
			// Unmatched close-mark: leave it for the caller.
			p.pos--
			return p.concatLexemes(start, p.pos), nil
		}
	}
	return p.concatLexemes(start, p.pos), nil
}

func closerFor(open rune) rune {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	case '<':
		return '>'
	}
	return 0
}
