package kanshi

import "fmt"

// ParseError reports a grammar violation. Line and Column are 1-based.
type ParseError struct {
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Parse parses the full text of a kanshi config into its profiles. It either
// returns every profile or an error, never a partial result.
func Parse(src string) ([]*Profile, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	return p.parseFile()
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) skipNewlines() {
	for p.peek().kind == tokNewline {
		p.next()
	}
}

func errorAt(t token, format string, args ...interface{}) *ParseError {
	return &ParseError{Line: t.line, Column: t.col, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseFile() ([]*Profile, error) {
	profiles := []*Profile{}
	for {
		p.skipNewlines()
		t := p.peek()
		switch {
		case t.kind == tokEOF:
			return profiles, nil
		case t.kind == tokWord && t.text == keywordProfile:
			profile, err := p.parseProfile()
			if err != nil {
				return nil, err
			}
			profiles = append(profiles, profile)
		default:
			return nil, errorAt(t, "expected %q, found %s", keywordProfile, t)
		}
	}
}

func (p *parser) parseProfile() (*Profile, error) {
	start := p.next()
	profile := &Profile{}

	if p.peek().kind == tokWord {
		profile.Name = p.next().text
	}
	if t := p.next(); t.kind != tokLBrace {
		return nil, errorAt(t, `expected "{" to open profile, found %s`, t)
	}

	for {
		p.skipNewlines()
		t := p.peek()
		switch t.kind {
		case tokRBrace:
			p.next()
			return profile, nil
		case tokWord:
			directive, err := p.parseDirective()
			if err != nil {
				return nil, err
			}
			profile.Directives = append(profile.Directives, directive)
		case tokEOF:
			return nil, errorAt(start, `unterminated profile block, missing "}"`)
		default:
			return nil, errorAt(t, "unexpected %s in profile body", t)
		}
	}
}

// parseDirective reads words up to the end of the line. A closing brace on the
// same line also ends the directive and is left for the profile.
func (p *parser) parseDirective() (Directive, error) {
	var words []string
	for {
		t := p.peek()
		switch t.kind {
		case tokWord:
			words = append(words, p.next().text)
		case tokNewline:
			p.next()
			return Directive{Words: words}, nil
		case tokRBrace:
			return Directive{Words: words}, nil
		case tokEOF:
			return Directive{}, errorAt(t, `unexpected end of file in directive, missing "}"`)
		default:
			return Directive{}, errorAt(t, "unexpected %s in directive", t)
		}
	}
}
