package kanshi

import "fmt"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokWord
	tokLBrace
	tokRBrace
	tokNewline
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of file"
	case tokLBrace:
		return `"{"`
	case tokRBrace:
		return `"}"`
	case tokNewline:
		return "newline"
	default:
		return fmt.Sprintf("%q", t.text)
	}
}

// lexer splits a config into words, braces and newlines. Comments start with
// '#' at a token boundary and run to the end of the line.
type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) peekByte() byte {
	return l.src[l.pos]
}

func (l *lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.src)
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func isWordEnd(c byte) bool {
	return isBlank(c) || c == '\n' || c == '{' || c == '}'
}

func (l *lexer) next() (token, error) {
	for !l.eof() {
		c := l.peekByte()
		if isBlank(c) {
			l.advance()
			continue
		}
		if c == '#' {
			for !l.eof() && l.peekByte() != '\n' {
				l.advance()
			}
			continue
		}
		break
	}

	if l.eof() {
		return token{kind: tokEOF, line: l.line, col: l.col}, nil
	}

	line, col := l.line, l.col
	switch l.peekByte() {
	case '\n':
		l.advance()
		return token{kind: tokNewline, text: "\n", line: line, col: col}, nil
	case '{':
		l.advance()
		return token{kind: tokLBrace, text: "{", line: line, col: col}, nil
	case '}':
		l.advance()
		return token{kind: tokRBrace, text: "}", line: line, col: col}, nil
	}

	start := l.pos
	for !l.eof() && !isWordEnd(l.peekByte()) {
		if l.advance() != '"' {
			continue
		}
		for {
			if l.eof() || l.peekByte() == '\n' {
				return token{}, &ParseError{Line: line, Column: col, Msg: "unterminated quoted string"}
			}
			if l.advance() == '"' {
				break
			}
		}
	}
	return token{kind: tokWord, text: l.src[start:l.pos], line: line, col: col}, nil
}

func tokenize(src string) ([]token, error) {
	l := newLexer(src)
	var tokens []token
	for {
		t, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
		if t.kind == tokEOF {
			return tokens, nil
		}
	}
}
