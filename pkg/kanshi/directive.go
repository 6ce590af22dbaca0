package kanshi

import "strings"

// Directive is one line of a profile body. Words[0] is the keyword.
type Directive struct {
	Words []string
}

// NewDirective builds a directive from its keyword and arguments.
func NewDirective(keyword string, args ...string) Directive {
	words := make([]string, 0, len(args)+1)
	words = append(words, keyword)
	words = append(words, args...)
	return Directive{Words: words}
}

// Keyword returns the first token of the directive.
func (d Directive) Keyword() string {
	return d.Words[0]
}

func (d Directive) String() string {
	return strings.Join(d.Words, " ")
}
