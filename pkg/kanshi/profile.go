package kanshi

import (
	"sort"
	"strings"
)

const (
	keywordProfile = "profile"
	keywordOutput  = "output"
)

// Profile is a named or anonymous block of directives. An empty Name means the
// profile is anonymous.
type Profile struct {
	Name       string
	Directives []Directive
}

// Anonymous reports whether the profile was declared without a name.
func (p *Profile) Anonymous() bool {
	return p.Name == ""
}

// Outputs returns the set of output identity tokens named by the profile's
// output directives. It is recomputed on every call.
func (p *Profile) Outputs() map[string]struct{} {
	set := make(map[string]struct{})
	for _, d := range p.Directives {
		if d.Keyword() == keywordOutput && len(d.Words) > 1 {
			set[d.Words[1]] = struct{}{}
		}
	}
	return set
}

// SortedOutputs returns the output set as a sorted slice, for display.
func (p *Profile) SortedOutputs() []string {
	set := p.Outputs()
	outputs := make([]string, 0, len(set))
	for id := range set {
		outputs = append(outputs, id)
	}
	sort.Strings(outputs)
	return outputs
}

func (p *Profile) String() string {
	var b strings.Builder
	b.WriteString(keywordProfile)
	if !p.Anonymous() {
		b.WriteString(" ")
		b.WriteString(p.Name)
	}
	b.WriteString(" {\n")
	lines := make([]string, len(p.Directives))
	for i, d := range p.Directives {
		lines[i] = "    " + d.String()
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n}")
	return b.String()
}

// sameSet reports whether a and b hold exactly the same identity tokens.
func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}
