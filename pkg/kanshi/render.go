package kanshi

import "strings"

// Banner is written at the top of every saved config.
var Banner = []string{
	"# GENERATED BY AUTOKANSHI, DON'T TRY TO EDIT MATCHING RULES BY HAND",
	"# COMMENTS WILL BE REMOVED (however exec directives and profile names are kept)",
}

// Render returns the full text of the config: the banner followed by every
// profile, joined by newlines.
func (c *Config) Render() string {
	parts := make([]string, 0, len(Banner)+len(c.Profiles))
	parts = append(parts, Banner...)
	for _, p := range c.Profiles {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, "\n")
}
