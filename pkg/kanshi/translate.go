package kanshi

import (
	"fmt"
	"strconv"
	"time"

	"github.com/arthur-debert/autokanshi/pkg/types"
)

// ProfilePrefix starts the name of every generated profile.
const ProfilePrefix = "autokanshi"

// OutputID returns the identity token of an output: make, model and serial
// joined by spaces and wrapped in double quotes. Nothing is escaped, the token
// must match what earlier runs wrote byte for byte.
func OutputID(o types.Output) string {
	return `"` + o.Make + " " + o.Model + " " + o.Serial + `"`
}

// DirectivesFromOutput describes one output as directives, in the fixed order
// output, mode, position, scale, transform. Mode, scale and transform are only
// emitted when the output reports them.
func DirectivesFromOutput(o types.Output) []Directive {
	state := "disable"
	if o.Active {
		state = "enable"
	}
	directives := []Directive{NewDirective(keywordOutput, OutputID(o), state)}

	if m := o.CurrentMode; m != nil {
		directives = append(directives,
			NewDirective("mode", fmt.Sprintf("%dx%d@%dHz", m.Width, m.Height, m.Refresh/1000)))
	}

	directives = append(directives,
		NewDirective("position", fmt.Sprintf("%d,%d", o.Rect.X, o.Rect.Y)))

	if o.Scale != nil {
		directives = append(directives,
			NewDirective("scale", strconv.FormatFloat(*o.Scale, 'f', -1, 64)))
	}
	if o.Transform != nil {
		directives = append(directives, NewDirective("transform", *o.Transform))
	}
	return directives
}

// ProfileFromLayout builds a profile describing every output of the layout,
// named after the generation time in UTC.
func ProfileFromLayout(outputs []types.Output, now time.Time) *Profile {
	var directives []Directive
	for _, o := range outputs {
		directives = append(directives, DirectivesFromOutput(o)...)
	}
	return &Profile{
		Name:       GeneratedName(now),
		Directives: directives,
	}
}

// GeneratedName formats the synthetic name of a new profile, e.g.
// autokanshi_7_3_2024__9_5_12. Fields are not zero padded.
func GeneratedName(now time.Time) string {
	now = now.UTC()
	return fmt.Sprintf("%s_%d_%d_%d__%d_%d_%d", ProfilePrefix,
		now.Day(), int(now.Month()), now.Year(),
		now.Hour(), now.Minute(), now.Second())
}

// outputSet returns the identity tokens of a live layout.
func outputSet(outputs []types.Output) map[string]struct{} {
	set := make(map[string]struct{}, len(outputs))
	for _, o := range outputs {
		set[OutputID(o)] = struct{}{}
	}
	return set
}
