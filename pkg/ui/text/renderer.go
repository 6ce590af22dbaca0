// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/autokanshi/pkg/types"
)

// AnonymousName is shown for profiles declared without a name.
const AnonymousName = "(anonymous)"

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.RefreshResult:
		return r.renderRefresh(v)
	case *types.ListProfilesResult:
		return r.renderList(v)
	case *types.SettingsResult:
		return r.renderSettings(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RefreshSummary describes a refresh in one sentence.
func RefreshSummary(res *types.RefreshResult) string {
	verb := "created"
	if res.Replaced {
		verb = "refreshed"
	}
	if res.DryRun {
		verb = "would be " + verb
	}
	return fmt.Sprintf("Profile %s %s in %s (%d outputs)", res.ProfileName, verb, res.ConfigPath, res.Outputs)
}

// DisplayName returns the profile name, or a placeholder for anonymous ones.
func DisplayName(name string) string {
	if name == "" {
		return AnonymousName
	}
	return name
}

func (r *Renderer) renderRefresh(res *types.RefreshResult) error {
	var b strings.Builder
	b.WriteString(RefreshSummary(res))
	b.WriteString("\n")
	switch {
	case res.DryRun:
		b.WriteString("\n")
		b.WriteString(res.Rendered)
		b.WriteString("\n")
	case res.Reloaded:
		b.WriteString("kanshi reloaded\n")
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) renderList(res *types.ListProfilesResult) error {
	var b strings.Builder
	if len(res.Profiles) == 0 {
		fmt.Fprintf(&b, "No profiles in %s\n", res.ConfigPath)
		_, err := io.WriteString(r.output, b.String())
		return err
	}

	for _, p := range res.Profiles {
		marker := " "
		if p.Matched {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %d %s (%d directives)\n", marker, p.Index, DisplayName(p.Name), p.Directives)
		for _, o := range p.Outputs {
			fmt.Fprintf(&b, "    %s\n", o)
		}
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) renderSettings(res *types.SettingsResult) error {
	var b strings.Builder
	if res.Warning != "" {
		fmt.Fprintf(&b, "Warning: %s\n", res.Warning)
	}
	b.WriteString(res.Content)
	if !strings.HasSuffix(res.Content, "\n") {
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
