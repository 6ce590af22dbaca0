// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/autokanshi/pkg/style"
	"github.com/arthur-debert/autokanshi/pkg/types"
	"github.com/arthur-debert/autokanshi/pkg/ui/text"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using pterm and lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
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

func (r *Renderer) renderRefresh(res *types.RefreshResult) error {
	status := style.StatusCreated
	if res.Replaced {
		status = style.StatusRefreshed
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n",
		style.Badge(status),
		style.ProfileStyle.Render(res.ProfileName),
		style.PathStyle.Render(res.ConfigPath))
	fmt.Fprintf(&b, "%s\n", style.MutedStyle.Render(fmt.Sprintf("%d outputs", res.Outputs)))

	switch {
	case res.DryRun:
		fmt.Fprintf(&b, "%s nothing written\n\n", style.Badge(style.StatusDryRun))
		b.WriteString(res.Rendered)
		b.WriteString("\n")
	case res.Reloaded:
		fmt.Fprintf(&b, "%s kanshi reloaded\n", style.SuccessIndicator)
	default:
		fmt.Fprintf(&b, "%s kanshi not reloaded\n", style.WarningIndicator)
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) renderList(res *types.ListProfilesResult) error {
	if len(res.Profiles) == 0 {
		_, err := fmt.Fprintf(r.output, "%s %s\n",
			style.MutedStyle.Render("No profiles in"),
			style.PathStyle.Render(res.ConfigPath))
		return err
	}

	data := pterm.TableData{{"", "#", "Profile", "Outputs", "Directives"}}
	for _, p := range res.Profiles {
		marker := ""
		if p.Matched {
			marker = style.MatchIndicator
		}
		outputs := make([]string, len(p.Outputs))
		for i, o := range p.Outputs {
			outputs[i] = style.OutputStyle.Render(o)
		}
		data = append(data, []string{
			marker,
			strconv.Itoa(p.Index),
			style.ProfileStyle.Render(text.DisplayName(p.Name)),
			strings.Join(outputs, ", "),
			strconv.Itoa(p.Directives),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.output, "%s\n%s\n", style.TitleStyle.Render(res.ConfigPath), table)
	return err
}

func (r *Renderer) renderSettings(res *types.SettingsResult) error {
	var b strings.Builder
	if res.Warning != "" {
		fmt.Fprintf(&b, "%s %s\n", style.WarningIndicator, style.WarningStyle.Render(res.Warning))
	}
	if res.SettingsPath != "" {
		fmt.Fprintf(&b, "%s\n", style.MutedStyle.Render("# "+res.SettingsPath))
	}
	b.WriteString(res.Content)
	if !strings.HasSuffix(res.Content, "\n") {
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %s\n", style.ErrorIndicator, style.ErrorStyle.Render(err.Error()))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
