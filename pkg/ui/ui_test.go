package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/autokanshi/pkg/errors"
	"github.com/arthur-debert/autokanshi/pkg/types"
	"github.com/arthur-debert/autokanshi/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var (
	refreshed = &types.RefreshResult{
		ConfigPath:    "/home/user/.config/kanshi/config",
		ProfileName:   "docked",
		Replaced:      true,
		ReplacedIndex: 0,
		Outputs:       2,
		Reloaded:      true,
	}

	listed = &types.ListProfilesResult{
		ConfigPath: "/home/user/.config/kanshi/config",
		MatchIndex: 1,
		Profiles: []types.ProfileInfo{
			{Index: 0, Name: "docked", Outputs: []string{`"BOE 0x08DF "`, `"Dell U2415 ABC123"`}, Directives: 6},
			{Index: 1, Name: "", Outputs: []string{`"BOE 0x08DF "`}, Directives: 3, Matched: true},
		},
	}
)

func TestNewRenderer(t *testing.T) {
	formats := []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON, ui.FormatYAML}

	for _, format := range formats {
		t.Run(format.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(format, buf)
			require.NoError(t, err)
			require.NotNil(t, renderer)

			assert.NoError(t, renderer.RenderMessage("test message"))
			assert.NoError(t, renderer.RenderError(assert.AnError))
			assert.NoError(t, renderer.RenderResult(map[string]string{"test": "data"}))
			assert.NoError(t, renderer.RenderResult(refreshed))
			assert.NoError(t, renderer.RenderResult(listed))
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := ui.NewRenderer(ui.Format(42), &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	t.Run("render coded error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(errors.New(errors.ErrConfigParse, "bad")))

		var result map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "CONFIG_PARSE", result["code"])
		assert.Equal(t, "[CONFIG_PARSE] bad", result["error"])
	})

	t.Run("render list", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(listed))

		var result types.ListProfilesResult
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, *listed, result)
	})
}

func TestYAMLRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatYAML, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(refreshed))

	var result types.RefreshResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, *refreshed, result)
	assert.Contains(t, buf.String(), "profileName: docked")
	assert.NotContains(t, buf.String(), "rendered", "empty rendered config is omitted")
}

func TestTextRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	t.Run("render error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))
		assert.Equal(t, "Error: assert.AnError general error for testing\n", buf.String())
	})

	t.Run("render refresh", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(refreshed))
		assert.Equal(t,
			"Profile docked refreshed in /home/user/.config/kanshi/config (2 outputs)\nkanshi reloaded\n",
			buf.String())
	})

	t.Run("render dry run", func(t *testing.T) {
		buf.Reset()
		dry := &types.RefreshResult{
			ConfigPath:    "/tmp/config",
			ProfileName:   "autokanshi_1_1_2024__0_0_0",
			ReplacedIndex: -1,
			Outputs:       1,
			DryRun:        true,
			Rendered:      "profile autokanshi_1_1_2024__0_0_0 {\n}",
		}
		require.NoError(t, renderer.RenderResult(dry))
		assert.Equal(t,
			"Profile autokanshi_1_1_2024__0_0_0 would be created in /tmp/config (1 outputs)\n\nprofile autokanshi_1_1_2024__0_0_0 {\n}\n",
			buf.String())
	})

	t.Run("render list", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(listed))
		assert.Equal(t, `  0 docked (6 directives)
    "BOE 0x08DF "
    "Dell U2415 ABC123"
* 1 (anonymous) (3 directives)
    "BOE 0x08DF "
`, buf.String())
	})

	t.Run("render empty list", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(&types.ListProfilesResult{ConfigPath: "/tmp/config", MatchIndex: -1}))
		assert.Equal(t, "No profiles in /tmp/config\n", buf.String())
	})

	t.Run("render settings", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(&types.SettingsResult{Content: "[autokanshi]", Warning: "bad file"}))
		assert.Equal(t, "Warning: bad file\n[autokanshi]\n", buf.String())
	})

	t.Run("render unknown result type", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(map[string]string{"foo": "bar"}))
		assert.Contains(t, buf.String(), "map[foo:bar]")
	})
}

func TestTerminalRenderer(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	t.Run("render refresh", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(refreshed))
		out := buf.String()
		assert.Contains(t, out, "refreshed")
		assert.Contains(t, out, "docked")
		assert.Contains(t, out, "kanshi reloaded")
	})

	t.Run("render list", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(listed))
		out := buf.String()
		assert.Contains(t, out, "docked")
		assert.Contains(t, out, "(anonymous)")
		assert.Contains(t, out, "Dell U2415 ABC123")
	})

	t.Run("render error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))
		assert.Contains(t, buf.String(), "assert.AnError")
	})
}
