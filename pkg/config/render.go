package config

import (
	"github.com/pelletier/go-toml/v2"
)

type renderedConfig struct {
	Autokanshi renderedAutokanshi `toml:"autokanshi"`
}

type renderedAutokanshi struct {
	ScreenLayoutEditor string `toml:"screen_layout_editor"`
	ReloadCommand      string `toml:"reload_command"`
	Swaymsg            string `toml:"swaymsg"`
	CommandTimeout     string `toml:"command_timeout"`
}

// Render returns the settings as TOML, in the same shape as the settings file.
func (c *Config) Render() (string, error) {
	out, err := toml.Marshal(renderedConfig{
		Autokanshi: renderedAutokanshi{
			ScreenLayoutEditor: c.Autokanshi.ScreenLayoutEditor,
			ReloadCommand:      c.Autokanshi.ReloadCommand,
			Swaymsg:            c.Autokanshi.Swaymsg,
			CommandTimeout:     c.Autokanshi.CommandTimeout.String(),
		},
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DefaultContent returns the commented defaults file.
func DefaultContent() string {
	return string(defaultConfig)
}
