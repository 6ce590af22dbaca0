package settings

import (
	"github.com/arthur-debert/autokanshi/pkg/config"
	"github.com/arthur-debert/autokanshi/pkg/errors"
	"github.com/arthur-debert/autokanshi/pkg/logging"
	"github.com/arthur-debert/autokanshi/pkg/types"
)

// ShowSettingsOptions holds options for the settings command
type ShowSettingsOptions struct {
	// SettingsPath is the settings file to read; empty means defaults only.
	SettingsPath string
	// Defaults prints the commented defaults file instead of the effective
	// settings.
	Defaults bool
}

// ShowSettings renders the effective settings as TOML. A broken settings file
// is reported as a warning and the defaults are shown.
func ShowSettings(opts ShowSettingsOptions) (*types.SettingsResult, error) {
	logger := logging.GetLogger("commands.settings")

	if opts.Defaults {
		logger.Debug().Msg("Outputting default settings")
		return &types.SettingsResult{Content: config.DefaultContent()}, nil
	}

	result := &types.SettingsResult{SettingsPath: opts.SettingsPath}

	cfg, err := config.LoadFrom(opts.SettingsPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", opts.SettingsPath).Msg("Using default settings")
		result.Warning = err.Error()
		result.SettingsPath = ""
	}

	content, err := cfg.Render()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "could not render settings")
	}
	result.Content = content
	return result, nil
}
