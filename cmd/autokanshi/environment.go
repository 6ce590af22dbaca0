package autokanshi

import (
	"io"
	"os"
	"time"

	"github.com/arthur-debert/autokanshi/pkg/commands/refresh"
	"github.com/arthur-debert/autokanshi/pkg/config"
	"github.com/arthur-debert/autokanshi/pkg/executor"
	"github.com/arthur-debert/autokanshi/pkg/logging"
	"github.com/arthur-debert/autokanshi/pkg/sway"
	"github.com/spf13/afero"
)

// Environment is what the commands talk to: the filesystem holding the kanshi
// config, the process runner, sway and the settings file.
type Environment struct {
	FileSystem afero.Fs
	Stdout     io.Writer
	Runner     executor.Runner
	// NewSource builds the output source once settings are known.
	NewSource func(runner executor.Runner, settings *config.Config) refresh.OutputSource
	// LoadSettings returns usable settings even when it also returns an error.
	LoadSettings func() (*config.Config, error)
	Now          func() time.Time
}

// DefaultEnvironment wires the real system: the OS filesystem, os/exec,
// swaymsg and the settings file from the XDG config dirs.
func DefaultEnvironment() *Environment {
	return &Environment{
		FileSystem: afero.NewOsFs(),
		Stdout:     os.Stdout,
		// Child processes write to stderr so stdout only carries results.
		Runner: executor.New(executor.Options{Stdout: os.Stderr}),
		NewSource: func(runner executor.Runner, settings *config.Config) refresh.OutputSource {
			return sway.NewClient(runner, settings.Autokanshi.Swaymsg)
		},
		LoadSettings: config.Load,
		Now:          time.Now,
	}
}

// settings loads the settings, falling back to defaults on error.
func (e *Environment) settings() *config.Config {
	logger := logging.GetLogger("cli")

	cfg, err := e.LoadSettings()
	if err != nil {
		logger.Warn().Err(err).Msg("Could not load settings, using defaults")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg
}
