package refresh

import (
	"context"
	"time"

	"github.com/arthur-debert/autokanshi/pkg/errors"
	"github.com/arthur-debert/autokanshi/pkg/executor"
	"github.com/arthur-debert/autokanshi/pkg/kanshi"
	"github.com/arthur-debert/autokanshi/pkg/logging"
	"github.com/arthur-debert/autokanshi/pkg/types"
	"github.com/spf13/afero"
)

// OutputSource supplies the outputs currently connected.
type OutputSource interface {
	Outputs(ctx context.Context) ([]types.Output, error)
}

// RefreshOptions holds options for the refresh command
type RefreshOptions struct {
	// ConfigPath is the kanshi config to update.
	ConfigPath string
	FileSystem afero.Fs

	Runner executor.Runner
	Source OutputSource

	// Editor is run before the layout is captured; empty skips it.
	Editor string
	// ReloadCommand is run after saving; empty skips it.
	ReloadCommand string
	// CommandTimeout bounds the output query and the reload command.
	CommandTimeout time.Duration

	SkipEditor bool
	SkipReload bool
	// DryRun renders the updated config instead of saving it.
	DryRun bool

	// Now defaults to time.Now.
	Now func() time.Time
}

// Refresh lets the user arrange their displays, then records the resulting
// layout in the kanshi config: the profile describing the same outputs is
// refreshed, or a new one is appended. Invocations must not overlap, the
// config file is not locked.
func Refresh(ctx context.Context, opts RefreshOptions) (*types.RefreshResult, error) {
	logger := logging.GetLogger("commands.refresh")

	if opts.FileSystem == nil {
		opts.FileSystem = afero.NewOsFs()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if !opts.SkipEditor && opts.Editor != "" {
		logger.Info().Str("editor", opts.Editor).Msg("Starting the screen layout editor")
		if err := opts.Runner.Shell(ctx, opts.Editor); err != nil {
			return nil, errors.Wrap(err, errors.ErrCommandFailed, "screen layout editor exited with an error")
		}
	}

	logger.Info().Msg("Fetching the current screen layout")
	outputs, err := fetchOutputs(ctx, opts)
	if err != nil {
		code := errors.GetErrorCode(err)
		if code == errors.ErrUnknown {
			code = errors.ErrCommandFailed
		}
		return nil, errors.Wrap(err, code, "could not fetch the current screen layout")
	}

	logger.Info().Str("path", opts.ConfigPath).Msg("Loading the kanshi config")
	cfg, err := kanshi.LoadOrEmpty(opts.FileSystem, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	outcome, err := Apply(cfg, outputs, opts.Now())
	if err != nil {
		return nil, err
	}

	result := &types.RefreshResult{
		ConfigPath:    cfg.Path,
		ProfileName:   outcome.Profile.Name,
		Replaced:      outcome.Replaced,
		ReplacedIndex: outcome.ReplacedIndex,
		Outputs:       len(outputs),
		DryRun:        opts.DryRun,
	}

	if opts.DryRun {
		result.Rendered = cfg.Render()
		logger.Info().Msg("Dry run, kanshi config left untouched")
		return result, nil
	}

	logger.Info().Msg("Saving kanshi config")
	if err := cfg.Save(opts.FileSystem); err != nil {
		return nil, err
	}

	if !opts.SkipReload && opts.ReloadCommand != "" {
		result.Reloaded = reload(ctx, opts)
	}

	return result, nil
}

func fetchOutputs(ctx context.Context, opts RefreshOptions) ([]types.Output, error) {
	if opts.CommandTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.CommandTimeout)
		defer cancel()
	}
	return opts.Source.Outputs(ctx)
}

// reload asks kanshi to pick up the new config. Failures are only logged.
func reload(ctx context.Context, opts RefreshOptions) bool {
	logger := logging.GetLogger("commands.refresh")

	if opts.CommandTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.CommandTimeout)
		defer cancel()
	}

	logger.Info().Str("command", opts.ReloadCommand).Msg("Reloading kanshi")
	if err := opts.Runner.Shell(ctx, opts.ReloadCommand); err != nil {
		logger.Warn().Err(err).Msg("Could not reload kanshi")
		return false
	}
	return true
}
