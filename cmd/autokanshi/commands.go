package autokanshi

import (
	"context"
	"fmt"
	"os"

	"github.com/arthur-debert/autokanshi/internal/version"
	"github.com/arthur-debert/autokanshi/pkg/commands/list"
	"github.com/arthur-debert/autokanshi/pkg/commands/refresh"
	"github.com/arthur-debert/autokanshi/pkg/commands/settings"
	"github.com/arthur-debert/autokanshi/pkg/logging"
	"github.com/arthur-debert/autokanshi/pkg/paths"
	"github.com/arthur-debert/autokanshi/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every command
type globalFlags struct {
	verbosity  int
	configPath string
	format     string
}

type refreshFlags struct {
	noEditor bool
	noReload bool
	dryRun   bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithEnvironment(DefaultEnvironment())
}

// NewRootCmdWithEnvironment creates the root command running against env.
func NewRootCmdWithEnvironment(env *Environment) *cobra.Command {
	global := &globalFlags{}
	rf := &refreshFlags{}

	rootCmd := &cobra.Command{
		Use:     "autokanshi",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(global.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		// A bare invocation refreshes
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRefresh(cmd, env, global, rf)
		},
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&global.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&global.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&global.format, "format", "f", "auto", MsgFlagFormat)
	addRefreshFlags(rootCmd, rf)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newRefreshCmd(env, global, rf))
	rootCmd.AddCommand(newListCmd(env, global))
	rootCmd.AddCommand(newSettingsCmd(env, global))
	rootCmd.AddCommand(newVersionCmd(env, global))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func addRefreshFlags(cmd *cobra.Command, rf *refreshFlags) {
	cmd.Flags().BoolVar(&rf.noEditor, "no-editor", false, MsgFlagNoEditor)
	cmd.Flags().BoolVar(&rf.noReload, "no-reload", false, MsgFlagNoReload)
	cmd.Flags().BoolVar(&rf.dryRun, "dry-run", false, MsgFlagDryRun)
}

// ReportedError is a command failure that was already written to stdout as a
// JSON or YAML document. The caller only has to set the exit status.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// output is the renderer selected by --format
type output struct {
	ui.Renderer
	structured bool
}

// newRenderer builds the renderer selected by --format
func newRenderer(env *Environment, global *globalFlags) (*output, error) {
	format, err := ui.ParseFormat(global.format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrFormat, err)
	}
	renderer, err := ui.NewRenderer(format, env.Stdout)
	if err != nil {
		return nil, err
	}
	return &output{Renderer: renderer, structured: format.Structured()}, nil
}

// fail reports err on stdout when the output is machine readable, so scripts
// get an error document instead of styled text on stderr.
func (o *output) fail(err error) error {
	if !o.structured {
		return err
	}
	if rerr := o.RenderError(err); rerr != nil {
		return err
	}
	return &ReportedError{Err: err}
}

func resolveConfig(global *globalFlags) (string, error) {
	path, err := paths.ResolveKanshiConfig(global.configPath)
	if err != nil {
		return "", fmt.Errorf(MsgErrResolveConfig, err)
	}
	return path, nil
}

func newRefreshCmd(env *Environment, global *globalFlags, rf *refreshFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "refresh",
		Short:   MsgRefreshShort,
		Long:    MsgRefreshLong,
		Example: MsgRefreshExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRefresh(cmd, env, global, rf)
		},
	}
	addRefreshFlags(cmd, rf)
	return cmd
}

func runRefresh(cmd *cobra.Command, env *Environment, global *globalFlags, rf *refreshFlags) error {
	renderer, err := newRenderer(env, global)
	if err != nil {
		return err
	}
	configPath, err := resolveConfig(global)
	if err != nil {
		return renderer.fail(err)
	}
	cfg := env.settings()

	log.Info().
		Str("config", configPath).
		Bool("dry_run", rf.dryRun).
		Msg("Refreshing kanshi config")

	result, err := refresh.Refresh(cmd.Context(), refresh.RefreshOptions{
		ConfigPath:     configPath,
		FileSystem:     env.FileSystem,
		Runner:         env.Runner,
		Source:         env.NewSource(env.Runner, cfg),
		Editor:         cfg.Autokanshi.ScreenLayoutEditor,
		ReloadCommand:  cfg.Autokanshi.ReloadCommand,
		CommandTimeout: cfg.Autokanshi.CommandTimeout,
		SkipEditor:     rf.noEditor,
		SkipReload:     rf.noReload,
		DryRun:         rf.dryRun,
		Now:            env.Now,
	})
	if err != nil {
		return renderer.fail(fmt.Errorf(MsgErrRefresh, err))
	}
	return renderer.RenderResult(result)
}

func newListCmd(env *Environment, global *globalFlags) *cobra.Command {
	var match bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(env, global)
			if err != nil {
				return err
			}
			configPath, err := resolveConfig(global)
			if err != nil {
				return renderer.fail(err)
			}

			opts := list.ListProfilesOptions{
				ConfigPath: configPath,
				FileSystem: env.FileSystem,
				Match:      match,
			}
			if match {
				cfg := env.settings()
				ctx := cmd.Context()
				if timeout := cfg.Autokanshi.CommandTimeout; timeout > 0 {
					var cancel context.CancelFunc
					ctx, cancel = context.WithTimeout(ctx, timeout)
					defer cancel()
				}
				outputs, err := env.NewSource(env.Runner, cfg).Outputs(ctx)
				if err != nil {
					return renderer.fail(fmt.Errorf(MsgErrList, err))
				}
				opts.Outputs = outputs
			}

			result, err := list.ListProfiles(opts)
			if err != nil {
				return renderer.fail(fmt.Errorf(MsgErrList, err))
			}
			return renderer.RenderResult(result)
		},
	}
	cmd.Flags().BoolVarP(&match, "match", "m", false, MsgFlagMatch)
	return cmd
}

func newSettingsCmd(env *Environment, global *globalFlags) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "settings",
		Short:   MsgSettingsShort,
		Long:    MsgSettingsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(env, global)
			if err != nil {
				return err
			}
			path, _ := paths.FindSettingsFile()
			result, err := settings.ShowSettings(settings.ShowSettingsOptions{
				SettingsPath: path,
				Defaults:     defaults,
			})
			if err != nil {
				return renderer.fail(fmt.Errorf(MsgErrSettings, err))
			}
			return renderer.RenderResult(result)
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd(env *Environment, global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(env, global)
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(os.Stdout, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
