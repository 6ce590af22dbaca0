package autokanshi

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Record sway screen layouts as kanshi profiles"
	MsgRefreshShort    = "Edit the screen layout and save it to the kanshi config"
	MsgListShort       = "List the profiles stored in the kanshi config"
	MsgSettingsShort   = "Show the effective settings"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = "Generate the autocompletion script for the specified shell."

	// Status messages
	MsgVersionFormat = "autokanshi %s (commit %s, built %s)"

	// Error messages
	MsgErrResolveConfig = "failed to resolve the kanshi config path: %w"
	MsgErrRefresh       = "failed to refresh the kanshi config: %w"
	MsgErrList          = "failed to list profiles: %w"
	MsgErrSettings      = "failed to show settings: %w"
	MsgErrFormat        = "invalid --format: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Path of the kanshi config (default $XDG_CONFIG_HOME/kanshi/config)"
	MsgFlagFormat   = "Output format: auto, term, text, json or yaml"
	MsgFlagNoEditor = "Do not start the screen layout editor"
	MsgFlagNoReload = "Do not ask kanshi to reload its config"
	MsgFlagDryRun   = "Print the updated config instead of writing it"
	MsgFlagMatch    = "Mark the profile matching the connected outputs (queries sway)"
	MsgFlagDefaults = "Print the commented default settings file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/refresh-long.txt
	msgRefreshLongRaw string
	MsgRefreshLong    = strings.TrimSpace(msgRefreshLongRaw)

	//go:embed msgs/refresh-example.txt
	msgRefreshExampleRaw string
	MsgRefreshExample    = strings.TrimRight(msgRefreshExampleRaw, "\n")

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/settings-long.txt
	msgSettingsLongRaw string
	MsgSettingsLong    = strings.TrimSpace(msgSettingsLongRaw)
)
