package types

// RefreshResult holds the result of the 'refresh' command.
type RefreshResult struct {
	ConfigPath  string `json:"configPath" yaml:"configPath"`
	ProfileName string `json:"profileName" yaml:"profileName"`
	// Replaced is true when an existing profile matched and was refreshed.
	Replaced bool `json:"replaced" yaml:"replaced"`
	// ReplacedIndex is the position the matched profile had before it moved to the end.
	ReplacedIndex int  `json:"replacedIndex" yaml:"replacedIndex"`
	Outputs       int  `json:"outputs" yaml:"outputs"`
	DryRun        bool `json:"dryRun" yaml:"dryRun"`
	// Reloaded is true when the reload command ran and succeeded.
	Reloaded bool   `json:"reloaded" yaml:"reloaded"`
	Rendered string `json:"rendered,omitempty" yaml:"rendered,omitempty"`
}

// ListProfilesResult holds the result of the 'list' command.
type ListProfilesResult struct {
	ConfigPath string        `json:"configPath" yaml:"configPath"`
	Profiles   []ProfileInfo `json:"profiles" yaml:"profiles"`
	// MatchIndex is the profile the current layout matches, -1 when none or not requested.
	MatchIndex int `json:"matchIndex" yaml:"matchIndex"`
}

// ProfileInfo contains summary information about a single stored profile.
type ProfileInfo struct {
	Index      int      `json:"index" yaml:"index"`
	Name       string   `json:"name" yaml:"name"`
	Outputs    []string `json:"outputs" yaml:"outputs"`
	Directives int      `json:"directives" yaml:"directives"`
	Matched    bool     `json:"matched" yaml:"matched"`
}

// SettingsResult holds the result of the 'settings' command.
type SettingsResult struct {
	// SettingsPath is the settings file that was read, empty when only the
	// defaults apply.
	SettingsPath string `json:"settingsPath" yaml:"settingsPath"`
	Content      string `json:"content" yaml:"content"`
	// Warning is set when the settings file could not be used.
	Warning string `json:"warning,omitempty" yaml:"warning,omitempty"`
}
