package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/autokanshi/pkg/errors"
)

// Environment variable names
const (
	// EnvKanshiConfig overrides the kanshi config location
	EnvKanshiConfig = "AUTOKANSHI_KANSHI_CONFIG"

	// EnvSettings overrides the settings file location
	EnvSettings = "AUTOKANSHI_SETTINGS"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// KanshiApp is the XDG prefix kanshi reads its config from
	KanshiApp = "kanshi"

	// ConfigFileName is the name of kanshi's config file
	ConfigFileName = "config"

	// SettingsApp is the XDG prefix of the settings file shared by the cde tools
	SettingsApp = "cde"

	// SettingsFileName is the name of the settings file
	SettingsFileName = "cde.toml"
)

// DefaultConfigPath returns $XDG_CONFIG_HOME/<app>/config, creating the parent
// directory when it does not exist. Unlike xdg.ConfigFile it never falls back
// to XDG_CONFIG_DIRS, and fails when the parent exists but is not a directory.
func DefaultConfigPath(app string) (string, error) {
	dir := filepath.Join(xdg.ConfigHome, app)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrPathResolve, "could not create config directory for %s", app)
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// ResolveKanshiConfig returns the kanshi config autokanshi works on. An
// explicit path wins, then EnvKanshiConfig, then an existing file in the XDG
// config dirs, then the default location.
func ResolveKanshiConfig(explicit string) (string, error) {
	if explicit == "" {
		explicit = os.Getenv(EnvKanshiConfig)
	}
	if explicit != "" {
		abs, err := filepath.Abs(expandHome(explicit))
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrPathResolve, "invalid kanshi config path %s", explicit)
		}
		return abs, nil
	}

	if found, err := xdg.SearchConfigFile(filepath.Join(KanshiApp, ConfigFileName)); err == nil {
		return found, nil
	}
	return DefaultConfigPath(KanshiApp)
}

// FindSettingsFile returns the settings file to load, if there is one.
func FindSettingsFile() (string, bool) {
	if explicit := os.Getenv(EnvSettings); explicit != "" {
		return expandHome(explicit), true
	}
	found, err := xdg.SearchConfigFile(filepath.Join(SettingsApp, SettingsFileName))
	if err != nil {
		return "", false
	}
	return found, true
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
