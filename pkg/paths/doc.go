// Package paths resolves the files autokanshi reads and writes.
//
// It follows the XDG Base Directory specification through adrg/xdg:
//
//   - Kanshi config: first existing kanshi/config in $XDG_CONFIG_HOME or
//     $XDG_CONFIG_DIRS, otherwise $XDG_CONFIG_HOME/kanshi/config
//   - Settings: cde/cde.toml, searched the same way
//
// # Environment Variables
//
//   - AUTOKANSHI_KANSHI_CONFIG: use this kanshi config instead of the XDG lookup
//   - AUTOKANSHI_SETTINGS: use this settings file instead of the XDG lookup
package paths
