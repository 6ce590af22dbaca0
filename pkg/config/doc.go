// Package config loads autokanshi's settings.
//
// Settings are layered with koanf, later layers overriding earlier ones:
//
//  1. embedded/defaults.toml
//  2. the settings file, cde/cde.toml in the XDG config dirs
//  3. CDE_ environment variables, "__" separating sections from keys
//
// Settings never stop a run: when the file cannot be read or decoded Load
// reports the error and returns the defaults.
package config
