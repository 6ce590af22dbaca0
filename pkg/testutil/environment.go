// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: In-memory kanshi config fixtures

package testutil

import (
	"testing"

	"github.com/arthur-debert/autokanshi/pkg/kanshi"
	"github.com/spf13/afero"
)

// DefaultConfigPath is where test environments keep the kanshi config.
const DefaultConfigPath = "/home/user/.config/kanshi/config"

// TestEnvironment is an in-memory filesystem with a kanshi config path.
type TestEnvironment struct {
	FS         afero.Fs
	ConfigPath string

	t *testing.T
}

// NewTestEnvironment creates an empty environment. The config file does not
// exist until WriteConfig is called.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	return &TestEnvironment{
		FS:         afero.NewMemMapFs(),
		ConfigPath: DefaultConfigPath,
		t:          t,
	}
}

// WriteConfig replaces the kanshi config with content.
func (e *TestEnvironment) WriteConfig(content string) {
	e.t.Helper()
	if err := afero.WriteFile(e.FS, e.ConfigPath, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write kanshi config: %v", err)
	}
}

// RawConfig returns the bytes of the kanshi config.
func (e *TestEnvironment) RawConfig() string {
	e.t.Helper()
	data, err := afero.ReadFile(e.FS, e.ConfigPath)
	if err != nil {
		e.t.Fatalf("Failed to read kanshi config: %v", err)
	}
	return string(data)
}

// LoadConfig parses the kanshi config.
func (e *TestEnvironment) LoadConfig() *kanshi.Config {
	e.t.Helper()
	cfg, err := kanshi.Load(e.FS, e.ConfigPath)
	if err != nil {
		e.t.Fatalf("Failed to load kanshi config: %v", err)
	}
	return cfg
}

// ConfigExists reports whether the kanshi config has been written.
func (e *TestEnvironment) ConfigExists() bool {
	e.t.Helper()
	exists, err := afero.Exists(e.FS, e.ConfigPath)
	if err != nil {
		e.t.Fatalf("Failed to stat kanshi config: %v", err)
	}
	return exists
}

// ProfileNames returns the names of the stored profiles, in file order.
func (e *TestEnvironment) ProfileNames() []string {
	e.t.Helper()
	cfg := e.LoadConfig()
	names := make([]string, len(cfg.Profiles))
	for i, p := range cfg.Profiles {
		names[i] = p.Name
	}
	return names
}
