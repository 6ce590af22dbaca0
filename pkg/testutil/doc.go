// Package testutil provides utilities for testing autokanshi components.
//
// Key components:
//   - TestEnvironment: an in-memory filesystem holding a kanshi config
//   - MockRunner: records shell commands instead of running them
//   - MockOutputSource: serves a fixed screen layout
//   - NewOutput: builds sway outputs for layouts
//
// Tests never touch the real kanshi config or start real processes.
package testutil
