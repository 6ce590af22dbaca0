package testutil

import (
	"context"
	"sync"

	"github.com/arthur-debert/autokanshi/pkg/types"
)

// MockRunner is a mock implementation of executor.Runner for testing.
type MockRunner struct {
	ShellFunc  func(command string) error
	OutputFunc func(name string, args ...string) ([]byte, error)

	mu       sync.Mutex
	commands []string
}

// Shell records the command and runs ShellFunc when set.
func (m *MockRunner) Shell(ctx context.Context, command string) error {
	m.mu.Lock()
	m.commands = append(m.commands, command)
	m.mu.Unlock()

	if m.ShellFunc != nil {
		return m.ShellFunc(command)
	}
	return nil
}

// Output runs OutputFunc when set.
func (m *MockRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if m.OutputFunc != nil {
		return m.OutputFunc(name, args...)
	}
	return nil, nil
}

// Commands returns the shell commands run so far.
func (m *MockRunner) Commands() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.commands...)
}

// FailOn makes the given shell command fail with err.
func (m *MockRunner) FailOn(command string, err error) *MockRunner {
	m.ShellFunc = func(c string) error {
		if c == command {
			return err
		}
		return nil
	}
	return m
}

// MockOutputSource serves a fixed layout.
type MockOutputSource struct {
	Layout []types.Output
	Err    error
	Calls  int
}

// Outputs returns the layout or Err.
func (m *MockOutputSource) Outputs(ctx context.Context) ([]types.Output, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Layout, nil
}
