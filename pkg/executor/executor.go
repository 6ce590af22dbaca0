package executor

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/arthur-debert/autokanshi/pkg/errors"
	"github.com/arthur-debert/autokanshi/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultShell runs shell commands.
const DefaultShell = "/bin/sh"

// Runner runs external commands. It is satisfied by *Executor and by fakes in
// tests.
type Runner interface {
	// Shell runs a shell command line and waits for it to exit.
	Shell(ctx context.Context, command string) error
	// Output runs a program and returns what it wrote to stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Options contains configuration for the executor
type Options struct {
	// Logger defaults to the "executor" component logger
	Logger *zerolog.Logger
	// Shell defaults to DefaultShell
	Shell string
	// Stdout and Stderr receive the output of shell commands, os.Stdout and
	// os.Stderr when nil
	Stdout io.Writer
	Stderr io.Writer
}

// Executor runs commands with os/exec.
type Executor struct {
	logger *zerolog.Logger
	shell  string
	stdout io.Writer
	stderr io.Writer
}

// New creates a new executor instance
func New(opts Options) *Executor {
	shell := opts.Shell
	if shell == "" {
		shell = DefaultShell
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Executor{
		logger: opts.Logger,
		shell:  shell,
		stdout: stdout,
		stderr: stderr,
	}
}

// log resolves the component logger at call time so it follows SetupLogger.
func (e *Executor) log() *zerolog.Logger {
	if e.logger != nil {
		return e.logger
	}
	logger := logging.GetLogger("executor")
	return &logger
}

// Shell runs command through the shell. A spawn failure or a non-zero exit
// status is reported as ErrCommandFailed.
func (e *Executor) Shell(ctx context.Context, command string) error {
	start := time.Now()
	logging.LogCommand(e.shell, []string{"-c", command})

	cmd := exec.CommandContext(ctx, e.shell, "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	err := cmd.Run()
	e.log().Debug().
		Str("command", command).
		Dur("duration", time.Since(start)).
		Err(err).
		Msg("Shell command finished")
	if err != nil {
		return commandError(err, command, nil)
	}
	return nil
}

// Output runs name with args and returns its stdout. On failure the captured
// stderr is attached to the error details.
func (e *Executor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	logging.LogCommand(name, args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, commandError(err, strings.Join(append([]string{name}, args...), " "), &stderr)
	}
	return stdout.Bytes(), nil
}

func commandError(err error, command string, stderr *bytes.Buffer) error {
	akErr := errors.Wrapf(err, errors.ErrCommandFailed, "command %q failed", command).
		WithDetail("command", command)

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		akErr.WithDetail("exit_code", exitErr.ExitCode())
	}
	if stderr != nil && stderr.Len() > 0 {
		akErr.WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}
	return akErr
}
