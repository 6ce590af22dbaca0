package executor

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/arthur-debert/autokanshi/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExecutor() (*Executor, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return New(Options{Stdout: &stdout, Stderr: &stderr}), &stdout, &stderr
}

func TestNewDefaults(t *testing.T) {
	e := New(Options{})
	assert.Equal(t, DefaultShell, e.shell)
	assert.NotNil(t, e.stdout)
	assert.NotNil(t, e.stderr)
}

func TestShell(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, stdout, _ := newTestExecutor()

		require.NoError(t, e.Shell(context.Background(), "echo hello && echo world"))
		assert.Equal(t, "hello\nworld\n", stdout.String())
	})

	t.Run("non zero exit", func(t *testing.T) {
		e, _, stderr := newTestExecutor()

		err := e.Shell(context.Background(), "echo oops >&2; exit 3")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
		assert.Equal(t, 3, errors.GetErrorDetails(err)["exit_code"])
		assert.Equal(t, "oops\n", stderr.String())
	})

	t.Run("unknown program", func(t *testing.T) {
		e, _, _ := newTestExecutor()

		err := e.Shell(context.Background(), "definitely-not-a-real-program-xyz")
		assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
	})

	t.Run("missing shell", func(t *testing.T) {
		e := New(Options{Shell: "/nonexistent/sh"})

		err := e.Shell(context.Background(), "true")
		assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
		_, hasExit := errors.GetErrorDetails(err)["exit_code"]
		assert.False(t, hasExit)
	})

	t.Run("context deadline", func(t *testing.T) {
		e, _, _ := newTestExecutor()
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := e.Shell(ctx, "sleep 5")
		assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
	})
}

func TestShellLogsCompletion(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(prev)

	e := New(Options{Logger: &logger, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	require.NoError(t, e.Shell(context.Background(), "true"))
	assert.Contains(t, logs.String(), "Shell command finished")
	assert.Contains(t, logs.String(), `"command":"true"`)
}

func TestOutput(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		e, stdout, _ := newTestExecutor()

		out, err := e.Output(context.Background(), "printf", "%s-%s", "a", "b")
		require.NoError(t, err)
		assert.Equal(t, "a-b", string(out))
		assert.Empty(t, stdout.String())
	})

	t.Run("stderr is attached on failure", func(t *testing.T) {
		e, _, _ := newTestExecutor()

		_, err := e.Output(context.Background(), DefaultShell, "-c", "echo broken pipe >&2; exit 1")
		require.Error(t, err)
		details := errors.GetErrorDetails(err)
		assert.Equal(t, "broken pipe", details["stderr"])
		assert.Equal(t, 1, details["exit_code"])
	})
}

func TestExecutorIsRunner(t *testing.T) {
	var _ Runner = New(Options{})
}
