//go:build !windows

package shell

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		command    string
		opts       Options
		wantStdout string
		wantStderr string
	}{
		{name: "stdout", command: "echo hello", wantStdout: "hello\n"},
		{name: "stderr", command: "echo oops 1>&2", wantStderr: "oops\n"},
		{name: "both", command: "printf a; printf b 1>&2", wantStdout: "a", wantStderr: "b"},
		{name: "env", command: "printf \"$TOOLKIT_VAR\"", opts: Options{Env: []string{"TOOLKIT_VAR=set"}}, wantStdout: "set"},
		{name: "stdin", command: "cat", opts: Options{Stdin: strings.NewReader("piped")}, wantStdout: "piped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Run(ctx, tt.command, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStdout, result.Stdout)
			assert.Equal(t, tt.wantStderr, result.Stderr)
		})
	}
}

func TestRunDir(t *testing.T) {
	dir := t.TempDir()
	result, err := Run(context.Background(), "pwd -P", Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), filepath.Base(strings.TrimSpace(result.Stdout)))
}

func TestRunFailure(t *testing.T) {
	result, err := Run(context.Background(), "echo partial; echo bad 1>&2; exit 3", Options{})
	require.Error(t, err)

	var execErr *ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, 3, execErr.ExitCode())
	assert.Equal(t, "partial\n", execErr.Stdout)
	assert.Equal(t, "bad\n", execErr.Stderr)
	assert.Equal(t, execErr.Stdout, result.Stdout)
	assert.Contains(t, err.Error(), "bad")
}

func TestRunMissingShell(t *testing.T) {
	_, err := Run(context.Background(), "echo hi", Options{Shell: "/nonexistent/shell"})
	var execErr *ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, -1, execErr.ExitCode())
}

func TestRunEmptyCommand(t *testing.T) {
	_, err := Run(context.Background(), "  ", Options{})
	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestRunContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := Run(ctx, "sleep 5", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 4*time.Second)
}

type fakeExecutor struct {
	commands []string
}

func (f *fakeExecutor) Run(_ context.Context, command string, _ Options) (Result, error) {
	f.commands = append(f.commands, command)
	return Result{Stdout: "fake"}, nil
}

func TestExecutorInterface(t *testing.T) {
	fake := &fakeExecutor{}
	var executor Executor = fake

	result, err := executor.Run(context.Background(), "anything", Options{})
	require.NoError(t, err)
	assert.Equal(t, "fake", result.Stdout)
	assert.Equal(t, []string{"anything"}, fake.commands)

	var _ Executor = NewExecutor()
}
