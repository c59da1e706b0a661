// Package shell runs command strings through the platform shell and captures
// their output.
//
// Callers are responsible for sanitizing command strings built from untrusted
// input; the command is handed to the shell verbatim.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

const waitDelay = 500 * time.Millisecond

// Options configures a single Run.
type Options struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env is appended to the current process environment.
	Env []string
	// Shell overrides the shell binary. Empty means /bin/sh, or cmd on windows.
	Shell string
	// Stdin is connected to the command's standard input when non-nil.
	Stdin io.Reader
}

// Result holds the captured output of a successful command.
type Result struct {
	Stdout string
	Stderr string
}

// Executor runs commands. The OS implementation is returned by NewExecutor;
// tests substitute fakes.
type Executor interface {
	Run(ctx context.Context, command string, opts Options) (Result, error)
}

// OSExecutor runs commands as child processes.
type OSExecutor struct{}

// NewExecutor returns the OS-backed executor.
func NewExecutor() *OSExecutor {
	return &OSExecutor{}
}

// Run executes command via the shell and returns its stdout and stderr.
// A non-zero exit, a failure to start, or context cancellation yields an
// *ExecError carrying whatever output was captured.
func (OSExecutor) Run(ctx context.Context, command string, opts Options) (Result, error) {
	if strings.TrimSpace(command) == "" {
		return Result{}, ErrEmptyCommand
	}

	name, flag := shellFor(opts.Shell)
	cmd := exec.CommandContext(ctx, name, flag, command)
	cmd.Dir = opts.Dir
	// Grandchildren may hold the output pipes open after the shell is killed.
	cmd.WaitDelay = waitDelay
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}
	if opts.Stdin != nil {
		cmd.Stdin = opts.Stdin
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(ctxErr, err)
		}
		return result, &ExecError{
			Command: command,
			Err:     err,
			Stdout:  result.Stdout,
			Stderr:  result.Stderr,
		}
	}
	return result, nil
}

func shellFor(override string) (name, flag string) {
	if runtime.GOOS == "windows" {
		if override == "" {
			override = "cmd"
		}
		return override, "/C"
	}
	if override == "" {
		override = "/bin/sh"
	}
	return override, "-c"
}

var defaultExecutor Executor = NewExecutor()

// Run executes command with the default OS executor.
func Run(ctx context.Context, command string, opts Options) (Result, error) {
	return defaultExecutor.Run(ctx, command, opts)
}
