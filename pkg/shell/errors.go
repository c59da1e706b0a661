package shell

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrEmptyCommand is returned when the command string is blank.
var ErrEmptyCommand = errors.New("empty command")

// ExecError reports a failed command together with its captured output.
type ExecError struct {
	Command string
	Err     error
	Stdout  string
	Stderr  string
}

func (e *ExecError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command failed: %v: %s", e.Err, e.Stderr)
	}
	return fmt.Sprintf("command failed: %v", e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code, or -1 if the command did not exit
// normally (failed to start, killed by a signal).
func (e *ExecError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
