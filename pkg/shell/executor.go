package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Executor runs statements that are not builtins.
type Executor interface {
	// Execute runs a statement and returns a non-nil error if it fails.
	Execute(ctx context.Context, stmt string) error
}

// ProcessExecutor runs each statement as `Shell -c statement`.
type ProcessExecutor struct {
	Shell string
	// Positional arguments passed to the shell after the statement; the first
	// one becomes $0.
	Args []string

	// A nil Stdin reads from the null device.
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// ExitError is returned by ProcessExecutor when a statement exits with a
// non-zero status.
type ExitError struct {
	Stmt   string
	Status int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%q exited with status %d", e.Stmt, e.Status)
}

func (e *ProcessExecutor) Execute(ctx context.Context, stmt string) error {
	args := append([]string{"-c", stmt}, e.Args...)
	cmd := exec.CommandContext(ctx, e.Shell, args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{stmt, exitErr.ExitCode()}
	} else if err != nil {
		return fmt.Errorf("cannot run %q: %w", stmt, err)
	}
	return nil
}
