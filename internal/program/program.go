// Package program runs the external programs the notebook hands work to:
// editors, pagers, converters and file managers.
package program

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Runner invokes a program and blocks until it exits.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExitError reports a program that ran but exited non-zero.
type ExitError struct {
	Name string
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit status from err, or -1 if err is not an exit.
func ExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}

// Exec runs programs attached to the given streams. Nil streams default to
// the process's own stdin/stdout/stderr so editors get the terminal.
type Exec struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// Run starts name with args and waits for it. There is no timeout.
func (e *Exec) Run(ctx context.Context, name string, args ...string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("no program to run")
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = e.stdin()
	cmd.Stdout = e.stdout()
	cmd.Stderr = e.stderr()

	e.logger().Debug("running program", slog.String("name", name), slog.Any("args", args))

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Name: name, Code: exitErr.ExitCode(), Err: err}
	}
	return fmt.Errorf("run %s: %w", name, err)
}

func (e *Exec) stdin() io.Reader {
	if e.Stdin != nil {
		return e.Stdin
	}
	return os.Stdin
}

func (e *Exec) stdout() io.Writer {
	if e.Stdout != nil {
		return e.Stdout
	}
	return os.Stdout
}

func (e *Exec) stderr() io.Writer {
	if e.Stderr != nil {
		return e.Stderr
	}
	return os.Stderr
}

func (e *Exec) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}
