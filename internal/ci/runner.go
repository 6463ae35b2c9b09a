// Package ci sequences the build and test commands used by the repository's
// continuous-integration entry points. Each command is echoed to stdout
// before it runs; the first non-zero exit status aborts the run and becomes
// the program's own exit status.
package ci

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Command is an ordered list of literal argv tokens.
type Command []string

// String renders the shell-style audit line for the command.
func (c Command) String() string {
	return strings.Join(c, " ")
}

// Runner executes commands in order, echoing each one before it starts.
type Runner struct {
	out      io.Writer
	errOut   io.Writer
	childOut io.Writer
	childErr io.Writer
}

// Option configures the runner.
type Option func(*Runner)

// WithOutput redirects the audit lines. Tests use a buffer.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithChildOutput redirects the spawned commands' stdout and stderr.
func WithChildOutput(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.childOut = stdout
		r.childErr = stderr
	}
}

// New creates a runner writing audit lines to stdout and passing the
// children the process's own stdout and stderr.
func New(opts ...Option) *Runner {
	r := &Runner{
		out:      os.Stdout,
		errOut:   os.Stderr,
		childOut: os.Stdout,
		childErr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run echoes cmd, spawns it, and blocks until it exits.
// Returns the child's exit status: 0 on success, the reported code on
// failure, or 1 if the process could not be started at all.
func (r *Runner) Run(ctx context.Context, cmd Command) int {
	r.echo(cmd)
	if len(cmd) == 0 {
		fmt.Fprintln(r.errOut, "ci: empty command")
		return 1
	}

	c := exec.CommandContext(ctx, cmd[0], cmd[1:]...)
	c.Stdout = r.childOut
	c.Stderr = r.childErr

	err := c.Run()
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	// The command never started (e.g. binary not found).
	fmt.Fprintln(r.errOut, "ci:", err)
	return 1
}

// RunAll runs the commands in order and stops at the first non-zero exit
// status, returning it. Returns 0 when every command succeeds.
func (r *Runner) RunAll(ctx context.Context, cmds []Command) int {
	for _, cmd := range cmds {
		if status := r.Run(ctx, cmd); status != 0 {
			return status
		}
	}
	return 0
}

// Main is the shared body of the CI entry points: run the hardcoded command
// list and exit with the first failing command's status.
func Main(cmds []Command) {
	r := New()
	os.Exit(r.RunAll(context.Background(), cmds))
}

// echo prints the audit line, bold when stdout is a terminal. The plain
// text is the joined tokens either way.
func (r *Runner) echo(cmd Command) {
	line := cmd.String()
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		line = termenv.String(line).Bold().String()
	}
	fmt.Fprintln(r.out, line)
}
