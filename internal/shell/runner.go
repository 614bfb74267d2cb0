package shell

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/alessio/shellescape"
	"github.com/magefile/mage/sh"
	"github.com/rs/zerolog/log"
)

// ExitCodeTimeout is the exit code reported for commands that were stopped
// because their context deadline passed. It matches the `timeout` CLI tool.
const ExitCodeTimeout = 124

// defaultWaitDelay is how long an interrupted command gets to shut down
// before it is killed.
const defaultWaitDelay = 10 * time.Second

// Result is the outcome of running a command.
type Result struct {
	// Code is the exit code of the command. It is -1 when the command was
	// terminated by a signal.
	Code int
	// Ran indicates the command could be started at all. When false, the
	// executable was most likely not found.
	Ran bool
	Err error
}

// Success returns whether the command ran and exited with status 0.
func (r Result) Success() bool {
	return r.Ran && r.Err == nil && r.Code == 0
}

// Runner runs commands with the given standard streams.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// WaitDelay is the time a command gets to exit after it was interrupted,
	// before it is killed.
	WaitDelay time.Duration
}

// NewRunner returns a Runner that connects commands to the standard streams
// of this process.
func NewRunner() *Runner {
	return &Runner{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		WaitDelay: defaultWaitDelay,
	}
}

// Output runs a short-lived command and returns its trimmed stdout. Stderr is
// discarded. The context is only checked before the command is started.
func (r *Runner) Output(ctx context.Context, name string, args ...string) (string, Result) {
	if err := ctx.Err(); err != nil {
		return "", Result{Code: 1, Err: err}
	}
	logCommand(name, args)

	stdout := bytes.Buffer{}
	ran, err := sh.Exec(nil, &stdout, nil, name, args...)
	result := Result{
		Code: sh.ExitStatus(err),
		Ran:  ran,
		Err:  err,
	}
	return strings.TrimSpace(stdout.String()), result
}

// Run runs a command with the Runner's standard streams, and blocks until it
// exits. When the context is cancelled, the command receives an interrupt
// signal, and is killed if it is still running after WaitDelay.
func (r *Runner) Run(ctx context.Context, name string, args ...string) Result {
	logCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Cancel = func() error {
		log.Debug().Str("cmd", name).Msg("interrupting command")
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = r.WaitDelay

	err := cmd.Run()
	return resultFromError(ctx, err)
}

func resultFromError(ctx context.Context, err error) Result {
	if err == nil {
		return Result{Ran: true}
	}

	result := Result{
		Code: sh.ExitStatus(err),
		Ran:  sh.CmdRan(err),
		Err:  err,
	}

	// sh.CmdRan() only considers a command that exited by itself as "ran",
	// but for the caller a command that was killed by a signal did run.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.Ran = true
		result.Code = exitErr.ExitCode()
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.Code = ExitCodeTimeout
	}
	return result
}

// QuoteCommand returns the command as a string that can be copy-pasted into a shell.
func QuoteCommand(argv ...string) string {
	return shellescape.QuoteCommand(argv)
}

func logCommand(name string, args []string) {
	log.Debug().
		Str("cmd", QuoteCommand(append([]string{name}, args...)...)).
		Msg("running command")
}
