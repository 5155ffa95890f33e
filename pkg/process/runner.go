// Package process runs external commands and turns their exit status into
// structured errors.
package process

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"
	"time"
	"unicode"

	brerrors "github.com/arthur-debert/batch-rename/pkg/errors"
	"github.com/arthur-debert/batch-rename/pkg/logging"
	"github.com/rs/zerolog"
)

// waitDelay bounds how long Wait keeps draining pipes after a canceled
// child was killed; grandchildren may hold stderr open.
const waitDelay = time.Second

// Command describes one invocation of an external program
type Command struct {
	Program string
	Args    []string
	// Dir is the working directory of the child process
	Dir string
	// CaptureStdout keeps the child's stdout in Output.Stdout; otherwise it is discarded
	CaptureStdout bool
}

// String formats the program and its arguments joined by single spaces
func (c Command) String() string {
	return FormatCommand(c.Program, c.Args)
}

// Output holds what a finished command produced
type Output struct {
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration
}

// Runner executes commands
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Output, error)
}

// ExecRunner runs commands with os/exec. Stdin of the child is always
// /dev/null so that it never competes with the interactive prompt.
type ExecRunner struct {
	// Timeout bounds each invocation; zero disables it
	Timeout time.Duration
	logger  zerolog.Logger
}

// NewExecRunner creates a runner with an optional per-command timeout
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{
		Timeout: timeout,
		logger:  logging.GetLogger("process"),
	}
}

// Run spawns cmd and waits for it. Spawn problems yield a SPAWN error, a
// non-zero exit or signal termination yields COMMAND_FAILURE.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (*Output, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	logging.LogCommand(r.logger, cmd.Program, cmd.Args, cmd.Dir)

	c := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	c.Dir = cmd.Dir
	c.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	if cmd.CaptureStdout {
		c.Stdout = &stdout
	}
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	out := &Output{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: time.Since(start),
	}

	if err == nil {
		r.logger.Trace().
			Str("command", cmd.String()).
			Dur("duration", out.Duration).
			Msg("Command succeeded")
		return out, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return out, brerrors.Wrapf(ctxErr, brerrors.ErrCanceled, "`%s` was interrupted", cmd.String())
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return out, brerrors.Wrapf(err, brerrors.ErrSpawn, "failed to run `%s`", cmd.String()).
			WithDetail("dir", cmd.Dir)
	}

	failure := Evaluate(cmd, exitErr.ExitCode(), out.Stderr)
	r.logger.Debug().
		Str("command", cmd.String()).
		Int("exit_code", exitErr.ExitCode()).
		Str("stderr", string(out.Stderr)).
		Msg("Command failed")
	return out, failure
}

// Evaluate builds the COMMAND_FAILURE error for a finished process. A
// negative exitCode means the process was terminated by a signal.
func Evaluate(cmd Command, exitCode int, stderr []byte) *brerrors.Error {
	var msg strings.Builder
	msg.WriteString("`")
	msg.WriteString(cmd.String())
	msg.WriteString("` reported non-zero exit-status")

	if exitCode >= 0 {
		msg.WriteString(" (")
		msg.WriteString(strconv.Itoa(exitCode))
		msg.WriteString(")")
	} else {
		msg.WriteString(" (terminated by signal)")
	}

	trimmed := strings.TrimRightFunc(string(stderr), unicode.IsSpace)
	if trimmed != "" {
		msg.WriteString(": ")
		msg.WriteString(trimmed)
	}

	return brerrors.New(brerrors.ErrCommandFailure, msg.String()).
		WithDetail("command", cmd.String()).
		WithDetail("exit_code", exitCode).
		WithDetail("stderr", trimmed)
}

// FormatCommand joins a program and its arguments with single spaces
func FormatCommand(program string, args []string) string {
	if len(args) == 0 {
		return program
	}
	return program + " " + strings.Join(args, " ")
}
