// Package exec runs the external commands glaze needs: version probes
// and the elevated mkdir/mv pair behind theme installs.
package exec

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Result records one command run. ExitCode is -1 when the command never
// started (not found, context canceled).
type Result struct {
	Command  string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
	Err      error
}

// Options shape how a command is run.
type Options struct {
	// Timeout kills the command when positive; zero means wait forever.
	Timeout time.Duration
	// Stdin is wired through when set, so helpers can prompt.
	Stdin io.Reader
	// StreamStdio mirrors output to the terminal while capturing it.
	StreamStdio bool
	Logger      *log.Logger
}

// DefaultOptions capture output quietly with a generous timeout.
func DefaultOptions() Options {
	return Options{Timeout: 5 * time.Minute}
}

// Run executes name with args and always returns a Result, failed or not.
func Run(ctx context.Context, name string, args []string, opts Options) *Result {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = opts.Stdin
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	if opts.StreamStdio {
		cmd.Stdout = io.MultiWriter(os.Stdout, &stdout)
		cmd.Stderr = io.MultiWriter(os.Stderr, &stderr)
	}

	if opts.Logger != nil {
		opts.Logger.Debug("running", "cmd", FormatCommand(name, args))
	}

	started := time.Now()
	err := cmd.Run()

	res := &Result{
		Command:  name,
		Args:     args,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(started),
		Err:      err,
	}
	if err != nil {
		res.ExitCode = -1
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			res.ExitCode = exit.ExitCode()
		}
	}

	if opts.Logger != nil {
		opts.Logger.Debug("finished", "cmd", name, "exit", res.ExitCode, "in", res.Duration)
	}
	return res
}

// RunSimple captures a command's output with default options.
func RunSimple(ctx context.Context, name string, args ...string) *Result {
	return Run(ctx, name, args, DefaultOptions())
}

// RunAttached wires the command to the caller's terminal. Stdin is
// inherited so privilege helpers can ask for a password, and no timeout
// applies: the prompt may sit as long as the operator needs.
func RunAttached(ctx context.Context, name string, args []string, logger *log.Logger) *Result {
	return Run(ctx, name, args, Options{
		Stdin:       os.Stdin,
		StreamStdio: true,
		Logger:      logger,
	})
}

// WithPrivilege rewrites a command to run as root: a no-op for root
// itself, sudo when present, pkexec as the fallback. With no helper
// around the command is returned untouched and fails on its own.
func WithPrivilege(name string, args ...string) (string, []string) {
	if os.Geteuid() == 0 {
		return name, args
	}
	for _, helper := range []string{"sudo", "pkexec"} {
		if CheckCommand(helper) {
			return helper, append([]string{name}, args...)
		}
	}
	return name, args
}

// CheckCommand reports whether name is on PATH.
func CheckCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// FormatCommand renders a command line for logs and errors.
func FormatCommand(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
