// Package install places theme files into Ghostty's themes directory,
// escalating to root when the plain write is refused.
package install

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	glexec "github.com/vibejam/glaze/internal/exec"
)

// State is a step in the install state machine.
type State int

const (
	// StateAttempt writes the file directly as the current user.
	StateAttempt State = iota
	// StateAskConsent asks the user whether root may be used.
	StateAskConsent
	// StateEscalate re-runs the write through the elevated runner.
	StateEscalate
	// StateDone means the theme landed in the themes directory.
	StateDone
	// StateAborted means the user declined escalation.
	StateAborted
	// StateFailed means a write or elevated command failed.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateAttempt:
		return "attempt"
	case StateAskConsent:
		return "ask-consent"
	case StateEscalate:
		return "escalate"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Runner executes the commands escalation needs. Implementations report
// the outcome through the Result; the exit code alone decides success.
type Runner interface {
	Run(ctx context.Context, name string, args []string) *glexec.Result
}

// ElevatedRunner wraps commands with sudo or pkexec and keeps the
// terminal attached so a password prompt can be answered.
type ElevatedRunner struct {
	Logger *log.Logger
}

func (r ElevatedRunner) Run(ctx context.Context, name string, args []string) *glexec.Result {
	privName, privArgs := glexec.WithPrivilege(name, args...)
	return glexec.RunAttached(ctx, privName, privArgs, r.Logger)
}

// Installer writes a theme into one themes directory.
type Installer struct {
	Dir    string
	Runner Runner
	Logger *log.Logger

	// Consent is asked exactly once, before escalating. A nil Consent
	// counts as a decline so non-interactive runs never reach sudo.
	Consent func(target string) bool

	mkdirAll  func(string, os.FileMode) error
	writeFile func(string, []byte, os.FileMode) error
}

// Report describes where an install ended up.
type Report struct {
	Path     string
	State    State
	Elevated bool
}

// New returns an installer that writes into dir, running mkdir and mv
// through runner when escalation is needed.
func New(dir string, runner Runner, logger *log.Logger) *Installer {
	return &Installer{
		Dir:       dir,
		Runner:    runner,
		Logger:    logger,
		mkdirAll:  os.MkdirAll,
		writeFile: os.WriteFile,
	}
}

// Install writes content to <dir>/<name>, walking the state machine:
//
//	Attempt    -> Done        plain write succeeded
//	Attempt    -> AskConsent  write refused with a permission error
//	Attempt    -> Failed      any other write error
//	AskConsent -> Escalate    user agreed to use root
//	AskConsent -> Aborted     user declined
//	Escalate   -> Done        elevated mkdir and mv both exited zero
//	Escalate   -> Failed      an elevated command failed
//
// Aborted is a normal outcome, not an error; the report carries the
// terminal state either way.
func (ins *Installer) Install(ctx context.Context, name, content string) (*Report, error) {
	if ins.Dir == "" {
		return nil, errors.New("install: no themes directory configured")
	}

	target := filepath.Join(ins.Dir, name)
	report := &Report{Path: target}

	var failure error
	state := StateAttempt
	for {
		report.State = state
		if ins.Logger != nil {
			ins.Logger.Debug("install state", "state", state, "path", target)
		}

		switch state {
		case StateAttempt:
			err := ins.writePlain(target, content)
			switch {
			case err == nil:
				state = StateDone
			case errors.Is(err, fs.ErrPermission):
				state = StateAskConsent
			default:
				failure = fmt.Errorf("writing %s: %w", target, err)
				state = StateFailed
			}

		case StateAskConsent:
			if ins.Consent != nil && ins.Consent(target) {
				state = StateEscalate
			} else {
				state = StateAborted
			}

		case StateEscalate:
			if err := ins.escalate(ctx, target, content); err != nil {
				failure = err
				state = StateFailed
			} else {
				report.Elevated = true
				state = StateDone
			}

		case StateDone, StateAborted:
			return report, nil
		case StateFailed:
			return report, failure
		}
	}
}

func (ins *Installer) writePlain(target, content string) error {
	if err := ins.mkdirAll(ins.Dir, 0o755); err != nil {
		return err
	}
	return ins.writeFile(target, []byte(content), 0o644)
}

// escalate creates the themes directory as root, stages the content in a
// temp file the current user can write, and moves it into place as root.
func (ins *Installer) escalate(ctx context.Context, target, content string) error {
	if err := ins.runElevated(ctx, "mkdir", "-p", ins.Dir); err != nil {
		return fmt.Errorf("creating %s as root: %w", ins.Dir, err)
	}

	tmp, err := os.CreateTemp("", "glaze-theme-*.conf")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	// world-readable once it lands in the themes dir
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting temp file mode: %w", err)
	}

	if err := ins.runElevated(ctx, "mv", tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("moving theme into %s as root: %w", ins.Dir, err)
	}
	return nil
}

func (ins *Installer) runElevated(ctx context.Context, name string, args ...string) error {
	res := ins.Runner.Run(ctx, name, args)
	if res.Err == nil {
		return nil
	}
	if res.ExitCode > 0 {
		return fmt.Errorf("%s exited with status %d", glexec.FormatCommand(name, args), res.ExitCode)
	}
	return fmt.Errorf("%s: %w", glexec.FormatCommand(name, args), res.Err)
}
