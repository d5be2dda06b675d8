package install

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	glexec "github.com/vibejam/glaze/internal/exec"
)

type fakeRunner struct {
	calls  [][]string
	failOn string
}

func (r *fakeRunner) Run(_ context.Context, name string, args []string) *glexec.Result {
	r.calls = append(r.calls, append([]string{name}, args...))
	res := &glexec.Result{Command: name, Args: args}
	if name == r.failOn {
		res.ExitCode = 1
		res.Err = errors.New("exit status 1")
	}
	return res
}

func denyWrite(string, []byte, os.FileMode) error {
	return &fs.PathError{Op: "open", Path: "themes", Err: fs.ErrPermission}
}

func allowMkdir(string, os.FileMode) error { return nil }

func TestInstallPlainWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "themes")
	runner := &fakeRunner{}
	ins := New(dir, runner, nil)
	ins.Consent = func(string) bool {
		t.Fatal("consent asked for a writable directory")
		return false
	}

	report, err := ins.Install(context.Background(), "cyberpunk", "palette = 0=#45475a\n")
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if report.State != StateDone {
		t.Errorf("State = %v, want %v", report.State, StateDone)
	}
	if report.Elevated {
		t.Error("Elevated = true for a plain write")
	}
	if len(runner.calls) != 0 {
		t.Errorf("runner was invoked: %v", runner.calls)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cyberpunk"))
	if err != nil {
		t.Fatalf("reading installed theme: %v", err)
	}
	if string(data) != "palette = 0=#45475a\n" {
		t.Errorf("installed content = %q", data)
	}
}

func TestInstallDeclinedConsentAborts(t *testing.T) {
	runner := &fakeRunner{}
	ins := New("/usr/share/ghostty/themes", runner, nil)
	ins.mkdirAll = allowMkdir
	ins.writeFile = denyWrite
	ins.Consent = func(string) bool { return false }

	report, err := ins.Install(context.Background(), "cyberpunk", "x\n")
	if err != nil {
		t.Fatalf("Install() error = %v, want nil for a decline", err)
	}
	if report.State != StateAborted {
		t.Errorf("State = %v, want %v", report.State, StateAborted)
	}
	if len(runner.calls) != 0 {
		t.Errorf("runner was invoked after a decline: %v", runner.calls)
	}
}

func TestInstallNilConsentNeverEscalates(t *testing.T) {
	runner := &fakeRunner{}
	ins := New("/usr/share/ghostty/themes", runner, nil)
	ins.mkdirAll = allowMkdir
	ins.writeFile = denyWrite

	report, err := ins.Install(context.Background(), "cyberpunk", "x\n")
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if report.State != StateAborted {
		t.Errorf("State = %v, want %v", report.State, StateAborted)
	}
	if len(runner.calls) != 0 {
		t.Errorf("runner was invoked without consent: %v", runner.calls)
	}
}

func TestInstallEscalates(t *testing.T) {
	dir := "/usr/share/ghostty/themes"
	runner := &fakeRunner{}
	ins := New(dir, runner, nil)
	ins.mkdirAll = allowMkdir
	ins.writeFile = denyWrite
	asked := 0
	ins.Consent = func(target string) bool {
		asked++
		if target != filepath.Join(dir, "cyberpunk") {
			t.Errorf("consent target = %q", target)
		}
		return true
	}

	content := "palette = 0=#45475a\nbackground = #1e1e2e\n"
	report, err := ins.Install(context.Background(), "cyberpunk", content)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if asked != 1 {
		t.Errorf("consent asked %d times, want once", asked)
	}
	if report.State != StateDone || !report.Elevated {
		t.Errorf("report = %+v, want elevated done", report)
	}

	if len(runner.calls) != 2 {
		t.Fatalf("runner calls = %v, want mkdir then mv", runner.calls)
	}
	mkdir := runner.calls[0]
	if mkdir[0] != "mkdir" || mkdir[1] != "-p" || mkdir[2] != dir {
		t.Errorf("first elevated call = %v, want mkdir -p %s", mkdir, dir)
	}
	mv := runner.calls[1]
	if mv[0] != "mv" || mv[2] != filepath.Join(dir, "cyberpunk") {
		t.Errorf("second elevated call = %v", mv)
	}

	// The fake never moved the staged file, so its content is still
	// there to inspect.
	tmpPath := mv[1]
	defer os.Remove(tmpPath)
	data, err := os.ReadFile(tmpPath)
	if err != nil {
		t.Fatalf("reading staged file: %v", err)
	}
	if string(data) != content {
		t.Errorf("staged content = %q, want %q", data, content)
	}
	info, err := os.Stat(tmpPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("staged file mode = %v, want 0644", info.Mode().Perm())
	}
}

func TestInstallElevatedMkdirFails(t *testing.T) {
	runner := &fakeRunner{failOn: "mkdir"}
	ins := New("/usr/share/ghostty/themes", runner, nil)
	ins.mkdirAll = allowMkdir
	ins.writeFile = denyWrite
	ins.Consent = func(string) bool { return true }

	report, err := ins.Install(context.Background(), "cyberpunk", "x\n")
	if err == nil {
		t.Fatal("Install() = nil error, want the mkdir failure")
	}
	if report.State != StateFailed {
		t.Errorf("State = %v, want %v", report.State, StateFailed)
	}
	if len(runner.calls) != 1 {
		t.Errorf("runner calls = %v, want mkdir only", runner.calls)
	}
}

func TestInstallElevatedMvFailureRemovesStagedFile(t *testing.T) {
	runner := &fakeRunner{failOn: "mv"}
	ins := New("/usr/share/ghostty/themes", runner, nil)
	ins.mkdirAll = allowMkdir
	ins.writeFile = denyWrite
	ins.Consent = func(string) bool { return true }

	report, err := ins.Install(context.Background(), "cyberpunk", "x\n")
	if err == nil {
		t.Fatal("Install() = nil error, want the mv failure")
	}
	if report.State != StateFailed {
		t.Errorf("State = %v, want %v", report.State, StateFailed)
	}

	if len(runner.calls) != 2 {
		t.Fatalf("runner calls = %v", runner.calls)
	}
	tmpPath := runner.calls[1][1]
	if _, err := os.Stat(tmpPath); !errors.Is(err, fs.ErrNotExist) {
		os.Remove(tmpPath)
		t.Errorf("staged file %s was not cleaned up", tmpPath)
	}
}

func TestInstallOtherWriteErrorFailsWithoutConsent(t *testing.T) {
	runner := &fakeRunner{}
	ins := New("/usr/share/ghostty/themes", runner, nil)
	ins.mkdirAll = allowMkdir
	ins.writeFile = func(string, []byte, os.FileMode) error {
		return errors.New("no space left on device")
	}
	ins.Consent = func(string) bool {
		t.Fatal("consent asked for a non-permission failure")
		return false
	}

	report, err := ins.Install(context.Background(), "cyberpunk", "x\n")
	if err == nil {
		t.Fatal("Install() = nil error, want the write failure")
	}
	if report.State != StateFailed {
		t.Errorf("State = %v, want %v", report.State, StateFailed)
	}
	if len(runner.calls) != 0 {
		t.Errorf("runner was invoked: %v", runner.calls)
	}
}

func TestInstallMkdirPermissionTriggersConsent(t *testing.T) {
	runner := &fakeRunner{}
	ins := New("/usr/share/ghostty/themes", runner, nil)
	ins.mkdirAll = func(string, os.FileMode) error {
		return &fs.PathError{Op: "mkdir", Path: "themes", Err: fs.ErrPermission}
	}
	ins.Consent = func(string) bool { return false }

	report, err := ins.Install(context.Background(), "cyberpunk", "x\n")
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if report.State != StateAborted {
		t.Errorf("State = %v, want %v", report.State, StateAborted)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateAttempt, "attempt"},
		{StateAskConsent, "ask-consent"},
		{StateEscalate, "escalate"},
		{StateDone, "done"},
		{StateAborted, "aborted"},
		{StateFailed, "failed"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
