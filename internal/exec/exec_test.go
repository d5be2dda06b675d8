package exec

import (
	"context"
	"strings"
	"testing"
)

func TestRunCapturesOutput(t *testing.T) {
	result := RunSimple(context.Background(), "sh", "-c", "echo out; echo err >&2")
	if result.Err != nil {
		t.Fatalf("RunSimple() error = %v", result.Err)
	}
	if result.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
	if strings.TrimSpace(result.Stdout) != "out" {
		t.Errorf("Stdout = %q, want %q", result.Stdout, "out")
	}
	if strings.TrimSpace(result.Stderr) != "err" {
		t.Errorf("Stderr = %q, want %q", result.Stderr, "err")
	}
}

func TestRunReportsExitCode(t *testing.T) {
	result := RunSimple(context.Background(), "sh", "-c", "exit 3")
	if result.Err == nil {
		t.Fatal("RunSimple() expected an error for a non-zero exit")
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
}

func TestRunMissingCommand(t *testing.T) {
	result := RunSimple(context.Background(), "glaze-test-no-such-command")
	if result.Err == nil {
		t.Fatal("RunSimple() expected an error for a missing command")
	}
	if result.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", result.ExitCode)
	}
}

func TestCheckCommand(t *testing.T) {
	if !CheckCommand("sh") {
		t.Error("CheckCommand(sh) = false, want true")
	}
	if CheckCommand("glaze-test-no-such-command") {
		t.Error("CheckCommand() = true for a missing command")
	}
}

func TestFormatCommand(t *testing.T) {
	got := FormatCommand("mv", []string{"/tmp/theme", "/usr/share/ghostty/themes/theme"})
	want := "mv /tmp/theme /usr/share/ghostty/themes/theme"
	if got != want {
		t.Errorf("FormatCommand() = %q, want %q", got, want)
	}
}
