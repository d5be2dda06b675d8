package validate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/vibejam/glaze/internal/config"
	glexec "github.com/vibejam/glaze/internal/exec"
	"github.com/vibejam/glaze/internal/library"
)

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

// Ghostty checks that Ghostty and its themes directory are reachable.
// A read-only themes directory is a warning, not an error: installs offer
// escalation for exactly that case.
func Ghostty(ctx context.Context, cfg *config.Config) Result {
	result := Result{}

	if glexec.CheckCommand("ghostty") {
		detail := "found in PATH"
		if run := glexec.RunSimple(ctx, "ghostty", "+version"); run.Err == nil {
			if version := firstLine(run.Stdout); version != "" {
				detail = version
			}
		}
		result.Add(StatusSuccess, "ghostty", detail)
	} else {
		result.Add(StatusWarning, "ghostty", "not found in PATH")
	}

	dir, err := cfg.ResolvedThemesDir()
	if err != nil {
		result.Add(StatusError, "themes directory", err.Error())
		return result
	}

	if _, err := os.Stat(dir); err != nil {
		result.Add(StatusPending, "themes directory", dir+" (created on first install)")
		return result
	}

	probe, err := os.CreateTemp(dir, ".glaze-doctor-*")
	switch {
	case err == nil:
		probe.Close()
		os.Remove(probe.Name())
		result.Add(StatusSuccess, "themes directory", dir)
	case errors.Is(err, fs.ErrPermission):
		result.Add(StatusWarning, "themes directory", dir+" (root needed to install)")
	default:
		result.Add(StatusError, "themes directory", err.Error())
	}
	return result
}

// Credentials checks that an API key is available, without printing it.
func Credentials(_ context.Context, cfg *config.Config) Result {
	result := Result{}

	envFile, err := cfg.ResolvedEnvFile()
	if err != nil {
		envFile = cfg.EnvFile
	}
	if _, err := config.LoadAPIKey(envFile); err != nil {
		result.Add(StatusError, "OPENAI_API_KEY", err.Error())
		return result
	}
	result.Add(StatusSuccess, "OPENAI_API_KEY", "set")
	return result
}

// Escalation checks whether a root helper is available for installs into
// a read-only themes directory.
func Escalation(_ context.Context) Result {
	result := Result{}

	if os.Geteuid() == 0 {
		result.Add(StatusSuccess, "privileges", "running as root")
		return result
	}
	for _, helper := range []string{"sudo", "pkexec"} {
		if glexec.CheckCommand(helper) {
			result.Add(StatusSuccess, "privileges", helper+" available")
			return result
		}
	}
	result.Add(StatusWarning, "privileges", "no sudo or pkexec in PATH; root installs unavailable")
	return result
}

// Library checks the local theme library directory.
func Library(_ context.Context, cfg *config.Config) Result {
	result := Result{}

	dir, err := cfg.ResolvedLibraryDir()
	if err != nil {
		result.Add(StatusError, "library", err.Error())
		return result
	}

	entries, err := library.New(dir).List()
	switch {
	case err != nil:
		result.Add(StatusError, "library", err.Error())
	case len(entries) > 0:
		result.Add(StatusSuccess, "library", fmt.Sprintf("%s (%d themes)", dir, len(entries)))
	default:
		result.Add(StatusPending, "library", dir+" (no themes yet)")
	}
	return result
}
