package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/vibejam/glaze/internal/install"
	"github.com/vibejam/glaze/internal/library"
	"github.com/vibejam/glaze/internal/theme"
	"github.com/vibejam/glaze/internal/ui"
)

func openLibrary() (*library.Library, error) {
	dir, err := cfg.ResolvedLibraryDir()
	if err != nil {
		return nil, err
	}
	return library.New(dir), nil
}

// resolveTheme loads a theme from a positional ref: a JSON or conf file
// path, a saved library name, or, when ref is empty, an interactive pick
// from the library.
func resolveTheme(ref string) (string, *theme.Document, error) {
	if ref == "" {
		return pickLibraryTheme()
	}

	if data, err := os.ReadFile(ref); err == nil {
		name := theme.NormalizeName(strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref)))
		if strings.EqualFold(filepath.Ext(ref), ".json") {
			doc, err := theme.Parse(data)
			if err != nil {
				return "", nil, fmt.Errorf("parsing %s: %w", ref, err)
			}
			return name, doc, nil
		}
		doc, err := theme.ParseConf(data)
		if err != nil {
			return "", nil, fmt.Errorf("parsing %s: %w", ref, err)
		}
		return name, doc, nil
	}

	lib, err := openLibrary()
	if err != nil {
		return "", nil, err
	}
	name := theme.NormalizeName(ref)
	doc, err := lib.Load(name)
	if err != nil {
		return "", nil, fmt.Errorf("no file or saved theme named %q: %w", ref, err)
	}
	return name, doc, nil
}

func pickLibraryTheme() (string, *theme.Document, error) {
	lib, err := openLibrary()
	if err != nil {
		return "", nil, err
	}
	entries, err := lib.List()
	if err != nil {
		return "", nil, err
	}
	if len(entries) == 0 {
		return "", nil, errors.New("the library is empty; run glaze generate first")
	}
	if !ui.IsInteractiveTerminal() {
		return "", nil, errors.New("theme name or file required")
	}

	options := make([]huh.Option[string], 0, len(entries))
	for _, entry := range entries {
		label := entry.Name
		if entry.Keyword != "" && entry.Keyword != entry.Name {
			label = fmt.Sprintf("%s (%s)", entry.Name, entry.Keyword)
		}
		options = append(options, huh.NewOption(label, entry.Name))
	}

	var name string
	err = huh.NewSelect[string]().
		Title("Saved Themes").
		Description("Pick a theme from the library").
		Options(options...).
		Value(&name).
		WithTheme(ui.HuhTheme()).
		Run()
	if err != nil {
		return "", nil, err
	}

	doc, err := lib.Load(name)
	if err != nil {
		return "", nil, err
	}
	return name, doc, nil
}

// askRootConsent is the consent prompt for the install state machine. It
// declines on non-interactive terminals so scripted runs never hit sudo.
func askRootConsent(target string) bool {
	if !ui.IsInteractiveTerminal() {
		logger.Warn("themes directory needs root and no terminal is attached; skipping install", "path", target)
		return false
	}

	agreed := false
	err := huh.NewConfirm().
		Title("Install as root?").
		Description(fmt.Sprintf("Writing %s needs root privileges.", target)).
		Affirmative("Yes, use sudo").
		Negative("No, skip install").
		Value(&agreed).
		WithTheme(ui.HuhTheme()).
		Run()
	if err != nil {
		return false
	}
	return agreed
}

// installTheme converts doc and walks it through the install state
// machine, reporting the outcome. Failures are reported, not returned:
// by the time we are installing, the theme is already saved locally.
func installTheme(ctx context.Context, name string, doc *theme.Document) {
	conf, missing := doc.Conf()
	for _, index := range missing {
		logger.Warn("palette slot missing from theme", "index", index)
	}

	dir, err := cfg.ResolvedThemesDir()
	if err != nil {
		logger.Error("cannot resolve the Ghostty themes directory", "error", err)
		return
	}

	installer := install.New(dir, install.ElevatedRunner{Logger: logger}, logger)
	installer.Consent = askRootConsent

	report, err := installer.Install(ctx, name, conf)
	if err != nil {
		logger.Error("install failed", "error", err)
		fmt.Println(ui.ErrorBox.Render("The theme was not installed.\n\n" + err.Error()))
		return
	}

	switch report.State {
	case install.StateDone:
		summary := fmt.Sprintf("Theme installed!\n\nFile:  %s\nUsage: theme = %s", report.Path, name)
		if report.Elevated {
			summary += "\n\nInstalled with root privileges."
		}
		fmt.Println(ui.SuccessBox.Render(summary))
	case install.StateAborted:
		logger.Info("install skipped", "path", report.Path)
		fmt.Println(ui.InfoBox.Render("Install skipped. The theme is still saved in your library."))
	}
}
