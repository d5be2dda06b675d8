package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/vibejam/glaze/internal/config"
	"github.com/vibejam/glaze/internal/ui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Configure the model, paths, and display preferences",
	RunE:  runSettings,
}

// runSettings edits a draft copy of the config, section by section, and
// only writes the file when the user picks Save & Exit.
func runSettings(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	draft := *cfg
	if draft.UI.Theme == "" {
		draft.UI.Theme = "glaze"
	}

	ui.StartScreen("SETTINGS", "Select a settings section to edit")

	sections := []ui.MenuItem{
		{ID: "model", TitleText: "Model & API", Details: "Model name, API base URL, and credential file"},
		{ID: "paths", TitleText: "Paths", Details: "Library and themes directories"},
		{ID: "display", TitleText: "Display", Details: "TUI palette, layout density, and color mode"},
		{ID: "save", TitleText: "Save & Exit", Details: "Write updates to config.yaml"},
		{ID: "exit", TitleText: "Exit", Details: "Leave without saving"},
	}

	dirty := false
	for {
		choice, err := ui.RunMenuWithOptions("SETTINGS", "Select a settings section", sections,
			ui.WithBackNavigation("Back"))
		if err != nil {
			return err
		}

		var edit func(*config.Config) error
		switch choice {
		case "model":
			edit = editModelSection
		case "paths":
			edit = editPathsSection
		case "display":
			edit = editDisplaySection
		case "save":
			if !dirty {
				return nil
			}
			return saveSettings(&draft)
		default:
			return nil
		}

		switch err := edit(&draft); {
		case errors.Is(err, huh.ErrUserAborted):
		case err != nil:
			return err
		default:
			dirty = true
		}
	}
}

func editModelSection(draft *config.Config) error {
	return settingsForm(
		huh.NewInput().
			Title("Model").
			Description("Chat completion model used for generation").
			Placeholder("gpt-4o").
			Value(&draft.Model).
			Validate(required("model")),
		huh.NewInput().
			Title("API Base URL").
			Description("Leave empty for api.openai.com; set for compatible providers").
			Placeholder("https://api.openai.com/v1").
			Value(&draft.APIBase),
		huh.NewInput().
			Title("Env File").
			Description("Dotenv file read for OPENAI_API_KEY").
			Value(&draft.EnvFile),
	)
}

func editPathsSection(draft *config.Config) error {
	return settingsForm(
		huh.NewInput().
			Title("Library Directory").
			Description("Where generated theme JSON documents are kept").
			Value(&draft.LibraryDir).
			Validate(required("library directory")),
		huh.NewInput().
			Title("Ghostty Themes Directory").
			Description("Leave empty for the platform default").
			Value(&draft.GhosttyThemesDir),
	)
}

func editDisplaySection(draft *config.Config) error {
	palettes := make([]huh.Option[string], 0, len(ui.ThemeNames()))
	for _, name := range ui.ThemeNames() {
		palettes = append(palettes, huh.NewOption(name, name))
	}

	return settingsForm(
		huh.NewSelect[string]().
			Title("TUI Palette").
			Description("Colors used by glaze's own screens").
			Options(palettes...).
			Value(&draft.UI.Theme),
		huh.NewConfirm().
			Title("Dense Layout").
			Description("Reduce vertical spacing in output").
			Value(&draft.UI.Dense),
		huh.NewConfirm().
			Title("Disable Colors").
			Description("Use monochrome output").
			Value(&draft.UI.NoColor),
	)
}

func settingsForm(fields ...huh.Field) error {
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(ui.HuhTheme()).Run()
}

func required(label string) func(string) error {
	return func(value string) error {
		if value == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func saveSettings(draft *config.Config) error {
	path := cfgFile
	if path == "" {
		var err error
		path, err = config.Path()
		if err != nil {
			return err
		}
	}

	if err := draft.Save(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	*cfg = *draft
	applyUISettings()

	fmt.Println()
	fmt.Println(ui.SuccessBox.Render("Settings saved to " + path))
	return nil
}
