package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/vibejam/glaze/internal/config"
	"github.com/vibejam/glaze/internal/generate"
	"github.com/vibejam/glaze/internal/theme"
	"github.com/vibejam/glaze/internal/ui"
)

var generateCmd = &cobra.Command{
	Use:   "generate [keyword]",
	Short: "Generate and install a theme from a keyword",
	Long: `Generate asks the configured model for a Ghostty color theme built
around a keyword, saves the JSON document to the library, converts it
to Ghostty's theme format, and installs it into the themes directory.

A missing API key is the only fatal failure. A bad model reply or an
unreachable endpoint is reported and leaves the library untouched.

Examples:
  glaze generate ocean
  glaze generate cyberpunk`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	envFile, err := cfg.ResolvedEnvFile()
	if err != nil {
		envFile = cfg.EnvFile
	}
	key, err := config.LoadAPIKey(envFile)
	if err != nil {
		return err
	}

	keyword, err := askKeyword(args)
	if err != nil {
		return err
	}

	ui.StartScreen("GENERATE", fmt.Sprintf("Painting a %s theme. This may take a moment.", keyword))

	gen := generate.New(generate.NewClient(key, cfg.APIBase), cfg.Model, logger)

	var doc *theme.Document
	err = ui.RunWithSpinner(fmt.Sprintf("Asking %s for a %s theme", cfg.Model, keyword), func() error {
		var genErr error
		doc, genErr = gen.Generate(ctx, keyword)
		return genErr
	})
	if err != nil {
		var malformed *generate.MalformedError
		if errors.As(err, &malformed) {
			logger.Error("the model reply was not a valid theme document", "error", malformed.Err)
			fmt.Println(ui.ErrorBox.Render("Raw reply:\n\n" + malformed.Payload))
			return nil
		}
		logger.Error("could not reach the model", "error", err)
		return nil
	}

	for _, problem := range doc.Check() {
		logger.Warn(problem)
	}

	if lib, libErr := openLibrary(); libErr != nil {
		logger.Warn("could not open the theme library", "error", libErr)
	} else if path, saveErr := lib.Save(keyword, keyword, cfg.Model, doc); saveErr != nil {
		logger.Warn("could not save the theme to the library", "error", saveErr)
	} else {
		logger.Info("theme saved", "path", path)
	}

	fmt.Println(ui.PreviewTheme(doc))

	installTheme(ctx, keyword, doc)
	return nil
}

// askKeyword resolves the theme keyword from the positional argument or,
// on an interactive terminal, a form that rejects invalid input and asks
// again rather than quietly rewriting it.
func askKeyword(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		keyword := theme.NormalizeName(args[0])
		if err := theme.ValidName(keyword); err != nil {
			return "", err
		}
		return keyword, nil
	}

	if !ui.IsInteractiveTerminal() {
		return "", errors.New("keyword required")
	}

	var raw string
	err := huh.NewInput().
		Title("Theme Keyword").
		Description("One word sets the mood (e.g. forest, ocean, cyberpunk)").
		Placeholder("ocean").
		Validate(func(value string) error {
			return theme.ValidName(theme.NormalizeName(value))
		}).
		Value(&raw).
		WithTheme(ui.HuhTheme()).
		Run()
	if err != nil {
		return "", err
	}
	return theme.NormalizeName(raw), nil
}
