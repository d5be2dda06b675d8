package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vibejam/glaze/internal/config"
	"github.com/vibejam/glaze/internal/ui"
)

var (
	verbose bool
	quiet   bool
	noColor bool
	cfgFile string
	logger  *log.Logger
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "glaze",
	Short: "Generate and install Ghostty color themes",
	Long: `glaze turns a keyword into a complete Ghostty color theme:
an LLM paints the palette, glaze converts it to Ghostty's theme
format and installs it into the themes directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if cmd.Name() != "version" && cmd.Name() != "help" {
			var err error
			if cfgFile != "" {
				cfg, err = config.Load(cfgFile)
			} else {
				cfg, err = config.LoadDefault()
			}
			if err != nil {
				logger.Warn("could not load config, using defaults", "error", err)
				cfg = config.DefaultConfig()
			}
		}

		applyUISettings()
		setupLogger()

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && ui.IsInteractiveTerminal() {
			return runRootTUI()
		}
		return cmd.Help()
	},
}

// rootMenu pairs each menu row with the command it launches. A nil
// command closes the program.
var rootMenu = []struct {
	item ui.MenuItem
	cmd  *cobra.Command
}{
	{ui.MenuItem{ID: "generate", TitleText: "Generate", Details: "Ask the model for a new theme and install it"}, generateCmd},
	{ui.MenuItem{ID: "preview", TitleText: "Preview", Details: "Render a theme's palette and colors in the terminal"}, previewCmd},
	{ui.MenuItem{ID: "install", TitleText: "Install", Details: "Install a saved theme into Ghostty's themes directory"}, installCmd},
	{ui.MenuItem{ID: "convert", TitleText: "Convert", Details: "Turn a theme JSON document into Ghostty's theme format"}, convertCmd},
	{ui.MenuItem{ID: "list", TitleText: "List", Details: "Show saved themes and their install status"}, listCmd},
	{ui.MenuItem{ID: "doctor", TitleText: "Doctor", Details: "Check credentials, directories, and root helpers"}, doctorCmd},
	{ui.MenuItem{ID: "settings", TitleText: "Settings", Details: "Tune the model, paths, and display preferences"}, settingsCmd},
	{ui.MenuItem{ID: "exit", TitleText: "Exit", Details: "Close glaze"}, nil},
}

const rootTagline = "Paint a fresh coat on Ghostty."

func runRootTUI() error {
	items := make([]ui.MenuItem, len(rootMenu))
	for i, entry := range rootMenu {
		items[i] = entry.item
	}

	lastChoice := ""
	for {
		choice, err := ui.RunMenuWithOptions("GLAZE", rootTagline, items,
			ui.WithInitialSelectionID(lastChoice))
		if err != nil {
			return runRootFallback()
		}
		lastChoice = choice

		done, err := dispatchRootChoice(choice)
		if errors.Is(err, huh.ErrUserAborted) {
			continue
		}
		if done || err != nil {
			return err
		}

		if err := waitForEnter("Press enter to return to the menu"); err != nil {
			return err
		}
	}
}

// dispatchRootChoice runs the chosen command. done means the user picked
// exit or backed out of the menu entirely.
func dispatchRootChoice(choice string) (done bool, err error) {
	for _, entry := range rootMenu {
		if entry.item.ID != choice {
			continue
		}
		if entry.cmd == nil {
			return true, nil
		}
		return false, entry.cmd.RunE(entry.cmd, []string{})
	}
	return true, nil
}

// runRootFallback is the plain prompt used when the full-screen menu
// cannot start.
func runRootFallback() error {
	ui.StartScreen("GLAZE", rootTagline)

	options := make([]huh.Option[string], len(rootMenu))
	for i, entry := range rootMenu {
		options[i] = huh.NewOption(entry.item.TitleText, entry.item.ID)
	}

	var choice string
	err := huh.NewSelect[string]().
		Title("glaze").
		Description("What would you like to do?").
		Options(options...).
		Value(&choice).
		WithTheme(ui.HuhTheme()).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	_, err = dispatchRootChoice(choice)
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

func waitForEnter(prompt string) error {
	if !ui.IsInteractiveTerminal() {
		return nil
	}
	fmt.Println()
	fmt.Println(ui.HintStyle.Render(prompt))
	_, err := bufio.NewReader(os.Stdin).ReadString('\n')
	return err
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		fmt.Println(ui.ErrorStyle.Render("Error: " + err.Error()))
		return err
	}
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&cfgFile, "config", "", "Config file (default: user config dir)")

	rootCmd.AddCommand(generateCmd, convertCmd, installCmd, previewCmd,
		listCmd, doctorCmd, settingsCmd, versionCmd)
}

func applyUISettings() {
	prefs := ui.Preferences{Theme: "glaze", NoColor: noColor}
	if cfg != nil {
		prefs.Theme = cfg.UI.Theme
		prefs.Dense = cfg.UI.Dense
		prefs.NoColor = cfg.UI.NoColor || noColor
	}
	ui.ApplyPreferences(prefs)
}

// colorsOff folds the flag, the NO_COLOR convention, and the config
// preference into one answer. Before the config loads only the first
// two apply.
func colorsOff() bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return true
	}
	return cfg != nil && cfg.UI.NoColor
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !colorsOff() {
		for lv, tone := range map[log.Level]lipgloss.Color{
			log.DebugLevel: ui.Muted,
			log.InfoLevel:  ui.Primary,
			log.WarnLevel:  ui.Warning,
			log.ErrorLevel: ui.Error,
		} {
			styles.Levels[lv] = lipgloss.NewStyle().
				SetString(strings.ToUpper(lv.String())).
				MaxWidth(4).
				Foreground(tone).
				Bold(true)
		}
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
}
