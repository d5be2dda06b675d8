package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vibejam/glaze/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved themes and their install status",
	Long: `List shows every theme in the library, marking the ones already
present in Ghostty's themes directory.

Examples:
  glaze list`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	entries, err := lib.List()
	if err != nil {
		return err
	}

	ui.StartScreen("THEMES", "Saved themes and their install status")

	if len(entries) == 0 {
		fmt.Println(ui.InfoBox.Render("No themes yet. Run glaze generate <keyword> to paint one."))
		return nil
	}

	themesDir, dirErr := cfg.ResolvedThemesDir()

	installed := 0
	for _, entry := range entries {
		glyph := ui.StatusPending.String()
		note := "library only"
		if dirErr == nil {
			if _, err := os.Stat(filepath.Join(themesDir, entry.Name)); err == nil {
				glyph = ui.StatusSuccess.String()
				note = "installed"
				installed++
			}
		}
		fmt.Printf("  %s %-20s %s\n", glyph, entry.Name, ui.MutedStyle.Render(note))

		if ui.CurrentPreferences.Dense {
			continue
		}
		details := ""
		if !entry.Created.IsZero() {
			details = entry.Created.Format("2006-01-02")
		}
		if entry.Model != "" {
			details += "  " + entry.Model
		}
		if entry.Keyword != "" && entry.Keyword != entry.Name {
			details += "  " + entry.Keyword
		}
		if details != "" {
			fmt.Println(ui.MutedStyle.Render("      " + details))
		}
	}

	fmt.Println()
	fmt.Println(ui.MutedStyle.Render(fmt.Sprintf("%d saved, %d installed", len(entries), installed)))
	return nil
}
