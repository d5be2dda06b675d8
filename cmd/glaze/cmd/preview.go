package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibejam/glaze/internal/ui"
)

var previewCmd = &cobra.Command{
	Use:   "preview [theme|file]",
	Short: "Render a theme's palette in the terminal",
	Long: `Preview draws the sixteen palette slots and the remaining colors
of a theme as swatches in the terminal. It reads saved themes, JSON
documents, and installed Ghostty theme files.

Examples:
  glaze preview ocean
  glaze preview /usr/share/ghostty/themes/ocean`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	ref := ""
	if len(args) > 0 {
		ref = args[0]
	}
	name, doc, err := resolveTheme(ref)
	if err != nil {
		return err
	}

	ui.StartScreen("PREVIEW", name)
	fmt.Println(ui.PreviewTheme(doc))
	return nil
}
