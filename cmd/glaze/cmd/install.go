package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vibejam/glaze/internal/ui"
)

var installCmd = &cobra.Command{
	Use:   "install [theme|file]",
	Short: "Install a theme into Ghostty's themes directory",
	Long: `Install converts a saved or on-disk theme and places it into
Ghostty's themes directory. When the directory is writable only as
root, install asks before retrying with sudo or pkexec.

Examples:
  glaze install ocean
  glaze install themes/ghostty/ocean.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	ref := ""
	if len(args) > 0 {
		ref = args[0]
	}
	name, doc, err := resolveTheme(ref)
	if err != nil {
		return err
	}

	ui.StartScreen("INSTALL", "Install "+name+" into Ghostty")
	installTheme(context.Background(), name, doc)
	return nil
}
