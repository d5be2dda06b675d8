package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vibejam/glaze/internal/ui"
)

// Version information (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information about glaze.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.AccentStyle().Bold(true).Render("glaze"))
		ui.PrintKV("Version", Version)
		ui.PrintKV("Commit", Commit)
		ui.PrintKV("Build Date", BuildDate)
		ui.PrintKV("Go Version", runtime.Version())
		ui.PrintKV("OS/Arch", runtime.GOOS+"/"+runtime.GOARCH)
	},
}
