package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vibejam/glaze/internal/ui"
)

var convertOutput string

var convertCmd = &cobra.Command{
	Use:   "convert [theme|file.json]",
	Short: "Convert a theme JSON document to Ghostty's theme format",
	Long: `Convert renders a theme document as Ghostty's flat theme format:
sixteen palette lines first, then the remaining colors in the order
the document lists them. The result goes to stdout unless -o is set.

Examples:
  glaze convert ocean
  glaze convert themes/ghostty/ocean.json -o ocean`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	ref := ""
	if len(args) > 0 {
		ref = args[0]
	}
	name, doc, err := resolveTheme(ref)
	if err != nil {
		return err
	}

	conf, missing := doc.Conf()
	for _, index := range missing {
		logger.Warn("palette slot missing from theme", "index", index)
	}

	if convertOutput == "" {
		fmt.Print(conf)
		return nil
	}

	if err := os.WriteFile(convertOutput, []byte(conf), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", convertOutput, err)
	}
	fmt.Println(ui.SuccessBox.Render(fmt.Sprintf("Converted %s to %s", name, convertOutput)))
	return nil
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Write the theme here instead of stdout")
}
