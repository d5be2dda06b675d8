package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibejam/glaze/internal/ui"
	"github.com/vibejam/glaze/internal/validate"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment glaze depends on",
	Long: `Doctor checks everything a generation run needs:
  - Configuration (config.yaml)
  - OPENAI_API_KEY (environment or dotenv file)
  - Ghostty and its themes directory
  - Root helpers for escalated installs
  - The local theme library

Examples:
  glaze doctor`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	ui.StartScreen("DOCTOR", "Check the environment before generating")

	sections := []struct {
		title string
		check func() validate.Result
	}{
		{"Configuration", func() validate.Result { return validate.Config(ctx) }},
		{"Credentials", func() validate.Result { return validate.Credentials(ctx, cfg) }},
		{"Ghostty", func() validate.Result { return validate.Ghostty(ctx, cfg) }},
		{"Privileges", func() validate.Result { return validate.Escalation(ctx) }},
		{"Library", func() validate.Result { return validate.Library(ctx, cfg) }},
	}

	total := validate.Result{}
	for _, section := range sections {
		fmt.Println(ui.Title.Render(section.title))
		result := section.check()
		for _, item := range result.Items {
			if item.Details != "" {
				fmt.Printf("  %s %s %s\n", statusGlyph(item.Status), item.Name, ui.MutedStyle.Render(item.Details))
			} else {
				fmt.Printf("  %s %s\n", statusGlyph(item.Status), item.Name)
			}
		}
		fmt.Println()
		total.Merge(result)
	}

	warnings := total.Count(validate.StatusWarning)
	switch {
	case total.HasErrors():
		fmt.Println(ui.ErrorBox.Render(fmt.Sprintf("Doctor found %d problem(s)", total.Count(validate.StatusError))))
		return fmt.Errorf("doctor found problems")
	case warnings > 0 || total.Count(validate.StatusPending) > 0:
		fmt.Println(ui.InfoBox.Render(fmt.Sprintf("Ready, with %d warning(s)", warnings)))
	default:
		fmt.Println(ui.SuccessBox.Render("Everything checks out!"))
	}
	return nil
}

func statusGlyph(status validate.Status) string {
	switch status {
	case validate.StatusSuccess:
		return ui.StatusSuccess.String()
	case validate.StatusWarning:
		return ui.StatusWarning.String()
	case validate.StatusError:
		return ui.StatusError.String()
	default:
		return ui.StatusPending.String()
	}
}
