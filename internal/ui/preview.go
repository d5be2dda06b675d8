package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vibejam/glaze/internal/theme"
)

// PreviewTheme renders a theme document as ANSI swatches with a sample
// prompt line, so a theme can be judged before it lands anywhere.
func PreviewTheme(doc *theme.Document) string {
	sections := []string{AccentStyle().Bold(true).Render("Palette")}
	if doc.HasPalette() {
		sections = append(sections,
			previewPaletteRow(doc, 0, 8),
			previewPaletteRow(doc, 8, theme.PaletteSize),
		)
	} else {
		sections = append(sections, MutedStyle.Render("  (no palette)"))
	}

	if keys := doc.ScalarKeys(); len(keys) > 0 {
		sections = append(sections, "", AccentStyle().Bold(true).Render("Colors"))
		for _, key := range keys {
			value, _ := doc.Scalar(key)
			sections = append(sections, previewScalarLine(key, value))
		}
	}

	bg, hasBG := doc.Scalar("background")
	fg, hasFG := doc.Scalar("foreground")
	if hasBG && hasFG && theme.IsHexColor(bg) && theme.IsHexColor(fg) {
		sample := lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(fg)).
			Padding(0, 1).
			Render("glaze $ ghostty --theme preview")
		sections = append(sections, "", sample)
	}

	return strings.Join(sections, "\n")
}

func previewPaletteRow(doc *theme.Document, from, to int) string {
	blocks := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		label := MutedStyle.Render(fmt.Sprintf("%2d", i))
		color, ok := doc.Color(i)
		if !ok || !theme.IsHexColor(color) {
			blocks = append(blocks, label+" "+MutedStyle.Render("···"))
			continue
		}
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("   ")
		blocks = append(blocks, label+" "+swatch)
	}
	return strings.Join(blocks, " ")
}

func previewScalarLine(key, value string) string {
	label := MutedStyle.Render(fmt.Sprintf("%-22s", key))
	if !theme.IsHexColor(value) {
		return "  " + label + " " + value
	}
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("  ")
	return "  " + label + " " + swatch + " " + value
}
