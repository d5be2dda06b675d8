package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines the TUI color palette.
type Palette struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Disabled   bool
}

const defaultThemeName = "glaze"

// ThemeNames returns supported palette names.
func ThemeNames() []string {
	return []string{"glaze", "kiln", "slate"}
}

// PaletteByName returns a palette by theme name.
func PaletteByName(name string) Palette {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "kiln":
		return Palette{
			Name:       "kiln",
			Primary:    lipgloss.Color("#FB923C"),
			Secondary:  lipgloss.Color("#F472B6"),
			Accent:     lipgloss.Color("#FCD34D"),
			Info:       lipgloss.Color("#7FB8FF"),
			Success:    lipgloss.Color("#4ADE80"),
			Warning:    lipgloss.Color("#FBBF24"),
			Error:      lipgloss.Color("#F87171"),
			Muted:      lipgloss.Color("#A8A29E"),
			Background: lipgloss.Color("#1C1210"),
			Foreground: lipgloss.Color("#FAF4ED"),
			Border:     lipgloss.Color("#57534E"),
			Highlight:  lipgloss.Color("#FED7AA"),
		}
	case "slate":
		return Palette{
			Name:       "slate",
			Primary:    lipgloss.Color("#CBD5E1"),
			Secondary:  lipgloss.Color("#94A3B8"),
			Accent:     lipgloss.Color("#E2E8F0"),
			Info:       lipgloss.Color("#CBD5E1"),
			Success:    lipgloss.Color("#E2E8F0"),
			Warning:    lipgloss.Color("#94A3B8"),
			Error:      lipgloss.Color("#F1F5F9"),
			Muted:      lipgloss.Color("#64748B"),
			Background: lipgloss.Color("#0B1220"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Border:     lipgloss.Color("#475569"),
			Highlight:  lipgloss.Color("#F8FAFC"),
		}
	default:
		return Palette{
			Name:       "glaze",
			Primary:    lipgloss.Color("#5EEAD4"),
			Secondary:  lipgloss.Color("#A78BFA"),
			Accent:     lipgloss.Color("#7DD3FC"),
			Info:       lipgloss.Color("#60A5FA"),
			Success:    lipgloss.Color("#34D399"),
			Warning:    lipgloss.Color("#FBBF24"),
			Error:      lipgloss.Color("#F87171"),
			Muted:      lipgloss.Color("#94A3B8"),
			Background: lipgloss.Color("#0B1120"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Border:     lipgloss.Color("#334155"),
			Highlight:  lipgloss.Color("#99F6E4"),
		}
	}
}

// DefaultPalette returns the default theme palette.
func DefaultPalette() Palette {
	return PaletteByName(defaultThemeName)
}
