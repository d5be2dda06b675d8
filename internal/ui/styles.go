// Package ui provides Charm-based UI components for glaze
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// Active palette colors. ApplyPalette swaps them and rebuilds every style,
// so styles must be reused through the vars rather than copied at init.
var (
	Primary    = lipgloss.Color("#5EEAD4")
	Secondary  = lipgloss.Color("#A78BFA")
	Accent     = lipgloss.Color("#7DD3FC")
	Info       = lipgloss.Color("#60A5FA")
	Success    = lipgloss.Color("#34D399")
	Warning    = lipgloss.Color("#FBBF24")
	Error      = lipgloss.Color("#F87171")
	Muted      = lipgloss.Color("#94A3B8")
	Background = lipgloss.Color("#0B1120")
	Foreground = lipgloss.Color("#E2E8F0")
	Border     = lipgloss.Color("#334155")
	Highlight  = lipgloss.Color("#99F6E4")
)

var (
	Title        lipgloss.Style
	Tagline      lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	HintStyle    lipgloss.Style

	InfoBox    lipgloss.Style
	SuccessBox lipgloss.Style
	ErrorBox   lipgloss.Style

	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusPending lipgloss.Style

	HeaderStyle lipgloss.Style
)

func init() {
	ApplyPalette(DefaultPalette())
}

// ApplyPalette switches the active colors and rebuilds the package styles.
// A disabled palette clears every color so output stays plain.
func ApplyPalette(p Palette) {
	if p.Disabled {
		blank := lipgloss.Color("")
		Primary, Secondary, Accent, Info = blank, blank, blank, blank
		Success, Warning, Error, Muted = blank, blank, blank, blank
		Background, Foreground, Border, Highlight = blank, blank, blank, blank
	} else {
		Primary, Secondary, Accent, Info = p.Primary, p.Secondary, p.Accent, p.Info
		Success, Warning, Error, Muted = p.Success, p.Warning, p.Error, p.Muted
		Background, Foreground, Border, Highlight = p.Background, p.Foreground, p.Border, p.Highlight
	}

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Tagline = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	WarningStyle = lipgloss.NewStyle().
		Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	HintStyle = MutedStyle

	InfoBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Secondary).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	SuccessBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Success).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	ErrorBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Error).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	StatusSuccess = lipgloss.NewStyle().
		Foreground(Success).
		SetString("✓")

	StatusError = lipgloss.NewStyle().
		Foreground(Error).
		SetString("✗")

	StatusWarning = lipgloss.NewStyle().
		Foreground(Warning).
		SetString("!")

	StatusPending = lipgloss.NewStyle().
		Foreground(Muted).
		SetString("○")

	HeaderStyle = lipgloss.NewStyle().
		Foreground(Background).
		Background(Primary).
		Padding(0, 1).
		Bold(true)
}

// PrimaryStyle returns a bold style in the current primary color.
func PrimaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Primary).Bold(true)
}

// AccentStyle returns a style in the current accent color.
func AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Accent)
}

// Header renders the screen title bar across the terminal width.
func Header(title string) string {
	width := terminalWidth()
	if width > 72 {
		width = 72
	}
	return HeaderStyle.Width(width).Align(lipgloss.Center).Render(title)
}

// PrintKV prints an aligned key/value line.
func PrintKV(key, value string) {
	fmt.Printf("  %s %s\n", MutedStyle.Render(fmt.Sprintf("%-18s", key+":")), value)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
