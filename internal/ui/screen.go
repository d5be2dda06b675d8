package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// StartScreen clears the terminal and prints the screen header.
func StartScreen(title string, subtitle string) {
	ClearScreen()
	parts := []string{Header(title)}
	if subtitle != "" {
		parts = append(parts, Tagline.Render(subtitle))
	}
	if !CurrentPreferences.Dense {
		parts = append(parts, "")
	}
	fmt.Println(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// ClearScreen resets the terminal when one is attached.
func ClearScreen() {
	if !IsInteractiveTerminal() {
		return
	}
	fmt.Print("\033[2J\033[H")
}

// IsInteractiveTerminal reports whether stdout is a real terminal. CI
// environments count as non-interactive even when a TTY is allocated.
func IsInteractiveTerminal() bool {
	switch {
	case os.Getenv("CI") != "", os.Getenv("GITHUB_ACTIONS") != "":
		return false
	case os.Getenv("TERM") == "":
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Frame stacks the standard screen chrome around a body for full-screen
// TUI views.
func Frame(title string, subtitle string, body string, footer string) string {
	parts := []string{Header(title)}
	if subtitle != "" {
		parts = append(parts, Tagline.Render(subtitle))
	}
	parts = append(parts, body)
	if footer != "" {
		parts = append(parts, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
