package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// spinResultMsg ends the spinner; a nil err means the work succeeded.
type spinResultMsg struct{ err error }

type spinModel struct {
	dot      spinner.Model
	message  string
	started  time.Time
	err      error
	quitting bool
}

func newSpinModel(message string) spinModel {
	dot := spinner.New()
	dot.Spinner = spinner.MiniDot
	dot.Style = lipgloss.NewStyle().Foreground(Primary)
	return spinModel{dot: dot, message: message, started: time.Now()}
}

func (m spinModel) Init() tea.Cmd { return m.dot.Tick }

func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinResultMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.dot, cmd = m.dot.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinModel) View() string {
	elapsed := time.Since(m.started).Round(time.Second)
	switch {
	case m.quitting && m.err != nil:
		return ErrorStyle.Render(fmt.Sprintf("✗ %s failed after %s: %v", m.message, elapsed, m.err)) + "\n"
	case m.quitting:
		return SuccessStyle.Render(fmt.Sprintf("✓ %s (%s)", m.message, elapsed)) + "\n"
	}
	return fmt.Sprintf("%s %s %s\n", m.dot.View(), m.message, MutedStyle.Render(elapsed.String()))
}

// RunWithSpinner runs fn behind a spinner, or behind plain progress
// lines when no interactive terminal is attached.
func RunWithSpinner(message string, fn func() error) error {
	if !IsInteractiveTerminal() {
		return runPlain(message, fn)
	}

	program := tea.NewProgram(newSpinModel(message))
	result := make(chan error, 1)
	go func() {
		err := fn()
		result <- err
		program.Send(spinResultMsg{err})
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}
	return <-result
}

// runPlain prints one line before and one after, for logs and pipes.
func runPlain(message string, fn func() error) error {
	fmt.Printf("%s...\n", message)
	started := time.Now()
	err := fn()
	elapsed := time.Since(started).Round(time.Millisecond)
	if err != nil {
		fmt.Println(ErrorStyle.Render(fmt.Sprintf("✗ %s failed (%s): %v", message, elapsed, err)))
		return err
	}
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("✓ %s (%s)", message, elapsed)))
	return nil
}
