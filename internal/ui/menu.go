package ui

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Sentinel choices returned instead of an item ID.
const (
	MenuActionBack = "__back__"
	MenuActionQuit = "__quit__"
)

// MenuItem is one selectable row in a menu.
type MenuItem struct {
	ID        string
	TitleText string
	Details   string
}

// FilterValue makes rows findable by label, details, or ID.
func (m MenuItem) FilterValue() string {
	return m.TitleText + " " + m.Details + " " + m.ID
}

type menuSetup struct {
	backOut  bool
	backHint string
	startID  string
}

// MenuOption adjusts menu behavior.
type MenuOption func(*menuSetup)

// WithBackNavigation makes esc/q return MenuActionBack instead of quitting.
func WithBackNavigation(label string) MenuOption {
	return func(s *menuSetup) {
		s.backOut = true
		if label != "" {
			s.backHint = label
		}
	}
}

// WithInitialSelectionID opens the menu with the named item highlighted.
func WithInitialSelectionID(id string) MenuOption {
	return func(s *menuSetup) {
		s.startID = strings.TrimSpace(id)
	}
}

// RunMenuWithOptions shows a full-screen menu and returns the chosen item
// ID, or one of the MenuAction sentinels.
func RunMenuWithOptions(title, subtitle string, items []MenuItem, options ...MenuOption) (string, error) {
	if !IsInteractiveTerminal() {
		return "", errors.New("non-interactive terminal")
	}

	setup := menuSetup{backHint: "Back"}
	for _, opt := range options {
		opt(&setup)
	}

	final, err := tea.NewProgram(newMenuModel(title, subtitle, items, setup)).Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(menuModel); ok {
		return m.choice, nil
	}
	return "", nil
}

type menuKeys struct {
	choose key.Binding
	digits key.Binding
	filter key.Binding
	back   key.Binding
	quit   key.Binding
}

func newMenuKeys(setup menuSetup) menuKeys {
	k := menuKeys{
		choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		digits: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
	if setup.backOut {
		k.back = key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", setup.backHint))
		k.quit = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	}
	return k
}

func (k menuKeys) ShortHelp() []key.Binding {
	row := []key.Binding{k.choose, k.digits, k.filter}
	if k.back.Enabled() {
		return append(row, k.back)
	}
	return append(row, k.quit)
}

func (k menuKeys) FullHelp() [][]key.Binding {
	second := []key.Binding{k.quit}
	if k.back.Enabled() {
		second = []key.Binding{k.back, k.quit}
	}
	return [][]key.Binding{{k.choose, k.digits, k.filter}, second}
}

// chipDelegate renders each row as a numbered line behind a color chip,
// like a paint sample card.
type chipDelegate struct {
	chip     lipgloss.Style
	row      lipgloss.Style
	active   lipgloss.Style
	inactive lipgloss.Style
}

func newChipDelegate() chipDelegate {
	return chipDelegate{
		chip:     lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))),
		row:      lipgloss.NewStyle().Foreground(lipgloss.Color(string(Foreground))),
		active:   lipgloss.NewStyle().Foreground(lipgloss.Color(string(Primary))).Bold(true),
		inactive: lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted))),
	}
}

func (d chipDelegate) Height() int                         { return 1 }
func (d chipDelegate) Spacing() int                        { return 0 }
func (d chipDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d chipDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(MenuItem)
	if !ok || m.Width() <= 0 {
		return
	}

	label := row.TitleText
	if row.Details != "" && m.Width() > 56 {
		label += " - " + row.Details
	}
	room := m.Width() - 6
	if room < 14 {
		room = 14
	}
	label = ansi.Truncate(label, room, "...")
	numbered := fmt.Sprintf("%d. %s", index+1, label)

	filtering := m.FilterState() == list.Filtering
	switch {
	case index == m.Index() && !filtering:
		fmt.Fprint(w, d.chip.Render("▍"), " ", d.active.Render(numbered)) //nolint:errcheck
	case filtering && strings.TrimSpace(m.FilterValue()) == "":
		fmt.Fprint(w, "  ", d.inactive.Render(numbered)) //nolint:errcheck
	default:
		fmt.Fprint(w, "  ", d.row.Render(numbered)) //nolint:errcheck
	}
}

type menuModel struct {
	title    string
	subtitle string
	version  string

	list list.Model
	keys menuKeys
	help help.Model

	backOut  bool
	choice   string
	quitting bool

	width, height int
}

func newMenuModel(title, subtitle string, items []MenuItem, setup menuSetup) menuModel {
	rows := make([]list.Item, len(items))
	start := 0
	for i, item := range items {
		rows[i] = item
		if setup.startID != "" && item.ID == setup.startID {
			start = i
		}
	}

	l := list.New(rows, newChipDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted)))
	l.Styles.HelpStyle = muted
	l.Styles.PaginationStyle = muted
	l.Select(start)

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true)
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.ShortDesc = muted
	h.Styles.FullDesc = muted
	h.Styles.Ellipsis = muted

	return menuModel{
		title:    title,
		subtitle: subtitle,
		version:  menuVersion(),
		list:     l,
		keys:     newMenuKeys(setup),
		help:     h,
		backOut:  setup.backOut,
	}
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.fitList()

	case tea.KeyPressMsg:
		filtering := m.list.FilterState() == list.Filtering
		switch {
		case key.Matches(msg, m.keys.choose):
			if row, ok := m.list.SelectedItem().(MenuItem); ok {
				m.choice = row.ID
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.digits) && !filtering:
			if m.jumpTo(int(msg.String()[0] - '1')) {
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.back) && !filtering:
			m.choice = MenuActionBack
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.quit) && !filtering:
			m.choice = MenuActionQuit
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// jumpTo selects the nth row of the visible page and commits it.
func (m *menuModel) jumpTo(offset int) bool {
	rows := m.list.VisibleItems()
	pageStart := m.list.Index() - m.list.Cursor()
	if pageStart < 0 {
		pageStart = 0
	}
	target := pageStart + offset
	if target < 0 || target >= len(rows) {
		return false
	}

	m.list.Select(target)
	row, ok := rows[target].(MenuItem)
	if ok {
		m.choice = row.ID
	}
	return ok
}

func (m *menuModel) fitList() {
	w, h := m.width, m.height
	if w <= 0 {
		w = terminalWidth()
	}
	if h <= 0 {
		h = 24
	}
	w -= 4
	if w < 20 {
		w = 20
	}
	h -= 9
	if h < 5 {
		h = 5
	}
	m.list.SetSize(w, h)
}

func (m menuModel) View() tea.View {
	if m.quitting {
		return tea.View{}
	}

	body := m.list.View()
	if filter := strings.TrimSpace(m.list.FilterValue()); filter != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "",
			MutedStyle.Render("filter: "+ansi.Truncate(filter, 40, "...")))
	}

	footer := m.help.View(m.keys)
	if m.version != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, footer, MutedStyle.Render("glaze "+m.version))
	}

	v := tea.NewView(Frame(m.title, m.subtitle, body, footer))
	v.AltScreen = true
	return v
}

// menuVersion labels the footer from build metadata when no release
// version was stamped in.
func menuVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, s := range info.Settings {
		if s.Key != "vcs.revision" || s.Value == "" {
			continue
		}
		if len(s.Value) > 7 {
			return "dev-" + s.Value[:7]
		}
		return "dev-" + s.Value
	}
	return "dev"
}
