package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/jlyonsmith/git-extra/internal/config"
)

var (
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	unselectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
)

// pickerItem is one selectable shortcut.
type pickerItem struct {
	name        string
	origin      string
	description string
}

// pickerModel is the bubbletea model for shortcut selection.
type pickerModel struct {
	items     []pickerItem
	filtered  []pickerItem
	textInput textinput.Model
	cursor    int
	selected  *pickerItem
	cancelled bool
	maxHeight int
}

func newPickerModel(items []pickerItem) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = cursorStyle

	return pickerModel{
		items:     items,
		filtered:  items,
		textInput: ti,
		maxHeight: 10,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.selected = &m.filtered[m.cursor]
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	m.filtered = m.filterItems(m.textInput.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}

	return m, cmd
}

// filterItems fuzzy-matches the query against shortcut names and
// descriptions.
func (m pickerModel) filterItems(query string) []pickerItem {
	if query == "" {
		return m.items
	}

	haystack := make([]string, len(m.items))
	for i, it := range m.items {
		haystack[i] = it.name + " " + it.description
	}

	matches := fuzzy.Find(query, haystack)
	filtered := make([]pickerItem, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, m.items[match.Index])
	}
	return filtered
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString("Select a quick-start shortcut:\n\n")
	b.WriteString(m.textInput.View() + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  no matching shortcuts") + "\n")
	}

	height := min(len(m.filtered), m.maxHeight)
	for i := 0; i < height; i++ {
		it := m.filtered[i]
		name := "  " + unselectedStyle.Render(it.name)
		if i == m.cursor {
			name = selectedStyle.Render("> " + it.name)
		}
		fmt.Fprintf(&b, "%s  %s\n", name, dimStyle.Render(it.origin))
	}

	b.WriteString(dimStyle.Render("\n↑/↓ navigate • enter select • esc cancel\n"))
	return b.String()
}

// SelectShortcut runs the interactive picker over the shortcut mapping.
// Returns the chosen name, or ok=false if the user cancelled or there
// was nothing to pick.
func SelectShortcut(shortcuts map[string]config.Shortcut) (string, bool, error) {
	names := config.Names(shortcuts)
	if len(names) == 0 {
		return "", false, nil
	}

	items := make([]pickerItem, len(names))
	for i, name := range names {
		sc := shortcuts[name]
		items[i] = pickerItem{name: name, origin: sc.Origin, description: sc.Description}
	}

	p := tea.NewProgram(newPickerModel(items))
	final, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m := final.(pickerModel)
	if m.cancelled || m.selected == nil {
		return "", false, nil
	}
	return m.selected.name, true, nil
}
