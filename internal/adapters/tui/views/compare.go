package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"versus/internal/adapters/tui/styles"
)

// CompareKeyMap defines key bindings for the compare view
type CompareKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	First  key.Binding
	Second key.Binding
	Quit   key.Binding
}

// DefaultCompareKeys returns the default compare key bindings
var DefaultCompareKeys = CompareKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "pick winner"),
	),
	First: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "pick first"),
	),
	Second: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "pick second"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc", "stop voting"),
	),
}

// CompareModel asks the user which of the presented candidates wins.
type CompareModel struct {
	ViewState
	Keys CompareKeyMap

	candidates []string
	cursor     int
	choice     int
	chosen     bool
}

// NewCompareModel creates a compare view over the given candidates.
func NewCompareModel(candidates []string) *CompareModel {
	return &CompareModel{
		Keys:       DefaultCompareKeys,
		candidates: candidates,
		choice:     -1,
	}
}

// Choice returns the selected index, valid only when Chosen reports true.
func (m *CompareModel) Choice() int {
	return m.choice
}

// Chosen reports whether the user picked a winner rather than aborting.
func (m *CompareModel) Chosen() bool {
	return m.chosen
}

// Init initializes the compare view
func (m *CompareModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the compare view
func (m *CompareModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			m.chosen = false
			return m, tea.Quit

		case key.Matches(msg, m.Keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.Keys.Down):
			if m.cursor < len(m.candidates)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.Keys.Choose):
			return m.pick(m.cursor)

		case key.Matches(msg, m.Keys.First):
			return m.pick(0)

		case key.Matches(msg, m.Keys.Second):
			return m.pick(1)
		}
	}

	return m, nil
}

func (m *CompareModel) pick(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(m.candidates) {
		return m, nil
	}
	m.choice = idx
	m.chosen = true
	return m, tea.Quit
}

// View renders the compare view
func (m *CompareModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Which one is better?"))
	b.WriteString("\n\n")

	for i, candidate := range m.candidates {
		label := strconv.Itoa(i+1) + ". " + candidate
		if i == m.cursor {
			b.WriteString(styles.CandidateSelected.Render(label))
		} else {
			b.WriteString(styles.Candidate.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpKey.Render("enter"))
	b.WriteString(styles.HelpDesc.Render(" pick winner"))
	b.WriteString(styles.HelpDesc.Render(" • "))
	b.WriteString(styles.HelpKey.Render("1/2"))
	b.WriteString(styles.HelpDesc.Render(" pick directly"))
	b.WriteString(styles.HelpDesc.Render(" • "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" stop voting"))

	return styles.App.Render(b.String())
}
