package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/canyon-runner/internal/config"
)

var nameErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// NameEntryModel asks for the name attached to the next score.
type NameEntryModel struct {
	input     textinput.Model
	width     int
	errMsg    string
	submitted bool
	cancelled bool
}

// NewNameEntryModel creates the prompt prefilled with name.
func NewNameEntryModel(name string, width int) NameEntryModel {
	ti := textinput.New()
	ti.Placeholder = "runner"
	ti.Prompt = "Name: "
	ti.CharLimit = config.MaxNameLength
	ti.Width = config.MaxNameLength + 1
	ti.SetValue(name)
	ti.Focus()

	return NameEntryModel{input: ti, width: width}
}

// Init starts the cursor blink.
func (m NameEntryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m NameEntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			name := strings.TrimSpace(m.input.Value())
			if err := config.ValidateName(name); err != nil {
				m.errMsg = "Enter a name without commas"
				return m, nil
			}
			m.input.SetValue(name)
			m.submitted = true
			return m, tea.Quit
		case tea.KeyRunes:
			// Commas would split the leaderboard line.
			msg.Runes = []rune(strings.ReplaceAll(string(msg.Runes), ",", ""))
			if len(msg.Runes) == 0 {
				return m, nil
			}
		}
		m.errMsg = ""
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m NameEntryModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("WHO IS RUNNING?"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n\n")
	if m.errMsg != "" {
		b.WriteString(centerText(nameErrorStyle.Render(m.errMsg), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(menuHintStyle.Render("Enter: Start  |  Esc: Back"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Name returns the entered name once submitted.
func (m NameEntryModel) Name() (string, bool) {
	return m.input.Value(), m.submitted
}

// RunNameEntry shows the prompt. ok is false when the player backed out.
func RunNameEntry(name string, width int) (entered string, ok bool, err error) {
	p := tea.NewProgram(NewNameEntryModel(name, width), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return name, false, err
	}
	m, isModel := finalModel.(NameEntryModel)
	if !isModel {
		return name, false, nil
	}
	entered, ok = m.Name()
	return entered, ok, nil
}
