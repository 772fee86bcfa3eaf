package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/canyon-runner/internal/core"
)

// MenuChoice is what the player picked from the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceInstructions
	ChoiceQuit
)

// MenuItem is one line of the main menu.
type MenuItem struct {
	Title  string
	Choice MenuChoice
}

var menuItems = []MenuItem{
	{Title: "Play", Choice: ChoicePlay},
	{Title: "High Scores", Choice: ChoiceScores},
	{Title: "Instructions", Choice: ChoiceInstructions},
	{Title: "Quit", Choice: ChoiceQuit},
}

// instructions is shown by the Instructions entry.
var instructions = []string{
	"Cross the canyon and survive as long as you can.",
	"",
	"A / Left     run left",
	"D / Right    run right",
	"W / Up       jump, press again in the air to double jump",
	"S / Down     drop faster",
	"Space        throw",
	"P            pause",
	"R            restart",
	"B            summon a boss",
	"Q            quit",
	"",
	"Each bat or demon you hit scores a point. Bosses take several hits.",
	"Potions heal, stars grant invincibility, wings grant a double jump.",
	"Ice slows you down and rocks stun you.",
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items            []MenuItem
	cursor           int
	width            int
	height           int
	config           core.RuntimeConfig
	keyMapper        *KeyMapper
	showInstructions bool
	choice           MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     menuItems,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.showInstructions {
		switch action {
		case MenuActionQuit:
			m.choice = ChoiceQuit
			return m, tea.Quit
		case MenuActionBack, MenuActionSelect:
			m.showInstructions = false
		}
		return m, nil
	}

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		choice := m.items[m.cursor].Choice
		if choice == ChoiceInstructions {
			m.showInstructions = true
			return m, nil
		}
		m.choice = choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("C A N Y O N   R U N N E R"), m.width))
	b.WriteString("\n\n")

	if m.showInstructions {
		for _, line := range instructions {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(menuHintStyle.Render("Enter/Esc: Back  |  Q: Quit"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Choice returns the selected entry, or ChoiceNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}
	return MenuResult{Choice: m.Choice(), Config: m.Config()}, nil
}
