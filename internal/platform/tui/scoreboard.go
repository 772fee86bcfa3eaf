package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/canyon-runner/internal/storage"
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	scoreDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel is the Bubble Tea model for the high score screen.
type ScoreboardModel struct {
	top       []storage.Entry
	stats     storage.Stats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads the top scores and all-time stats from board.
func NewScoreboardModel(board storage.Leaderboard, width int) ScoreboardModel {
	m := ScoreboardModel{
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
		width: width,
	}
	m.load(board)
	m.table = m.createTable()
	return m
}

func (m *ScoreboardModel) load(board storage.Leaderboard) {
	if board == nil {
		return
	}
	all, err := board.All()
	if err != nil {
		m.loadErr = err
		return
	}
	m.stats = storage.Summarize(all)
	if len(all) > storage.TopN {
		all = all[:storage.TopN]
	}
	m.top = all
}

// createTable builds the ranking table; a date column is added when the
// backend records one.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: 12},
		{Title: "Score", Width: 8},
	}
	dated := len(m.top) > 0 && !m.top[0].CreatedAt.IsZero()
	if dated {
		columns = append(columns, table.Column{Title: "Date", Width: 14})
	}

	rows := make([]table.Row, len(m.top))
	for i, e := range m.top {
		row := table.Row{fmt.Sprintf("#%d", i+1), e.Name, fmt.Sprintf("%d", e.Score)}
		if dated {
			row = append(row, e.CreatedAt.Format("Jan 02 15:04"))
		}
		rows[i] = row
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(storage.TopN+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(scoreTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(centerText(nameErrorStyle.Render("Could not read scores: "+m.loadErr.Error()), m.width))
	case len(m.top) == 0:
		empty := scoreDimStyle.Italic(true).Padding(1, 4).
			Render("No scores recorded yet.\nPlay a game to set a high score!")
		b.WriteString(centerBlock(scoreBoxStyle.Render(empty), m.width))
	default:
		b.WriteString(centerBlock(scoreBoxStyle.Render(m.table.View()), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(scoreDimStyle.Render(m.statsLine()), m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(scoreDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) statsLine() string {
	return fmt.Sprintf("%d games  |  best %d  |  mean %.1f  |  stddev %.1f",
		m.stats.Count, m.stats.Best, m.stats.Mean, m.stats.StdDev)
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	pad := (width - lipgloss.Width(block)) / 2
	if pad <= 0 {
		return block
	}
	return lipgloss.NewStyle().PaddingLeft(pad).Render(block)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(board storage.Leaderboard, width int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(board, width), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
