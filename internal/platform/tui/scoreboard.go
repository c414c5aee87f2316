package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-climber/internal/games/climber"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 56  // Minimum table width
	maxRuns       = 100 // Max runs to load
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
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
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
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("13")).
				Padding(0, 1)

	scoreboardFrameStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))
)

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store    *storage.Store
	gameID   string
	title    string
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	loadErr  error
	quitting bool
}

// NewScoreboardModel loads the top runs for the game and builds the table.
func NewScoreboardModel(store *storage.Store, gameID, title string) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		gameID: gameID,
		title:  title,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
	}

	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Height", Width: 8},
		{Title: "Stage", Width: 12},
		{Title: "Date", Width: 17},
	}

	var rows []table.Row
	if store != nil {
		entries, err := store.TopRuns(gameID, maxRuns)
		if err != nil {
			m.loadErr = err
		}
		for i, e := range entries {
			stageName := "?"
			if e.Tier >= 0 && e.Tier < len(climber.Stages) {
				stageName = climber.Stages[e.Tier].Name
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%dm", e.Score),
				stageName,
				e.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("11"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14"))
	t.SetStyles(styles)

	m.table = t
	return m
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(4, msg.Height-7))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := scoreboardTitleStyle.Render(fmt.Sprintf("High Scores - %s", m.title))

	body := m.table.View()
	if m.loadErr != nil {
		body = fmt.Sprintf("could not load scores: %v", m.loadErr)
	} else if len(m.table.Rows()) == 0 {
		body = "No runs recorded yet. Play to set the first high score!"
	}

	frame := scoreboardFrameStyle.Width(max(tableMinWidth, m.width-4)).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		frame,
		m.help.View(m.keys),
	)
}

// RunScoreboard starts an interactive scoreboard for the given game.
func RunScoreboard(store *storage.Store, gameID, title string) error {
	p := tea.NewProgram(NewScoreboardModel(store, gameID, title), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
