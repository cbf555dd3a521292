package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shooter-arcade/internal/registry"
	"github.com/vovakirdan/shooter-arcade/internal/storage"
)

const (
	maxBoardRuns  = 100 // runs loaded per game
	maxRecentRuns = 50
)

// difficultyFilters cycles through "all" and the three profiles.
var difficultyFilters = []string{"", "easy", "medium", "hard"}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Filter   key.Binding
	Recent   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextGame, k.Filter, k.Recent, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Filter, k.Recent, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "difficulty")),
		Recent:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recent/best")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows either the best runs of one game, optionally
// narrowed to one difficulty, or the most recent runs of every game.
type ScoreboardModel struct {
	games      []registry.GameInfo
	titles     map[string]string
	gameCursor int
	filter     int // index into difficultyFilters
	recent     bool
	store      *storage.Store
	runs       []storage.RunRecord
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard over every registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	return newScoreboard(store, registry.List(), width, height)
}

func newScoreboard(store *storage.Store, games []registry.GameInfo, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  games,
		titles: make(map[string]string, len(games)),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for _, g := range games {
		m.titles[g.ID] = g.Title
	}
	m.reload()
	return m
}

// currentGame returns the selected game ID, or "" with no games.
func (m ScoreboardModel) currentGame() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// reload queries the store for the current view and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		var runs []storage.RunRecord
		var err error
		if m.recent {
			runs, err = m.store.RecentRuns(maxRecentRuns)
		} else if id := m.currentGame(); id != "" {
			runs, err = m.store.TopRuns(id, maxBoardRuns)
			if stats, statsErr := m.store.GetGameStats(id); statsErr == nil {
				m.stats = stats
			}
		}
		if err == nil {
			m.runs = filterRuns(runs, difficultyFilters[m.filter])
		}
	}
	m.table = m.buildTable()
}

// filterRuns keeps the runs played on difficulty; "" keeps all.
func filterRuns(runs []storage.RunRecord, difficulty string) []storage.RunRecord {
	if difficulty == "" {
		return runs
	}
	kept := runs[:0:0]
	for _, r := range runs {
		if r.Difficulty == difficulty {
			kept = append(kept, r)
		}
	}
	return kept
}

func (m ScoreboardModel) buildTable() table.Model {
	first := table.Column{Title: "Rank", Width: 5}
	if m.recent {
		first = table.Column{Title: "Game", Width: 18}
	}
	columns := []table.Column{
		first,
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 5},
		{Title: "Difficulty", Width: 10},
		{Title: "Date", Width: 12},
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		lead := fmt.Sprintf("#%d", i+1)
		if m.recent {
			lead = m.titles[r.GameID]
			if lead == "" {
				lead = r.GameID
			}
		}
		rows[i] = table.Row{
			lead,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Level),
			r.Difficulty,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // header, tabs, help
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

		case key.Matches(msg, m.keys.NextGame):
			m.moveGame(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.moveGame(-1)
			return m, nil

		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % len(difficultyFilters)
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Recent):
			m.recent = !m.recent
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.buildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// moveGame switches to the next or previous game and leaves the recent view.
func (m *ScoreboardModel) moveGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + delta + len(m.games)) % len(m.games)
	m.recent = false
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "RECENT RUNS"
	if !m.recent {
		title = "BEST RUNS"
		if id := m.currentGame(); id != "" {
			title += " - " + m.titles[id]
		}
	}
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(centerText(m.subtitle(), m.width)))
	b.WriteString("\n\n")

	if !m.recent && len(m.games) > 0 {
		b.WriteString(centerText(m.tabs(), m.width))
		b.WriteString("\n\n")
	}

	body := m.table.View()
	if len(m.runs) == 0 {
		body = boardDimStyle.Italic(true).Padding(1, 4).
			Render("No runs recorded yet.\nFinish a game to get on the board!")
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// subtitle names the active filter and summarizes the game's history.
func (m ScoreboardModel) subtitle() string {
	parts := []string{"difficulty: all"}
	if f := difficultyFilters[m.filter]; f != "" {
		parts[0] = "difficulty: " + f
	}
	if !m.recent && m.stats != nil && m.stats.RunsCount > 0 {
		parts = append(parts,
			fmt.Sprintf("%d runs", m.stats.RunsCount),
			fmt.Sprintf("avg %.0f", m.stats.AvgScore),
			fmt.Sprintf("best level %d", m.stats.BestLevel),
		)
	}
	return strings.Join(parts, "  |  ")
}

// tabs renders one tab per game, or just the current one when they do not fit.
func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = boardTabStyle.Render(g.Title)
		} else {
			tabs[i] = boardDimStyle.Render(" " + g.Title + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = boardTabStyle.Render("< " + m.games[m.gameCursor].Title + " >")
	}
	return line
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
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

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
