package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/freecell/internal/games/freecell/engine"
	"github.com/vovakirdan/freecell/internal/storage"
)

// Statistics layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the summary sidebar
	sidebarWidth       = 24  // Width of the summary sidebar
	maxRows            = 100 // Max games to load per view
	deckColumnWidth    = 12
)

// StatsView selects which games the table lists.
type StatsView int

const (
	ViewRecent StatsView = iota
	ViewBest
)

func (v StatsView) String() string {
	if v == ViewBest {
		return "Best wins"
	}
	return "Recent games"
}

// StatsKeyMap defines the key bindings for the statistics screen.
type StatsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Replay key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Replay, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Replay, k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "recent/best"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay deck"),
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

// StatsModel is the Bubble Tea model for the statistics screen.
type StatsModel struct {
	store       *storage.Store
	view        StatsView
	games       []storage.GameRecord
	stats       storage.Stats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	width       int
	height      int
	showSidebar bool

	quitting  bool
	goingBack bool
	replay    string // Deck chosen for replay
}

// NewStatsModel creates a new statistics model. store may be nil.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		store:       store,
		keys:        DefaultStatsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table sized for the current window.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Deck", Width: deckColumnWidth},
		{Title: "Result", Width: 9},
		{Title: "Moves", Width: 6},
		{Title: "Undos", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := tableWidth - used; extra >= 8 {
		columns = append(columns, table.Column{Title: "Player", Width: min(extra-2, 16)})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
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

// load reads the summary and the games for the current view.
func (m *StatsModel) load() {
	m.games = nil
	m.loadErr = nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	st, err := m.store.Stats()
	if err != nil {
		m.loadErr = err
	}
	m.stats = st

	var games []storage.GameRecord
	if m.view == ViewBest {
		games, err = m.store.BestGames(maxRows)
	} else {
		games, err = m.store.RecentGames(maxRows)
	}
	if err != nil {
		m.loadErr = err
	} else {
		m.games = games
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded games.
func (m *StatsModel) updateTableRows() {
	withPlayer := len(m.table.Columns()) > 7
	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		row := table.Row{
			fmt.Sprintf("%d", i+1),
			shortDeck(g.DeckID),
			resultText(g),
			fmt.Sprintf("%d", g.Moves),
			fmt.Sprintf("%d", g.Undos),
			formatDuration(g.Duration),
			g.CreatedAt.Format("Jan 02 15:04"),
		}
		if withPlayer {
			row = append(row, g.Player)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func shortDeck(id string) string {
	if len(id) <= deckColumnWidth {
		return id
	}
	return id[:deckColumnWidth-1] + "…"
}

func resultText(g storage.GameRecord) string {
	if g.Won {
		return "Won"
	}
	return fmt.Sprintf("%d/%d", g.Foundation, engine.DeckSize)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Hour {
		return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%d:%02d:%02d", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
}

// Init initializes the statistics model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the statistics screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == ViewRecent {
				m.view = ViewBest
			} else {
				m.view = ViewRecent
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Replay):
			if len(m.games) == 0 {
				return m, nil
			}
			m.replay = m.games[m.table.Cursor()].DeckID
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the statistics screen.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack || m.replay != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("STATISTICS - "+m.view.String(), m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summaryLines formats the aggregate statistics.
func (m StatsModel) summaryLines() []string {
	st := m.stats
	lines := []string{
		fmt.Sprintf("Played   %d", st.Played),
		fmt.Sprintf("Won      %d", st.Won),
		fmt.Sprintf("Win rate %.0f%%", st.WinRate*100),
	}
	if st.Won > 0 {
		lines = append(lines,
			fmt.Sprintf("Best     %d moves", st.BestMoves),
			fmt.Sprintf("Average  %.1f moves", st.AvgMoves),
			fmt.Sprintf("Streak   %d", st.LongestWin),
		)
	}
	if !st.LastPlayed.IsZero() {
		lines = append(lines, "Last     "+st.LastPlayed.Format("Jan 02 15:04"))
	}
	return lines
}

// renderWideLayout renders the summary sidebar next to the table.
func (m StatsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Summary\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")
	for _, line := range m.summaryLines() {
		sidebar.WriteString(line)
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders a one-line summary above the table.
func (m StatsModel) renderNarrowLayout() string {
	var b strings.Builder

	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render(strings.Join(m.summaryLines()[:3], "  |  "))
	b.WriteString(centerText(summary, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an explanatory message.
func (m StatsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Statistics are unavailable:\nthe games database could not be opened.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read games:\n" + m.loadErr.Error())
	case len(m.games) == 0 && m.view == ViewBest:
		return emptyStyle.Render("No wins recorded yet.")
	case len(m.games) == 0:
		return emptyStyle.Render("No games recorded yet.\nFinish or abandon a deal to see it here.")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// Replay returns the deck chosen for replay, or "".
func (m StatsModel) Replay() string {
	return m.replay
}

// StatsResult holds the result of running the statistics screen.
type StatsResult struct {
	Back   bool
	Replay string
}

// RunStats runs the statistics screen.
func RunStats(store *storage.Store, width, height int) (StatsResult, error) {
	model := NewStatsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return StatsResult{}, err
	}

	m, ok := finalModel.(StatsModel)
	if !ok {
		return StatsResult{}, nil
	}

	return StatsResult{Back: m.IsGoingBack(), Replay: m.Replay()}, nil
}
