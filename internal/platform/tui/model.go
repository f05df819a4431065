package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/freecell/internal/core"
	"github.com/vovakirdan/freecell/internal/registry"
	"github.com/vovakirdan/freecell/internal/storage"
)

// helpHeight is the number of terminal rows reserved below the board.
const helpHeight = 1

var (
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	confirmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// PlayOptions carries per-player settings for a game session.
type PlayOptions struct {
	Player      string      // Recorded with every saved game
	ConfirmQuit bool        // Ask before abandoning a deal in progress
	Logger      *log.Logger // Optional; storage failures are logged here
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       PlayOptions
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	tickID     uint64

	embedded   bool // Running inside SessionModel: never send tea.Quit
	confirming bool // First quit press seen, waiting for the second
	quitting   bool // Left the game
	exiting    bool // Ctrl+C: leave the whole program
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts PlayOptions) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		tickID:     nextTickID(),
	}
}

func boardHeight(h int) int {
	return max(h-helpHeight, 0)
}

// Init deals the first game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = boardHeight(cfg.ScreenH)
	m.game.Reset(cfg)
	return tickCmd(m.tickID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.recordAbandoned()
		m.quitting = true
		m.exiting = true
		return m, m.quitCmd()

	case key.Matches(msg, m.keys.Quit):
		if m.opts.ConfirmQuit && !m.confirming && m.unfinished() {
			m.confirming = true
			return m, nil
		}
		m.recordAbandoned()
		m.quitting = true
		return m, m.quitCmd()

	case key.Matches(msg, m.keys.Screenshot):
		m.confirming = false
		m.saveScreenshot()
		return m, nil
	}

	m.confirming = false
	if action := m.keys.Action(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) quitCmd() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// unfinished reports whether leaving now would abandon a deal in progress.
func (m Model) unfinished() bool {
	_, ok := m.game.Outcome()
	return ok && !m.gameState.Won
}

// handleResize keeps the game running and only relays the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := boardHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one game step and records a finished deal.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Ended != nil {
		m.save(*result.Ended)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.tickID, m.config.TickRate)
}

// recordAbandoned saves the deal being left, if anything was played.
func (m Model) recordAbandoned() {
	if o, ok := m.game.Outcome(); ok {
		m.save(o)
	}
}

func (m Model) save(o core.Outcome) {
	if m.store == nil {
		return
	}
	rec := storage.GameRecord{
		DeckID:     o.DeckID,
		Player:     m.opts.Player,
		Moves:      o.Moves,
		Undos:      o.Undos,
		Foundation: o.Foundation,
		Won:        o.Won,
		Duration:   o.Duration,
	}
	id, err := m.store.SaveGame(rec)
	if m.opts.Logger == nil {
		return
	}
	if err != nil {
		m.opts.Logger.Warn("could not save game", "deck", o.DeckID, "error", err)
		return
	}
	m.opts.Logger.Debug("game saved", "id", id, "won", o.Won, "moves", o.Moves)
}

// saveScreenshot writes the current board as plain text under
// ~/.freecell/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".freecell", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the board and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.confirming {
		footer = confirmStyle.Render("Abandon this deal? q: yes  any other key: keep playing")
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// IsQuitting returns true if the player left the game.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// IsExiting returns true if the player asked to leave the program entirely.
func (m Model) IsExiting() bool {
	return m.exiting
}

// Run starts the Bubble Tea program with the given game. exited reports
// whether the player pressed Ctrl+C rather than leaving the game normally.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts PlayOptions) (exited bool, err error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.IsExiting(), nil
}
