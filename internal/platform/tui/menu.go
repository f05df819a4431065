package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/freecell/internal/core"
	"github.com/vovakirdan/freecell/internal/games/freecell/engine"
	"github.com/vovakirdan/freecell/internal/storage"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceNewGame
	ChoiceDealByID
	ChoiceStats
	ChoiceQuit
)

// MenuItem represents a selectable menu entry.
type MenuItem struct {
	Choice MenuChoice
	Title  string
	Hint   string
}

var menuItems = []MenuItem{
	{ChoiceNewGame, "New game", "Deal a random deck"},
	{ChoiceDealByID, "Deal by ID", "Replay a deck from its 52-letter id"},
	{ChoiceStats, "Statistics", "Recent and best games"},
	{ChoiceQuit, "Quit", ""},
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursor     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	summary   string

	entering bool // Deck id prompt is open
	input    textinput.Model
	inputErr string

	quitting bool
	selected *MenuItem
	deckID   string
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	ti := textinput.New()
	ti.Placeholder = "52 letters, a-z and A-Z"
	ti.CharLimit = engine.DeckSize
	ti.Width = engine.DeckSize
	ti.Prompt = "Deck: "

	return MenuModel{
		items:     menuItems,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		summary:   statsSummary(store),
		input:     ti,
	}
}

// statsSummary returns a one-line record of past games, or "" without any.
func statsSummary(store *storage.Store) string {
	if store == nil {
		return ""
	}
	st, err := store.Stats()
	if err != nil || st.Played == 0 {
		return ""
	}
	return fmt.Sprintf("Played %d  Won %d (%.0f%%)", st.Played, st.Won, st.WinRate*100)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.entering {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	if m.entering {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = core.Wrap(m.cursor-1, len(m.items))

	case MenuActionDown:
		m.cursor = core.Wrap(m.cursor+1, len(m.items))

	case MenuActionSelect:
		item := m.items[m.cursor]
		switch item.Choice {
		case ChoiceQuit:
			m.quitting = true
			return m, tea.Quit
		case ChoiceDealByID:
			m.entering = true
			m.inputErr = ""
			m.input.SetValue("")
			return m, m.input.Focus()
		}
		m.selected = &item
		return m, tea.Quit
	}

	return m, nil
}

// handlePromptKey handles the deck id prompt.
func (m MenuModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.entering = false
		m.input.Blur()
		return m, nil

	case "enter":
		id := strings.TrimSpace(m.input.Value())
		if err := engine.ValidateDeckID(id); err != nil {
			m.inputErr = fmt.Sprintf("Not a deck id (%d of %d letters)", len(id), engine.DeckSize)
			return m, nil
		}
		item := m.items[m.cursor]
		m.selected = &item
		m.deckID = id
		m.entering = false
		m.input.Blur()
		return m, tea.Quit
	}

	m.inputErr = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("F R E E C E L L"), m.width))
	b.WriteString("\n\n")
	if m.summary != "" {
		b.WriteString(centerText(menuHintStyle.Render(m.summary), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursor.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if hint := m.items[m.cursor].Hint; hint != "" {
		b.WriteString(centerText(menuHintStyle.Render(hint), m.width))
		b.WriteString("\n")
	}

	if m.entering {
		b.WriteString("\n")
		b.WriteString(centerText(m.input.View(), m.width))
		b.WriteString("\n")
		if m.inputErr != "" {
			b.WriteString(centerText(menuErrStyle.Render(m.inputErr), m.width))
			b.WriteString("\n")
		}
		b.WriteString(centerText(menuHintStyle.Render("Enter: deal  |  Esc: cancel"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// DeckID returns the deck entered for ChoiceDealByID.
func (m MenuModel) DeckID() string {
	return m.deckID
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	DeckID string
	Config core.RuntimeConfig
	Quit   bool
}

// result converts the final menu state into a MenuResult.
func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.Config()}
	switch {
	case m.IsQuitting(), m.Selected() == nil:
		res.Quit = true
	default:
		res.Choice = m.Selected().Choice
		res.DeckID = m.DeckID()
	}
	return res
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
