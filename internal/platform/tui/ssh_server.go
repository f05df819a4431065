package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/freecell/internal/core"
	"github.com/vovakirdan/freecell/internal/registry"
	"github.com/vovakirdan/freecell/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.freecell/host_key.
	HostKeyPath string

	// DBPath is the path to the games database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// GameID is the registry entry each session plays.
	GameID string

	// TickRate is the per-session game tick rate.
	TickRate int

	// ConfirmQuit asks before a player abandons a deal in progress.
	ConfirmQuit bool
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.freecell/games.db",
		IdleTimeout: 30 * time.Minute,
		GameID:      "freecell",
		TickRate:    core.DefaultConfig().TickRate,
		ConfirmQuit: true,
	}
}

// SSHServer wraps a Wish SSH server.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "freecell-ssh",
		})
	}
	if !registry.Exists(cfg.GameID) {
		var ids []string
		for _, info := range registry.List() {
			ids = append(ids, info.ID)
		}
		return nil, fmt.Errorf("unknown game %q (available: %s)", cfg.GameID, strings.Join(ids, ", "))
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open games database", "error", err)
		// Sessions still play; results are not recorded.
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".freecell", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}
	opts := PlayOptions{
		Player:      sshSession.User(),
		ConfirmQuit: s.config.ConfirmQuit,
		Logger:      s.logger.With("user", sshSession.User()),
	}

	model := NewSessionModel(s.store, s.config.GameID, cfg, opts)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is the part of a session currently shown.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenStats
)

// SessionModel manages one player's flow: menu -> game or statistics -> menu.
// It is the top-level model for SSH sessions.
type SessionModel struct {
	store    *storage.Store
	gameID   string
	config   core.RuntimeConfig
	opts     PlayOptions
	current  sessionScreen
	menu     MenuModel
	game     *Model
	stats    *StatsModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, gameID string, cfg core.RuntimeConfig, opts PlayOptions) SessionModel {
	return SessionModel{
		store:  store,
		gameID: gameID,
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenStats:
		return m.updateStats(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		switch selected.Choice {
		case ChoiceStats:
			stats := NewStatsModel(m.store, m.config.ScreenW, m.config.ScreenH)
			m.stats = &stats
			m.current = screenStats
			return m, m.stats.Init()
		case ChoiceDealByID:
			return m.startGame(m.menu.DeckID())
		default:
			return m.startGame("")
		}
	}

	return m, cmd
}

// startGame creates a game dealing deckID, or a random deck when empty.
func (m SessionModel) startGame(deckID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		if m.opts.Logger != nil {
			m.opts.Logger.Error("cannot create game", "error", err)
		}
		return m.backToMenu()
	}

	cfg := m.config
	cfg.Seed = time.Now().UnixNano()
	cfg.DeckID = deckID

	model := NewModel(game, m.store, cfg, m.opts)
	model.embedded = true
	m.game = &model
	m.current = screenGame

	return m, m.game.Init()
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.game = nil
	m.stats = nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsExiting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.IsQuitting() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateStats handles updates when the statistics screen is shown.
func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.stats.Update(msg)
	if statsModel, ok := newModel.(StatsModel); ok {
		m.stats = &statsModel
	}

	switch {
	case m.stats.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.stats.Replay() != "":
		return m.startGame(m.stats.Replay())
	case m.stats.IsGoingBack():
		return m.backToMenu()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenStats:
		return m.stats.View()
	default:
		return m.menu.View()
	}
}
