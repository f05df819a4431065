package freecell

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateFinishing   GameStateType = "finishing"
	StateStuck       GameStateType = "stuck"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the adapter state for tests and debugging.
type Snapshot struct {
	Tick       uint64
	DeckID     string
	Moves      int
	Undos      int
	Foundation int
	Cursor     Slot
	Selected   *Slot
	Status     string
	State      GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.Over():
		state = StateWin
	case g.finishing:
		state = StateFinishing
	case g.session.Lost():
		state = StateStuck
	}

	var sel *Slot
	if g.selected != nil {
		s := *g.selected
		sel = &s
	}

	return Snapshot{
		Tick:       g.tick,
		DeckID:     g.session.DeckID(),
		Moves:      g.session.Moves(),
		Undos:      g.session.Undos(),
		Foundation: g.session.Board().FoundationCount(),
		Cursor:     g.cursor,
		Selected:   sel,
		Status:     g.status,
		State:      state,
	}
}
