// Package freecell adapts the FreeCell engine to the platform tick loop:
// a keyboard cursor, pick-and-drop card selection and timed auto-finish.
package freecell

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/freecell/internal/config"
	"github.com/vovakirdan/freecell/internal/core"
	"github.com/vovakirdan/freecell/internal/games/freecell/engine"
	"github.com/vovakirdan/freecell/internal/registry"
)

const (
	gameID    = "freecell"
	gameTitle = "FreeCell"
)

// Row selects one of the two cursor rows.
type Row int

const (
	RowTop      Row = iota // Cells 0-3, then foundations 0-3
	RowCascades            // Cascades 0-7
)

const rowWidth = 8

// Slot is a cursor position.
type Slot struct {
	Row Row
	Col int
}

func (s Slot) isCell() bool       { return s.Row == RowTop && s.Col < engine.NumCells }
func (s Slot) isFoundation() bool { return s.Row == RowTop && s.Col >= engine.NumCells }

// Game is the FreeCell adapter.
type Game struct {
	cfg      config.FreecellConfig
	session  *engine.Session
	tickRate int
	tick     uint64

	cursor   Slot
	selected *Slot
	status   string

	// Auto-finish runs one Easymove every FinishInterval ticks while active.
	finishing bool
	finishIn  int

	dealTicks uint64
	recorded  bool // Outcome of the current deal already reported

	screenW  int
	screenH  int
	tooSmall bool
}

var defaultConfig = config.DefaultFreecellConfig()

// SetConfig sets the configuration used by games created through the registry.
func SetConfig(cfg config.FreecellConfig) {
	cfg.Normalize()
	defaultConfig = cfg
}

// New creates a FreeCell game with the given configuration.
func New(cfg config.FreecellConfig) *Game {
	cfg.Normalize()
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New(defaultConfig)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return gameTitle
}

// Reset deals a new game. A non-empty cfg.DeckID is dealt as given; an
// invalid one falls back to a random deck and says so in the status line.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.cursor = Slot{Row: RowCascades}
	g.resetDeal()

	if cfg.DeckID != "" {
		s, err := engine.NewFromID(cfg.DeckID, rng)
		if err == nil {
			g.session = s
		} else {
			g.session = engine.New(rng)
			g.status = "Invalid deck id, dealt a random deck"
		}
	} else {
		g.session = engine.New(rng)
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// resetDeal clears the per-deal adapter state.
func (g *Game) resetDeal() {
	g.selected = nil
	g.status = ""
	g.finishing = false
	g.finishIn = 0
	g.dealTicks = 0
	g.recorded = false
}

// Resize updates the layout for a new terminal size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minWidth || h < minHeight
}

// Session exposes the underlying engine session.
func (g *Game) Session() *engine.Session {
	return g.session
}

// Step applies one tick of input and runs the auto-finish timer.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if !g.session.Over() {
		g.dealTicks++
	}

	var res core.StepResult
	if g.tooSmall {
		res.State = g.State()
		return res
	}

	switch {
	case in.Has(core.ActionNewGame):
		res.Ended = g.endDeal()
		g.session.NewGame()
		g.resetDeal()
		g.status = "New deal"
	case in.Has(core.ActionRestart):
		res.Ended = g.endDeal()
		g.session.Restart()
		g.resetDeal()
		g.status = "Restarted this deal"
	}

	if in.Has(core.ActionUndo) {
		g.selected = nil
		g.finishing = false
		if g.session.Undo() {
			g.status = "Undone"
			res.Moved = true
		} else {
			g.status = "Nothing to undo"
		}
	}

	g.moveCursor(in)

	if in.Has(core.ActionBack) {
		g.selected = nil
	}

	if in.Has(core.ActionConfirm) && g.confirm() {
		res.Moved = true
	}

	if in.Has(core.ActionAuto) && g.auto() {
		res.Moved = true
	}

	if in.Has(core.ActionFinish) {
		g.selected = nil
		g.finishing = false
		if n := g.session.AutoFinish(); n > 0 {
			g.status = fmt.Sprintf("%d to the foundations", n)
			res.Moved = true
		} else {
			g.status = "No safe cards to send up"
		}
	}

	if g.stepFinish() {
		res.Moved = true
	}

	if g.session.Over() && !g.recorded {
		o, _ := g.Outcome()
		g.recorded = true
		g.finishing = false
		res.Ended = &o
	}

	res.State = g.State()
	return res
}

// endDeal returns the outcome of the current deal if it still needs
// recording, and marks it recorded.
func (g *Game) endDeal() *core.Outcome {
	o, ok := g.Outcome()
	if !ok {
		return nil
	}
	g.recorded = true
	return &o
}

func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = RowTop
	case in.Has(core.ActionDown):
		g.cursor.Row = RowCascades
	}
	switch {
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Wrap(g.cursor.Col-1, rowWidth)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Wrap(g.cursor.Col+1, rowWidth)
	}
}

// source returns the engine location of the movable card at slot, if any.
func (g *Game) source(s Slot) (engine.Location, engine.Card, bool) {
	b := g.session.Board()
	switch {
	case s.isFoundation():
		return nil, engine.Card{}, false
	case s.isCell():
		c, ok := b.Cell(s.Col)
		if !ok {
			return nil, engine.Card{}, false
		}
		return engine.CellRef{Index: s.Col}, c, true
	default:
		pile := b.Cascade(s.Col)
		if len(pile) == 0 {
			return nil, engine.Card{}, false
		}
		return engine.CascadeRef{Index: s.Col, Card: len(pile) - 1}, pile[len(pile)-1], true
	}
}

// confirm picks up the card under the cursor, or drops the selected one.
func (g *Game) confirm() bool {
	if g.selected == nil {
		_, card, ok := g.source(g.cursor)
		if !ok {
			if g.cursor.isFoundation() {
				g.status = "Foundation cards stay put"
			} else {
				g.status = "Nothing to pick up"
			}
			return false
		}
		sel := g.cursor
		g.selected = &sel
		g.status = "Picked up " + g.cardLabel(card)
		return false
	}

	from := *g.selected
	g.selected = nil
	if from == g.cursor {
		g.status = ""
		return false
	}

	src, card, ok := g.source(from)
	if !ok {
		return false
	}

	var moved bool
	switch {
	case g.cursor.isFoundation():
		if g.foundationAccepts(card) {
			moved = g.session.Automove(src)
		}
	case g.cursor.isCell():
		moved = g.session.Move(engine.CellRef{Index: g.cursor.Col}, src)
	default:
		moved = g.session.Move(engine.CascadeRef{Index: g.cursor.Col}, src)
	}

	if !moved {
		g.status = "Can't put " + g.cardLabel(card) + " there"
		return false
	}
	g.afterMove()
	return true
}

// auto sends the card under the cursor to the first place that takes it.
func (g *Game) auto() bool {
	g.selected = nil
	src, card, ok := g.source(g.cursor)
	if !ok {
		g.status = "Nothing to move"
		return false
	}
	if !g.session.Automove(src) {
		g.status = "No place for " + g.cardLabel(card)
		return false
	}
	g.afterMove()
	return true
}

func (g *Game) foundationAccepts(card engine.Card) bool {
	b := g.session.Board()
	for i := range engine.NumFoundations {
		if engine.CanPlaceOnFoundation(b.Foundation(i), card) {
			return true
		}
	}
	return false
}

// afterMove clears the status and arms the auto-finish timer.
func (g *Game) afterMove() {
	g.status = ""
	if g.cfg.Gameplay.AutoFinish {
		g.finishing = true
		g.finishIn = g.cfg.Gameplay.FinishInterval
	}
}

// stepFinish counts down the auto-finish timer and promotes one card when it
// expires. The timer stops at the first tick with nothing to promote.
func (g *Game) stepFinish() bool {
	if !g.finishing {
		return false
	}
	g.finishIn--
	if g.finishIn > 0 {
		return false
	}
	if g.session.Easymove() {
		g.finishIn = g.cfg.Gameplay.FinishInterval
		return true
	}
	g.finishing = false
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	won := g.session.Over()
	return core.GameState{
		Score:    g.session.Board().FoundationCount(),
		Moves:    g.session.Moves(),
		GameOver: won || g.session.Lost(),
		Won:      won,
	}
}

// Outcome returns the result of the current deal. It reports false when the
// deal was already recorded or nothing has been played yet.
func (g *Game) Outcome() (core.Outcome, bool) {
	o := core.Outcome{
		DeckID:     g.session.DeckID(),
		Moves:      g.session.Moves(),
		Undos:      g.session.Undos(),
		Foundation: g.session.Board().FoundationCount(),
		Won:        g.session.Over(),
		Duration:   g.dealDuration(),
	}
	played := o.Moves > 0 || o.Undos > 0
	return o, played && !g.recorded
}

func (g *Game) dealDuration() time.Duration {
	if g.tickRate <= 0 {
		return 0
	}
	return time.Duration(g.dealTicks) * time.Second / time.Duration(g.tickRate)
}
