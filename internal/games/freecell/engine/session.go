package engine

import (
	"math/rand"
	"time"
)

// Session owns one game: the board, its undo history and the identity of the
// deck it was dealt from. A Session is not safe for concurrent use.
type Session struct {
	board   Board
	history History
	deckID  string
	rng     *rand.Rand
	undos   int
}

// New starts a session on a freshly shuffled deck. A nil rng is replaced by a
// time-seeded one.
func New(rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Session{rng: rng}
	s.deal(NewDeck(rng))
	return s
}

// NewFromID starts a session on the deck encoded by id. It returns an error
// wrapping ErrInvalidDeckID when id cannot be decoded; the caller decides
// whether to fall back to New.
func NewFromID(id string, rng *rand.Rand) (*Session, error) {
	deck, err := ParseDeck(id)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Session{rng: rng}
	s.deal(deck)
	return s, nil
}

// deal lays out deck and resets the history baseline.
func (s *Session) deal(deck Deck) {
	s.deckID = deck.ID()
	s.board = Deal(deck)
	s.history.Reset(s.board)
	s.undos = 0
}

// NewGame deals a new random deck.
func (s *Session) NewGame() {
	s.deal(NewDeck(s.rng))
}

// Restart deals the current deck again from the start.
func (s *Session) Restart() {
	deck, err := ParseDeck(s.deckID)
	if err != nil {
		// deckID always comes from Deck.ID, so this cannot happen.
		panic(err)
	}
	s.deal(deck)
}

// Undo reverts the last move. Undoing with no moves made is a no-op that
// reports false.
func (s *Session) Undo() bool {
	b, ok := s.history.Restore()
	if !ok {
		return false
	}
	s.board = b
	s.undos++
	return true
}

// Board returns the current board.
func (s *Session) Board() Board {
	return s.board
}

// DeckID returns the identity of the deck this game was dealt from.
func (s *Session) DeckID() string {
	return s.deckID
}

// Moves returns the number of moves currently applied (undone moves are not
// counted).
func (s *Session) Moves() int {
	return s.history.Len() - 1
}

// Undos returns how many moves have been undone since the deal.
func (s *Session) Undos() int {
	return s.undos
}

// CanUndo reports whether Undo would do anything.
func (s *Session) CanUndo() bool {
	return s.history.CanRestore()
}

// Over reports whether every card is on a foundation.
func (s *Session) Over() bool {
	return s.board.Over()
}

// Lost reports whether the game is not won and no legal move is left.
func (s *Session) Lost() bool {
	return !s.board.Over() && s.board.Lost()
}
