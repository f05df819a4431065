// Package engine implements the FreeCell rules: cards and decks, the board,
// move legality, the manual/automatic move algorithms, undo history and
// terminal-state detection.
//
// It has no dependencies outside the standard library and performs no I/O,
// so the platform layer can drive it from any front end.
package engine

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidCard is returned when a card is built from an out-of-range rank or
// an unknown suit.
var ErrInvalidCard = errors.New("engine: invalid card")

// Suit is a card suit. The declaration order is the suit index used by deck
// identities.
type Suit int

const (
	Diamonds Suit = iota
	Clubs
	Hearts
	Spades
)

// NumSuits is the number of suits in a deck.
const NumSuits = 4

// Suits lists all suits in index order.
var Suits = [NumSuits]Suit{Diamonds, Clubs, Hearts, Spades}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Diamonds && s <= Spades
}

// Symbol returns the unicode suit glyph.
func (s Suit) Symbol() string {
	switch s {
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Letter returns a single ASCII letter for the suit.
func (s Suit) Letter() string {
	switch s {
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// String returns the suit name.
func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "Suit(" + strconv.Itoa(int(s)) + ")"
	}
}

// Color is a suit color.
type Color int

const (
	Red Color = iota
	Black
)

// Opposite returns the other color.
func (c Color) Opposite() Color {
	if c == Red {
		return Black
	}
	return Red
}

// String returns the color name.
func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// Color returns the color of the suit.
func (s Suit) Color() Color {
	if s == Diamonds || s == Hearts {
		return Red
	}
	return Black
}

// Rank is a card rank from Ace (1) to King (13).
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// NumRanks is the number of ranks per suit.
const NumRanks = 13

// Valid reports whether r is within [Ace, King].
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// String returns the short rank label: A, 2..10, J, Q, K.
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card is an immutable playing card value.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard builds a card, failing with ErrInvalidCard for an unknown suit or a
// rank outside [Ace, King].
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: rank is out of bounds: %d", ErrInvalidCard, rank)
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: unknown suit: %d", ErrInvalidCard, suit)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// MustCard is like NewCard but panics on invalid input.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Color returns the card color.
func (c Card) Color() Color {
	return c.Suit.Color()
}

// String returns the rank followed by the suit glyph, e.g. "10♥".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Short returns an ASCII label, e.g. "10H".
func (c Card) Short() string {
	return c.Rank.String() + c.Suit.Letter()
}

// index is the card's position in the identity alphabet.
func (c Card) index() int {
	return int(c.Suit)*NumRanks + int(c.Rank) - 1
}
