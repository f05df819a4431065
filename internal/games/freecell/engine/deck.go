package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = NumSuits * NumRanks

// Alphabet is the 52-symbol alphabet used by deck identities. The symbol for a
// card is Alphabet[suitIndex*13 + rank-1].
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ErrInvalidDeckID is returned when a deck identity cannot be decoded.
var ErrInvalidDeckID = errors.New("engine: invalid deck id")

// Deck is an ordered sequence of cards consumed front-to-back by dealing.
type Deck struct {
	cards []Card
}

// OrderedDeck returns a full deck with suits in index order and ranks ascending.
func OrderedDeck() Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, MustCard(suit, rank))
		}
	}
	return Deck{cards: cards}
}

// NewDeck returns a full deck shuffled with rng.
func NewDeck(rng *rand.Rand) Deck {
	d := OrderedDeck()
	d.Shuffle(rng)
	return d
}

// ParseDeck decodes a deck identity. The identity must be 52 pairwise-distinct
// characters, each of them a symbol of Alphabet.
func ParseDeck(id string) (Deck, error) {
	if err := ValidateDeckID(id); err != nil {
		return Deck{}, err
	}

	cards := make([]Card, 0, DeckSize)
	for i, ch := range id {
		pos := strings.IndexRune(Alphabet, ch)
		if pos < 0 {
			return Deck{}, fmt.Errorf("%w: unknown symbol %q at position %d", ErrInvalidDeckID, ch, i)
		}
		cards = append(cards, cardAt(pos))
	}
	return Deck{cards: cards}, nil
}

// ValidateDeckID checks that id has exactly 52 pairwise-distinct characters.
// Alphabet membership is only checked by ParseDeck.
func ValidateDeckID(id string) error {
	runes := []rune(id)
	if len(runes) != DeckSize {
		return fmt.Errorf("%w: want %d symbols, got %d", ErrInvalidDeckID, DeckSize, len(runes))
	}
	seen := make(map[rune]struct{}, DeckSize)
	for i, r := range runes {
		if _, dup := seen[r]; dup {
			return fmt.Errorf("%w: duplicate symbol %q at position %d", ErrInvalidDeckID, r, i)
		}
		seen[r] = struct{}{}
	}
	return nil
}

// cardAt maps an alphabet position back to its card.
func cardAt(pos int) Card {
	return Card{Suit: Suit(pos / NumRanks), Rank: Rank(pos%NumRanks + 1)}
}

// Shuffle randomizes the deck order in place (Fisher-Yates).
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// ID encodes the deck's current order as a deck identity.
func (d Deck) ID() string {
	var sb strings.Builder
	sb.Grow(len(d.cards))
	for _, c := range d.cards {
		sb.WriteByte(Alphabet[c.index()])
	}
	return sb.String()
}

// Take removes and returns the front card.
func (d *Deck) Take() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// Empty reports whether every card has been taken.
func (d Deck) Empty() bool {
	return len(d.cards) == 0
}

// Len returns the number of cards left.
func (d Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in order.
func (d Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
