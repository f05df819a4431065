package engine

// Pile is an ordered stack of cards; the last element is the top.
type Pile []Card

// Top returns the top card of the pile.
func (p Pile) Top() (Card, bool) {
	if len(p) == 0 {
		return Card{}, false
	}
	return p[len(p)-1], true
}

// push returns a new pile with c on top. It never writes into p's backing
// array, so board values copied before the push stay intact.
func (p Pile) push(c Card) Pile {
	out := make(Pile, len(p)+1)
	copy(out, p)
	out[len(p)] = c
	return out
}

// pop returns the pile without its top card.
func (p Pile) pop() Pile {
	if len(p) == 0 {
		return p
	}
	return p[:len(p)-1:len(p)-1]
}

// CanPlaceInCell reports whether card may be parked in cell: the cell must be
// empty.
func CanPlaceInCell(cell Pile, card Card) bool {
	return len(cell) == 0
}

// CanPlaceOnFoundation reports whether card may be added to foundation: an
// empty foundation takes only an Ace, otherwise the card must be the next rank
// of the same suit.
func CanPlaceOnFoundation(foundation Pile, card Card) bool {
	top, ok := foundation.Top()
	if !ok {
		return card.Rank == Ace
	}
	return card.Suit == top.Suit && card.Rank == top.Rank+1
}

// CanPlaceOnCascade reports whether card may be added to cascade: anything goes
// on an empty cascade, otherwise the card must be one rank lower and of the
// opposite color.
func CanPlaceOnCascade(cascade Pile, card Card) bool {
	top, ok := cascade.Top()
	if !ok {
		return true
	}
	return card.Color() != top.Color() && card.Rank == top.Rank-1
}
