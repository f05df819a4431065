package engine

// Board dimensions.
const (
	NumCells       = 4
	NumFoundations = 4
	NumCascades    = 8
)

// Board is the game state: four single-card cells, four foundations and eight
// cascades. Piles are copy-on-write, so a Board value is an independent
// snapshot and restoring one is a plain assignment.
type Board struct {
	cells       [NumCells]Pile
	foundations [NumFoundations]Pile
	cascades    [NumCascades]Pile
}

// Deal distributes the deck round-robin into the cascades. Cells and
// foundations start empty.
func Deal(deck Deck) Board {
	var b Board
	for c := 0; !deck.Empty(); c = (c + 1) % NumCascades {
		card, _ := deck.Take()
		b.cascades[c] = b.cascades[c].push(card)
	}
	return b
}

// Cell returns the card held by cell i, if any.
func (b Board) Cell(i int) (Card, bool) {
	if i < 0 || i >= NumCells {
		return Card{}, false
	}
	return b.cells[i].Top()
}

// Foundation returns a copy of foundation i, bottom first.
func (b Board) Foundation(i int) []Card {
	if i < 0 || i >= NumFoundations {
		return nil
	}
	return clonePile(b.foundations[i])
}

// Cascade returns a copy of cascade i, bottom first.
func (b Board) Cascade(i int) []Card {
	if i < 0 || i >= NumCascades {
		return nil
	}
	return clonePile(b.cascades[i])
}

// CascadeLen returns the number of cards in cascade i.
func (b Board) CascadeLen(i int) int {
	if i < 0 || i >= NumCascades {
		return 0
	}
	return len(b.cascades[i])
}

// FoundationCount returns how many cards sit on foundations.
func (b Board) FoundationCount() int {
	n := 0
	for _, f := range b.foundations {
		n += len(f)
	}
	return n
}

// Cards returns every card on the board: cells, then foundations, then
// cascades.
func (b Board) Cards() []Card {
	out := make([]Card, 0, DeckSize)
	for _, p := range b.cells {
		out = append(out, p...)
	}
	for _, p := range b.foundations {
		out = append(out, p...)
	}
	for _, p := range b.cascades {
		out = append(out, p...)
	}
	return out
}

// Equal reports whether two boards hold the same cards in the same places.
func (b Board) Equal(o Board) bool {
	for i := range b.cells {
		if !pilesEqual(b.cells[i], o.cells[i]) {
			return false
		}
	}
	for i := range b.foundations {
		if !pilesEqual(b.foundations[i], o.foundations[i]) {
			return false
		}
	}
	for i := range b.cascades {
		if !pilesEqual(b.cascades[i], o.cascades[i]) {
			return false
		}
	}
	return true
}

// pile returns the pile addressed by ref.
func (b *Board) pile(ref pileRef) Pile {
	switch ref.kind {
	case kindCell:
		return b.cells[ref.index]
	case kindFoundation:
		return b.foundations[ref.index]
	default:
		return b.cascades[ref.index]
	}
}

// setPile replaces the pile addressed by ref.
func (b *Board) setPile(ref pileRef, p Pile) {
	switch ref.kind {
	case kindCell:
		b.cells[ref.index] = p
	case kindFoundation:
		b.foundations[ref.index] = p
	default:
		b.cascades[ref.index] = p
	}
}

// canPlace applies the predicate matching the destination kind.
func (b *Board) canPlace(dst pileRef, card Card) bool {
	p := b.pile(dst)
	switch dst.kind {
	case kindCell:
		return CanPlaceInCell(p, card)
	case kindFoundation:
		return CanPlaceOnFoundation(p, card)
	default:
		return CanPlaceOnCascade(p, card)
	}
}

// source resolves a move source to its pile and card. A cascade source must
// reference the cascade's top card.
func (b *Board) source(src Location) (pileRef, Card, bool) {
	switch loc := src.(type) {
	case CellRef:
		if loc.Index < 0 || loc.Index >= NumCells {
			return pileRef{}, Card{}, false
		}
		card, ok := b.cells[loc.Index].Top()
		return cellPile(loc.Index), card, ok
	case CascadeRef:
		if loc.Index < 0 || loc.Index >= NumCascades {
			return pileRef{}, Card{}, false
		}
		cascade := b.cascades[loc.Index]
		if len(cascade) == 0 || loc.Card != len(cascade)-1 {
			return pileRef{}, Card{}, false
		}
		return cascadePile(loc.Index), cascade[loc.Card], true
	default:
		return pileRef{}, Card{}, false
	}
}

// transfer moves the top card of src onto dst without checking legality.
func (b *Board) transfer(src, dst pileRef) {
	from := b.pile(src)
	card, ok := from.Top()
	if !ok {
		return
	}
	b.setPile(src, from.pop())
	b.setPile(dst, b.pile(dst).push(card))
}

func clonePile(p Pile) []Card {
	out := make([]Card, len(p))
	copy(out, p)
	return out
}

func pilesEqual(a, b Pile) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
