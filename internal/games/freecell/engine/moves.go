package engine

// Move moves the single card at src onto dst. A cell source may only go to a
// cascade; a cascade source may go to a cell or another cascade and must be
// the cascade's top card. Manual moves never target a foundation.
//
// On failure the board is left untouched and Move reports false.
func (s *Session) Move(dst, src Location) bool {
	from, card, ok := s.board.source(src)
	if !ok {
		return false
	}

	var to pileRef
	switch d := dst.(type) {
	case CellRef:
		if from.kind == kindCell || d.Index < 0 || d.Index >= NumCells {
			return false
		}
		to = cellPile(d.Index)
	case CascadeRef:
		if d.Index < 0 || d.Index >= NumCascades {
			return false
		}
		if from.kind == kindCascade && from.index == d.Index {
			return false
		}
		to = cascadePile(d.Index)
	default:
		return false
	}

	if !s.board.canPlace(to, card) {
		return false
	}
	s.commit(from, to)
	return true
}

// Automove moves the card at src to the first legal destination of a fixed
// search order and reports whether a move was made.
//
// From a cell: foundations, then non-empty cascades, then empty cascades.
//
// From a cascade, with left and right being the cascades of lower and higher
// index: a King that is not alone in its column first tries foundations, then
// empty cascades on the right, then empty cascades on the left. Otherwise, or
// if that found nothing: foundations, non-empty cascades on the right, cells,
// any cascade on the left, empty cascades on the right.
func (s *Session) Automove(src Location) bool {
	from, card, ok := s.board.source(src)
	if !ok {
		return false
	}

	if from.kind == kindCell {
		return s.place(from, card, s.foundationRefs()) ||
			s.place(from, card, s.cascadeRefs(0, NumCascades, nonEmpty)) ||
			s.place(from, card, s.cascadeRefs(0, NumCascades, empty))
	}

	i := from.index
	if card.Rank == King && s.board.CascadeLen(i) > 1 {
		if s.place(from, card, s.foundationRefs()) ||
			s.place(from, card, s.cascadeRefs(i+1, NumCascades, empty)) ||
			s.place(from, card, s.cascadeRefs(0, i, empty)) {
			return true
		}
	}

	return s.place(from, card, s.foundationRefs()) ||
		s.place(from, card, s.cascadeRefs(i+1, NumCascades, nonEmpty)) ||
		s.place(from, card, s.cellRefs()) ||
		s.place(from, card, s.cascadeRefs(0, i, anyPile)) ||
		s.place(from, card, s.cascadeRefs(i+1, NumCascades, empty))
}

// exposed is a top card together with the pile holding it.
type exposed struct {
	from pileRef
	card Card
}

// Easymove promotes at most one card to its foundation, and only when no card
// of the opposite color could still need it as a landing spot. It reports
// whether a card was promoted. Call it repeatedly to auto-finish a game.
func (s *Session) Easymove() bool {
	tops := s.exposedCards()
	if len(tops) == 0 {
		return false
	}

	minRank := King
	for _, t := range tops {
		if t.card.Rank < minRank {
			minRank = t.card.Rank
		}
	}

	// An empty foundation counts as rank 1: the Ace is not placed yet.
	var minBySuit [NumSuits]Rank
	for i := range minBySuit {
		minBySuit[i] = Ace
	}
	for _, f := range s.board.foundations {
		if top, ok := f.Top(); ok {
			minBySuit[top.Suit] = top.Rank
		}
	}
	minByColor := map[Color]Rank{
		Red:   min(minBySuit[Diamonds], minBySuit[Hearts]),
		Black: min(minBySuit[Clubs], minBySuit[Spades]),
	}

	for _, t := range tops {
		if t.card.Rank != minRank {
			continue
		}
		if t.card.Rank > minByColor[t.card.Color().Opposite()]+1 {
			continue
		}
		if s.place(t.from, t.card, s.foundationRefs()) {
			return true
		}
	}
	return false
}

// AutoFinish runs Easymove until it stops promoting cards and returns the
// number of promotions.
func (s *Session) AutoFinish() int {
	n := 0
	for s.Easymove() {
		n++
	}
	return n
}

// exposedCards collects the top card of every non-empty cell, then every
// non-empty cascade.
func (s *Session) exposedCards() []exposed {
	var tops []exposed
	for i, c := range s.board.cells {
		if card, ok := c.Top(); ok {
			tops = append(tops, exposed{from: cellPile(i), card: card})
		}
	}
	for i, c := range s.board.cascades {
		if card, ok := c.Top(); ok {
			tops = append(tops, exposed{from: cascadePile(i), card: card})
		}
	}
	return tops
}

// place commits the move to the first destination that accepts card.
func (s *Session) place(from pileRef, card Card, dsts []pileRef) bool {
	for _, to := range dsts {
		if s.board.canPlace(to, card) {
			s.commit(from, to)
			return true
		}
	}
	return false
}

// commit records the pre-move board and applies the move.
func (s *Session) commit(from, to pileRef) {
	s.history.Snapshot(s.board)
	s.board.transfer(from, to)
}

type pileFilter func(Pile) bool

func empty(p Pile) bool    { return len(p) == 0 }
func nonEmpty(p Pile) bool { return len(p) > 0 }
func anyPile(Pile) bool    { return true }

func (s *Session) foundationRefs() []pileRef {
	refs := make([]pileRef, NumFoundations)
	for i := range refs {
		refs[i] = foundationPile(i)
	}
	return refs
}

func (s *Session) cellRefs() []pileRef {
	refs := make([]pileRef, NumCells)
	for i := range refs {
		refs[i] = cellPile(i)
	}
	return refs
}

// cascadeRefs returns cascades in [lo, hi) that pass keep, in index order.
func (s *Session) cascadeRefs(lo, hi int, keep pileFilter) []pileRef {
	var refs []pileRef
	for i := lo; i < hi; i++ {
		if keep(s.board.cascades[i]) {
			refs = append(refs, cascadePile(i))
		}
	}
	return refs
}
