package engine

// Over reports whether the game is won: every cell and cascade is empty, so all
// 52 cards are on foundations.
func (b Board) Over() bool {
	for _, c := range b.cells {
		if len(c) > 0 {
			return false
		}
	}
	for _, c := range b.cascades {
		if len(c) > 0 {
			return false
		}
	}
	return true
}

// Lost reports whether no single legal move exists. Candidate moves are tried
// in the order cascade to cascade, cascade to cell, cascade to foundation,
// cell to foundation, cell to cascade. Only predicates are evaluated; the board
// is never modified.
//
// Lost is not a solvability proof, and a won board also has no moves left.
func (b Board) Lost() bool {
	for i, src := range b.cascades {
		card, ok := src.Top()
		if !ok {
			continue
		}
		for j, dst := range b.cascades {
			if i != j && CanPlaceOnCascade(dst, card) {
				return false
			}
		}
	}

	for _, src := range b.cascades {
		card, ok := src.Top()
		if !ok {
			continue
		}
		for _, cell := range b.cells {
			if CanPlaceInCell(cell, card) {
				return false
			}
		}
	}

	for _, src := range b.cascades {
		card, ok := src.Top()
		if !ok {
			continue
		}
		if b.acceptsOnFoundation(card) {
			return false
		}
	}

	for _, cell := range b.cells {
		card, ok := cell.Top()
		if !ok {
			continue
		}
		if b.acceptsOnFoundation(card) {
			return false
		}
	}

	for _, cell := range b.cells {
		card, ok := cell.Top()
		if !ok {
			continue
		}
		for _, dst := range b.cascades {
			if CanPlaceOnCascade(dst, card) {
				return false
			}
		}
	}

	return true
}

func (b Board) acceptsOnFoundation(card Card) bool {
	for _, f := range b.foundations {
		if CanPlaceOnFoundation(f, card) {
			return true
		}
	}
	return false
}
