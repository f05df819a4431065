package engine

import (
	"math/rand"
	"testing"
)

func TestMoveCascadeToCell(t *testing.T) {
	s := sessionFrom(Deal(OrderedDeck()))
	top := s.Board().Cascade(0)[6]

	if !s.Move(CellRef{Index: 2}, CascadeRef{Index: 0, Card: 6}) {
		t.Fatal("moving a top card to an empty cell should succeed")
	}
	if got, ok := s.Board().Cell(2); !ok || got != top {
		t.Errorf("cell 2 = %v, %v, want %v", got, ok, top)
	}
	if s.Board().CascadeLen(0) != 6 {
		t.Errorf("cascade 0 length = %d, want 6", s.Board().CascadeLen(0))
	}
	if s.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", s.Moves())
	}
	assertFullDeck(t, s.Board())
}

func TestMoveRejections(t *testing.T) {
	var b Board
	b.cells[0] = Pile{card(Hearts, 7)}
	b.cells[1] = Pile{card(Clubs, 3)}
	b.cascades[0] = Pile{card(Spades, 9), card(Spades, 8)}
	b.cascades[1] = Pile{card(Spades, 4)}
	b.cascades[2] = Pile{card(Clubs, Queen)}

	tests := []struct {
		name string
		dst  Location
		src  Location
	}{
		{"cascade source below top", CellRef{Index: 2}, CascadeRef{Index: 0, Card: 0}},
		{"cascade source past top", CellRef{Index: 2}, CascadeRef{Index: 0, Card: 2}},
		{"empty cascade source", CellRef{Index: 2}, CascadeRef{Index: 5, Card: 0}},
		{"empty cell source", CascadeRef{Index: 3}, CellRef{Index: 3}},
		{"cell to cell", CellRef{Index: 2}, CellRef{Index: 0}},
		{"cascade to occupied cell", CellRef{Index: 0}, CascadeRef{Index: 1, Card: 0}},
		{"cell to cascade same color", CascadeRef{Index: 1}, CellRef{Index: 1}},
		{"cell to cascade wrong rank", CascadeRef{Index: 2}, CellRef{Index: 0}},
		{"cascade onto itself", CascadeRef{Index: 0}, CascadeRef{Index: 0, Card: 1}},
		{"cell index out of range", CascadeRef{Index: 4}, CellRef{Index: 9}},
		{"cascade index out of range", CellRef{Index: 2}, CascadeRef{Index: -1, Card: 0}},
		{"destination out of range", CascadeRef{Index: 8}, CellRef{Index: 0}},
		{"nil destination", nil, CellRef{Index: 0}},
		{"nil source", CellRef{Index: 2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sessionFrom(b)
			if s.Move(tt.dst, tt.src) {
				t.Errorf("Move(%v, %v) should fail", tt.dst, tt.src)
			}
			if !s.Board().Equal(b) {
				t.Error("failed move changed the board")
			}
			if s.Moves() != 0 {
				t.Errorf("failed move recorded history: Moves() = %d", s.Moves())
			}
		})
	}
}

func TestMoveCellToCascade(t *testing.T) {
	var b Board
	b.cells[0] = Pile{card(Hearts, 7)}
	b.cascades[0] = Pile{card(Spades, 8)}

	s := sessionFrom(b)
	if !s.Move(CascadeRef{Index: 0}, CellRef{Index: 0}) {
		t.Fatal("7♥ onto 8♠ should succeed")
	}
	if _, ok := s.Board().Cell(0); ok {
		t.Error("cell 0 should be empty after the move")
	}
	if got := s.Board().Cascade(0); len(got) != 2 || got[1] != card(Hearts, 7) {
		t.Errorf("cascade 0 = %v, want [8♠ 7♥]", got)
	}
}

func TestMoveToEmptyCascade(t *testing.T) {
	var b Board
	b.cascades[0] = Pile{card(Spades, 2), card(Hearts, King)}

	s := sessionFrom(b)
	if !s.Move(CascadeRef{Index: 5}, CascadeRef{Index: 0, Card: 1}) {
		t.Fatal("any card may move to an empty cascade")
	}
	if got := s.Board().Cascade(5); len(got) != 1 || got[0] != card(Hearts, King) {
		t.Errorf("cascade 5 = %v, want [K♥]", got)
	}
}

// filler returns a cascade top that accepts neither a King nor 7♥.
func filler(r Rank) Pile {
	return Pile{card(Diamonds, r)}
}

func TestAutomoveKingPrefersEmptyCascade(t *testing.T) {
	var b Board
	b.cascades[0] = Pile{card(Clubs, 2), card(Spades, King)}
	for i := 1; i < NumCascades; i++ {
		if i == 3 {
			continue
		}
		b.cascades[i] = filler(2)
	}

	s := sessionFrom(b)
	if !s.Automove(CascadeRef{Index: 0, Card: 1}) {
		t.Fatal("King automove should succeed")
	}
	if got := s.Board().Cascade(3); len(got) != 1 || got[0] != card(Spades, King) {
		t.Errorf("cascade 3 = %v, want the King", got)
	}
	for i := range NumCells {
		if _, ok := s.Board().Cell(i); ok {
			t.Errorf("King should not be parked in cell %d", i)
		}
	}
}

func TestAutomoveKingPrefersRightEmptyCascade(t *testing.T) {
	var b Board
	b.cascades[4] = Pile{card(Clubs, 2), card(Hearts, King)}
	for i := range NumCascades {
		if i == 4 || i == 1 || i == 6 {
			continue
		}
		b.cascades[i] = filler(3)
	}

	s := sessionFrom(b)
	if !s.Automove(CascadeRef{Index: 4, Card: 1}) {
		t.Fatal("King automove should succeed")
	}
	if s.Board().CascadeLen(6) != 1 {
		t.Errorf("King should go to the empty cascade on the right (6), cascades 1/6 lengths = %d/%d",
			s.Board().CascadeLen(1), s.Board().CascadeLen(6))
	}
}

func TestAutomoveKingFallsBackToLeftEmptyCascade(t *testing.T) {
	var b Board
	b.cascades[5] = Pile{card(Clubs, 2), card(Hearts, King)}
	for i := range NumCascades {
		if i == 5 || i == 2 {
			continue
		}
		b.cascades[i] = filler(3)
	}

	s := sessionFrom(b)
	if !s.Automove(CascadeRef{Index: 5, Card: 1}) {
		t.Fatal("King automove should succeed")
	}
	if s.Board().CascadeLen(2) != 1 {
		t.Error("King should go to the empty cascade on the left")
	}
}

func TestAutomoveLoneKingGoesToCell(t *testing.T) {
	var b Board
	b.cascades[0] = Pile{card(Spades, King)}
	for i := 1; i < NumCascades-1; i++ {
		b.cascades[i] = filler(3)
	}

	s := sessionFrom(b)
	if !s.Automove(CascadeRef{Index: 0, Card: 0}) {
		t.Fatal("automove should succeed")
	}
	if got, ok := s.Board().Cell(0); !ok || got != card(Spades, King) {
		t.Errorf("a King alone in its column should take the general order (cell first), cell 0 = %v, %v", got, ok)
	}
}

func TestAutomoveFromCascadeOrder(t *testing.T) {
	moving := card(Hearts, 7)

	tests := []struct {
		name  string
		setup func(b *Board)
		check func(t *testing.T, b Board)
	}{
		{
			name: "foundation first",
			setup: func(b *Board) {
				b.foundations[2] = Pile{card(Hearts, Ace), card(Hearts, 2), card(Hearts, 3),
					card(Hearts, 4), card(Hearts, 5), card(Hearts, 6)}
				b.cascades[6] = Pile{card(Spades, 8)}
			},
			check: func(t *testing.T, b Board) {
				if len(b.Foundation(2)) != 7 {
					t.Error("7♥ should go to its foundation")
				}
			},
		},
		{
			name: "non-empty right cascade before cell",
			setup: func(b *Board) {
				b.cascades[1] = Pile{card(Clubs, 8)}
				b.cascades[6] = Pile{card(Spades, 8)}
			},
			check: func(t *testing.T, b Board) {
				if b.CascadeLen(6) != 2 {
					t.Error("7♥ should land on 8♠ at the right")
				}
			},
		},
		{
			name: "cell before left cascade",
			setup: func(b *Board) {
				b.cascades[1] = Pile{card(Clubs, 8)}
			},
			check: func(t *testing.T, b Board) {
				if got, ok := b.Cell(0); !ok || got != moving {
					t.Error("7♥ should be parked in cell 0")
				}
			},
		},
		{
			name: "left cascade when cells are full",
			setup: func(b *Board) {
				fillCells(b)
				b.cascades[1] = Pile{card(Clubs, 8)}
			},
			check: func(t *testing.T, b Board) {
				if b.CascadeLen(1) != 2 {
					t.Error("7♥ should land on 8♣ at the left")
				}
			},
		},
		{
			name: "empty left cascade before empty right cascade",
			setup: func(b *Board) {
				fillCells(b)
				b.cascades[0] = nil
				b.cascades[7] = nil
			},
			check: func(t *testing.T, b Board) {
				if b.CascadeLen(0) != 1 {
					t.Error("7♥ should move to the empty cascade 0")
				}
			},
		},
		{
			name: "empty right cascade last",
			setup: func(b *Board) {
				fillCells(b)
				b.cascades[7] = nil
			},
			check: func(t *testing.T, b Board) {
				if b.CascadeLen(7) != 1 {
					t.Error("7♥ should move to the empty cascade 7")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Board
			for i := range NumCascades {
				b.cascades[i] = filler(3)
			}
			b.cascades[4] = Pile{card(Clubs, 2), moving}
			tt.setup(&b)

			s := sessionFrom(b)
			if !s.Automove(CascadeRef{Index: 4, Card: 1}) {
				t.Fatal("automove should succeed")
			}
			if s.Board().CascadeLen(4) != 1 {
				t.Error("source cascade should lose its top card")
			}
			tt.check(t, s.Board())
		})
	}
}

func fillCells(b *Board) {
	for i := range NumCells {
		b.cells[i] = Pile{card(Clubs, Rank(4+i))}
	}
}

func TestAutomoveFromCellOrder(t *testing.T) {
	t.Run("foundation first", func(t *testing.T) {
		var b Board
		b.cells[1] = Pile{card(Clubs, Ace)}
		s := sessionFrom(b)
		if !s.Automove(CellRef{Index: 1}) {
			t.Fatal("automove should succeed")
		}
		if len(s.Board().Foundation(0)) != 1 {
			t.Error("an Ace should go to the first empty foundation")
		}
	})

	t.Run("non-empty cascade before empty cascade", func(t *testing.T) {
		var b Board
		b.cells[0] = Pile{card(Hearts, 7)}
		b.cascades[5] = Pile{card(Spades, 8)}
		s := sessionFrom(b)
		if !s.Automove(CellRef{Index: 0}) {
			t.Fatal("automove should succeed")
		}
		if s.Board().CascadeLen(5) != 2 {
			t.Error("7♥ should land on 8♠ rather than an empty cascade")
		}
	})

	t.Run("empty cascade last", func(t *testing.T) {
		var b Board
		b.cells[0] = Pile{card(Hearts, 7)}
		b.cascades[0] = Pile{card(Spades, 3)}
		s := sessionFrom(b)
		if !s.Automove(CellRef{Index: 0}) {
			t.Fatal("automove should succeed")
		}
		if s.Board().CascadeLen(1) != 1 {
			t.Error("7♥ should move to the first empty cascade")
		}
	})

	t.Run("never to another cell", func(t *testing.T) {
		var b Board
		b.cells[0] = Pile{card(Hearts, 7)}
		for i := range NumCascades {
			b.cascades[i] = filler(3)
		}
		s := sessionFrom(b)
		if s.Automove(CellRef{Index: 0}) {
			t.Error("a cell card with no cascade or foundation target should not move")
		}
		if !s.Board().Equal(b) {
			t.Error("failed automove changed the board")
		}
	})
}

func TestAutomoveRejectsNonTopSource(t *testing.T) {
	b := Deal(OrderedDeck())
	s := sessionFrom(b)
	if s.Automove(CascadeRef{Index: 0, Card: 3}) {
		t.Error("automove from below the top should fail")
	}
	if !s.Board().Equal(b) {
		t.Error("failed automove changed the board")
	}
}

func TestEasymoveSafety(t *testing.T) {
	var b Board
	b.foundations[0] = Pile{card(Hearts, Ace), card(Hearts, 2)}
	b.foundations[1] = Pile{card(Clubs, Ace)}
	b.cascades[0] = Pile{card(Spades, 9), card(Hearts, 3)}
	b.cascades[1] = Pile{card(Diamonds, 9), card(Clubs, 2)}

	s := sessionFrom(b)
	if !s.Easymove() {
		t.Fatal("2♣ is safe to promote")
	}
	if got := s.Board().Foundation(1); len(got) != 2 || got[1] != card(Clubs, 2) {
		t.Errorf("clubs foundation = %v, want [A♣ 2♣]", got)
	}
	if s.Board().CascadeLen(0) != 2 {
		t.Error("3♥ must not be promoted in the same call")
	}

	// 3♥ could still be needed by the black 2s (2♠ is not out yet).
	if s.Easymove() {
		t.Error("3♥ must not be promoted while 2♠ is not on its foundation")
	}
	if got := s.Board().Foundation(0); len(got) != 2 {
		t.Errorf("hearts foundation = %v, should still end at 2♥", got)
	}
}

func TestEasymoveOnlyConsidersLowestRank(t *testing.T) {
	var b Board
	b.foundations[0] = Pile{card(Clubs, Ace)}
	b.cells[0] = Pile{card(Clubs, 2)}
	b.cascades[0] = Pile{card(Hearts, Ace)}

	s := sessionFrom(b)
	if !s.Easymove() {
		t.Fatal("Easymove should promote the Ace")
	}
	if len(s.Board().Foundation(1)) != 1 {
		t.Error("A♥ should be promoted first as the lowest exposed rank")
	}
	if _, ok := s.Board().Cell(0); !ok {
		t.Error("only one card may be promoted per call")
	}
}

func TestEasymoveNothingToDo(t *testing.T) {
	var b Board
	s := sessionFrom(b)
	if s.Easymove() {
		t.Error("Easymove on an empty board should fail")
	}

	b.cascades[0] = Pile{card(Spades, 5)}
	s = sessionFrom(b)
	if s.Easymove() {
		t.Error("Easymove should fail when no foundation accepts the lowest card")
	}
}

func TestAutoFinishWinsEndgame(t *testing.T) {
	var b Board
	for i, suit := range Suits {
		for r := Ace; r < King; r++ {
			b.foundations[i] = b.foundations[i].push(card(suit, r))
		}
	}
	b.cascades[0] = Pile{card(Spades, King), card(Hearts, King)}
	b.cells[2] = Pile{card(Clubs, King)}
	b.cascades[7] = Pile{card(Diamonds, King)}

	s := sessionFrom(b)
	if n := s.AutoFinish(); n != 4 {
		t.Errorf("AutoFinish promoted %d cards, want 4", n)
	}
	if !s.Over() {
		t.Error("game should be over after auto-finishing")
	}
	if s.Lost() {
		t.Error("a won game is not lost")
	}
	assertFullDeck(t, s.Board())
}

func TestRandomPlayConservesCards(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := New(rand.New(rand.NewSource(99)))

	for step := 0; step < 2000; step++ {
		b := s.Board()
		switch rng.Intn(5) {
		case 0:
			s.Undo()
		case 1:
			s.Easymove()
		case 2:
			i := rng.Intn(NumCells)
			s.Automove(CellRef{Index: i})
		default:
			i := rng.Intn(NumCascades)
			s.Automove(CascadeRef{Index: i, Card: b.CascadeLen(i) - 1})
		}
		assertFullDeck(t, s.Board())
		if s.Moves() < 0 {
			t.Fatalf("Moves() went negative at step %d", step)
		}
	}
}
