package engine

import "testing"

// sessionFrom wraps a hand-built board in a session with a fresh baseline.
func sessionFrom(b Board) *Session {
	return &Session{board: b, history: NewHistory(b)}
}

func TestDealDistribution(t *testing.T) {
	deck := OrderedDeck()
	cards := deck.Cards()
	b := Deal(deck)

	sevens, sixes := 0, 0
	for i := range NumCascades {
		switch b.CascadeLen(i) {
		case 7:
			sevens++
		case 6:
			sixes++
		default:
			t.Errorf("cascade %d has %d cards, want 6 or 7", i, b.CascadeLen(i))
		}
	}
	if sevens != 4 || sixes != 4 {
		t.Errorf("got %d seven-card and %d six-card cascades, want 4 and 4", sevens, sixes)
	}

	for i := range NumCascades {
		if got := b.Cascade(i)[0]; got != cards[i] {
			t.Errorf("cascade %d bottom = %v, want %v", i, got, cards[i])
		}
	}

	// Round-robin: card k lands in cascade k%8 at row k/8.
	for k, c := range cards {
		if got := b.Cascade(k % NumCascades)[k/NumCascades]; got != c {
			t.Errorf("card %d = %v, want %v", k, got, c)
		}
	}

	for i := range NumCells {
		if _, ok := b.Cell(i); ok {
			t.Errorf("cell %d should start empty", i)
		}
	}
	if b.FoundationCount() != 0 {
		t.Errorf("foundations should start empty, got %d cards", b.FoundationCount())
	}
}

func TestDealDoesNotConsumeCallerDeck(t *testing.T) {
	deck := OrderedDeck()
	Deal(deck)
	if deck.Len() != DeckSize {
		t.Errorf("caller deck has %d cards after Deal, want %d", deck.Len(), DeckSize)
	}
}

func TestBoardAccessorsReturnCopies(t *testing.T) {
	b := Deal(OrderedDeck())
	col := b.Cascade(0)
	col[0] = card(Spades, King)

	if b.Cascade(0)[0] == card(Spades, King) {
		t.Error("mutating the returned cascade changed the board")
	}
}

func TestBoardEqual(t *testing.T) {
	a := Deal(OrderedDeck())
	b := Deal(OrderedDeck())
	if !a.Equal(b) {
		t.Error("boards dealt from the same deck should be equal")
	}

	s := sessionFrom(a)
	if !s.Automove(CascadeRef{Index: 0, Card: 6}) {
		t.Fatal("expected an automove from cascade 0")
	}
	if s.Board().Equal(b) {
		t.Error("boards should differ after a move")
	}
	if !a.Equal(b) {
		t.Error("a move on a session must not alter the board value it was built from")
	}
}

func TestBoardCardsConservation(t *testing.T) {
	b := Deal(OrderedDeck())
	assertFullDeck(t, b)
}

// assertFullDeck checks the board holds exactly the 52 distinct cards.
func assertFullDeck(t *testing.T, b Board) {
	t.Helper()
	cards := b.Cards()
	if len(cards) != DeckSize {
		t.Fatalf("board holds %d cards, want %d", len(cards), DeckSize)
	}
	seen := make(map[Card]bool, DeckSize)
	for _, c := range cards {
		if seen[c] {
			t.Fatalf("duplicate card %v on board", c)
		}
		seen[c] = true
	}
}
