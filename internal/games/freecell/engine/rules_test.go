package engine

import "testing"

func TestCanPlaceInCell(t *testing.T) {
	if !CanPlaceInCell(nil, card(Hearts, 5)) {
		t.Error("empty cell should accept any card")
	}
	if CanPlaceInCell(Pile{card(Clubs, 2)}, card(Hearts, 5)) {
		t.Error("occupied cell should reject cards")
	}
}

func TestCanPlaceOnFoundation(t *testing.T) {
	tests := []struct {
		name       string
		foundation Pile
		card       Card
		want       bool
	}{
		{"ace on empty", nil, card(Spades, Ace), true},
		{"two on empty", nil, card(Spades, 2), false},
		{"king on empty", nil, card(Hearts, King), false},
		{"next rank same suit", Pile{card(Hearts, Ace)}, card(Hearts, 2), true},
		{"next rank other suit", Pile{card(Hearts, Ace)}, card(Diamonds, 2), false},
		{"skipping a rank", Pile{card(Hearts, Ace)}, card(Hearts, 3), false},
		{"same rank", Pile{card(Hearts, Ace), card(Hearts, 2)}, card(Hearts, 2), false},
		{"lower rank", Pile{card(Hearts, Ace), card(Hearts, 2)}, card(Hearts, Ace), false},
		{"second ace", Pile{card(Hearts, Ace)}, card(Clubs, Ace), false},
		{"king on queen", Pile{card(Clubs, Queen)}, card(Clubs, King), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanPlaceOnFoundation(tt.foundation, tt.card); got != tt.want {
				t.Errorf("CanPlaceOnFoundation(%v, %v) = %v, want %v", tt.foundation, tt.card, got, tt.want)
			}
		})
	}
}

func TestCanPlaceOnCascade(t *testing.T) {
	tests := []struct {
		name    string
		cascade Pile
		card    Card
		want    bool
	}{
		{"anything on empty", nil, card(Diamonds, 7), true},
		{"king on empty", nil, card(Spades, King), true},
		{"red on black one lower", Pile{card(Spades, 8)}, card(Hearts, 7), true},
		{"black on red one lower", Pile{card(Diamonds, 8)}, card(Clubs, 7), true},
		{"same color one lower", Pile{card(Spades, 8)}, card(Clubs, 7), false},
		{"red on red", Pile{card(Hearts, 8)}, card(Diamonds, 7), false},
		{"opposite color two lower", Pile{card(Spades, 8)}, card(Hearts, 6), false},
		{"opposite color one higher", Pile{card(Spades, 8)}, card(Hearts, 9), false},
		{"opposite color same rank", Pile{card(Spades, 8)}, card(Hearts, 8), false},
		{"ace on black two", Pile{card(Clubs, 2)}, card(Diamonds, Ace), true},
		{"only top counts", Pile{card(Hearts, 9), card(Spades, 3)}, card(Diamonds, 2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanPlaceOnCascade(tt.cascade, tt.card); got != tt.want {
				t.Errorf("CanPlaceOnCascade(%v, %v) = %v, want %v", tt.cascade, tt.card, got, tt.want)
			}
		})
	}
}

func TestPilePushDoesNotAlias(t *testing.T) {
	base := Pile{card(Clubs, 9)}.push(card(Hearts, 8))
	popped := base.pop()
	a := popped.push(card(Diamonds, 8))

	if top, _ := base.Top(); top != card(Hearts, 8) {
		t.Errorf("pushing onto a popped pile changed the original: top = %v", top)
	}
	if top, _ := a.Top(); top != card(Diamonds, 8) {
		t.Errorf("new pile top = %v, want 8♦", top)
	}
}
