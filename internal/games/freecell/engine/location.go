package engine

import "fmt"

// Location identifies the source or destination of a move. It is either a
// CellRef or a CascadeRef.
type Location interface {
	isLocation()
	String() string
}

// CellRef points at one of the free cells.
type CellRef struct {
	Index int
}

// CascadeRef points at a card within a cascade. As a move source, Card must be
// the index of the cascade's top card.
type CascadeRef struct {
	Index int
	Card  int
}

func (CellRef) isLocation()    {}
func (CascadeRef) isLocation() {}

func (r CellRef) String() string {
	return fmt.Sprintf("cell %d", r.Index)
}

func (r CascadeRef) String() string {
	return fmt.Sprintf("cascade %d[%d]", r.Index, r.Card)
}

// pileKind selects one of the three board areas.
type pileKind int

const (
	kindCell pileKind = iota
	kindFoundation
	kindCascade
)

// pileRef addresses a whole pile on the board.
type pileRef struct {
	kind  pileKind
	index int
}

func cellPile(i int) pileRef       { return pileRef{kind: kindCell, index: i} }
func foundationPile(i int) pileRef { return pileRef{kind: kindFoundation, index: i} }
func cascadePile(i int) pileRef    { return pileRef{kind: kindCascade, index: i} }
