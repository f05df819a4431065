package freecell

import (
	"fmt"

	"github.com/vovakirdan/freecell/internal/core"
	"github.com/vovakirdan/freecell/internal/games/freecell/engine"
)

const (
	slotWidth = 5 // "[10♥]"
	colStride = slotWidth + 2
	boardW    = rowWidth*colStride - 2

	headerY  = 0
	deckY    = 1
	topRowY  = 3
	cascadeY = 5

	minWidth  = boardW + 2
	minHeight = 16
)

var (
	colorRedSuit   = core.ColorBrightRed
	colorBlackSuit = core.ColorBrightWhite
	colorFrame     = core.ColorGray
	colorCursor    = core.ColorYellow
	colorSelected  = core.ColorGreen
)

// Render draws the board, header and status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	x0 := (g.screenW - boardW) / 2
	g.renderHeader(dst, x0)

	b := g.session.Board()
	for col := range rowWidth {
		x := x0 + col*colStride
		slot := Slot{Row: RowTop, Col: col}
		if slot.isCell() {
			c, ok := b.Cell(col)
			g.renderSlot(dst, x, topRowY, slot, c, ok, ' ')
		} else {
			f := b.Foundation(col - engine.NumCells)
			top, ok := engine.Pile(f).Top()
			g.renderSlot(dst, x, topRowY, slot, top, ok, '·')
		}
	}
	dst.DrawTextWithColor(x0, topRowY-1, "cells", colorFrame)
	dst.DrawTextWithColor(x0+engine.NumCells*colStride, topRowY-1, "foundations", colorFrame)

	statusY := g.screenH - 1
	for col := range rowWidth {
		g.renderCascade(dst, x0+col*colStride, statusY, col, b.Cascade(col))
	}
	if g.session.Over() {
		g.renderWinBanner(dst, x0)
	}

	g.renderStatus(dst, statusY)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minWidth, minHeight), colorFrame)
}

func (g *Game) renderHeader(dst *core.Screen, x0 int) {
	dst.DrawTextWithColor(x0, headerY, gameTitle, core.ColorBrightWhite)

	b := g.session.Board()
	info := fmt.Sprintf("Moves %d  Undos %d  Home %d/%d",
		g.session.Moves(), g.session.Undos(), b.FoundationCount(), engine.DeckSize)
	dst.DrawText(x0+boardW-core.TextWidth(info), headerY, info)

	if g.cfg.Display.ShowDeckID {
		dst.DrawTextWithColor(x0, deckY, "Deck "+g.session.DeckID(), colorFrame)
	}
}

// renderSlot draws one top-row slot. empty is shown inside the brackets when
// the slot has no card.
func (g *Game) renderSlot(dst *core.Screen, x, y int, slot Slot, card engine.Card, ok bool, empty rune) {
	g.renderBrackets(dst, x, y, slot, true)
	if !ok {
		dst.SetWithColor(x+2, y, empty, colorFrame)
		return
	}
	g.renderCard(dst, x+1, y, card)
}

// renderCascade draws a column from y = cascadeY down to just above limit.
// Columns that do not fit show their first card, an elision marker and as
// many top cards as fit.
func (g *Game) renderCascade(dst *core.Screen, x, limit, col int, pile []engine.Card) {
	slot := Slot{Row: RowCascades, Col: col}
	if len(pile) == 0 {
		g.renderBrackets(dst, x, cascadeY, slot, true)
		return
	}

	rows := limit - cascadeY
	start := 0
	y := cascadeY
	if len(pile) > rows && rows >= 3 {
		g.renderBrackets(dst, x, y, slot, false)
		g.renderCard(dst, x+1, y, pile[0])
		dst.DrawTextWithColor(x, y+1, fmt.Sprintf(" +%-2d ", len(pile)-rows+1), colorFrame)
		y += 2
		start = len(pile) - (rows - 2)
	}

	for i := start; i < len(pile); i++ {
		top := i == len(pile)-1
		g.renderBrackets(dst, x, y, slot, top)
		g.renderCard(dst, x+1, y, pile[i])
		y++
	}
}

// renderBrackets draws the slot frame, highlighted for the cursor or the
// selection when active is set.
func (g *Game) renderBrackets(dst *core.Screen, x, y int, slot Slot, active bool) {
	left, right, color := '[', ']', colorFrame
	if active {
		if g.selected != nil && *g.selected == slot {
			left, right, color = '{', '}', colorSelected
		}
		if g.cursor == slot {
			color = colorCursor
		}
	}
	dst.SetWithColor(x, y, left, color)
	dst.SetWithColor(x+slotWidth-1, y, right, color)
}

func (g *Game) renderCard(dst *core.Screen, x, y int, c engine.Card) {
	color := colorBlackSuit
	if c.Color() == engine.Red {
		color = colorRedSuit
	}
	dst.DrawTextWithColor(x, y, g.cardText(c), color)
}

// cardText formats a card in three columns, rank right-aligned.
func (g *Game) cardText(c engine.Card) string {
	return fmt.Sprintf("%3s", g.cardLabel(c))
}

// cardLabel is the unpadded card name used in status messages.
func (g *Game) cardLabel(c engine.Card) string {
	if g.cfg.Display.UnicodeSuits {
		return c.Rank.String() + c.Suit.Symbol()
	}
	return c.Rank.String() + c.Suit.Letter()
}

// renderWinBanner boxes a message over the emptied cascades.
func (g *Game) renderWinBanner(dst *core.Screen, x0 int) {
	msg := fmt.Sprintf("Solved in %d moves", g.session.Moves())
	w := core.TextWidth(msg) + 4
	box := core.NewRect(x0+(boardW-w)/2, cascadeY+1, w, 3)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, colorSelected)
	dst.DrawTextWithColor(box.X+2, box.Y+1, msg, core.ColorBrightWhite)
}

func (g *Game) renderStatus(dst *core.Screen, y int) {
	switch {
	case g.session.Over():
		dst.DrawTextCentered(y, fmt.Sprintf("You won in %d moves!  N: new deal  R: replay", g.session.Moves()), core.ColorBrightWhite)
	case g.session.Lost():
		dst.DrawTextCentered(y, "No moves left.  U: undo  R: restart  N: new deal", colorRedSuit)
	case g.status != "":
		dst.DrawTextCentered(y, g.status, core.ColorDefault)
	}
}
