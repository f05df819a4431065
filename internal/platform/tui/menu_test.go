package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/freecell/internal/core"
	"github.com/vovakirdan/freecell/internal/games/freecell/engine"
	"github.com/vovakirdan/freecell/internal/storage"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuNewGame(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.result()
	if res.Quit || res.Choice != ChoiceNewGame || res.DeckID != "" {
		t.Errorf("result = %+v, want a new game", res)
	}
}

func TestMenuCursorWraps(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.items[m.cursor].Choice != ChoiceQuit {
		t.Fatalf("Up from the top should wrap to Quit, got %s", m.items[m.cursor].Title)
	}
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.result().Quit {
		t.Error("selecting Quit should quit")
	}
}

func TestMenuDealByID(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.entering {
		t.Fatal("Deal by ID should open the prompt")
	}

	m = updateMenu(t, m, runes("abc"))
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != nil {
		t.Fatal("a short id must not be accepted")
	}
	if !strings.Contains(m.View(), "Not a deck id") {
		t.Error("validation error not shown")
	}

	m.input.SetValue(engine.Alphabet)
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.result()
	if res.Quit || res.Choice != ChoiceDealByID || res.DeckID != engine.Alphabet {
		t.Errorf("result = %+v", res)
	}
}

func TestMenuDealByIDCancel(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.entering || m.IsQuitting() || m.Selected() != nil {
		t.Error("Esc should only close the prompt")
	}
}

func TestMenuSummary(t *testing.T) {
	store := openTestStore(t)
	if got := NewMenuModel(store, core.DefaultConfig()).summary; got != "" {
		t.Errorf("empty store summary = %q", got)
	}

	for _, won := range []bool{true, false} {
		if _, err := store.SaveGame(storage.GameRecord{DeckID: engine.Alphabet, Won: won}); err != nil {
			t.Fatal(err)
		}
	}
	m := NewMenuModel(store, core.DefaultConfig())
	if !strings.Contains(m.View(), "Played 2  Won 1 (50%)") {
		t.Errorf("summary = %q", m.summary)
	}
}
