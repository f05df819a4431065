package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/freecell/internal/platform/tui"
	"github.com/vovakirdan/freecell/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start FreeCell with the interactive menu",
	Long: `Start FreeCell in interactive menu mode.

Pick a random deal, type a deck id, or browse statistics. Selecting a
game in the statistics screen replays its deck. After a game you
return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  freecell menu
  freecell menu --fps 60
  freecell menu --db ./games.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()
	store := openStore()
	cfg := runtimeConfig()

	opts := tui.PlayOptions{
		Player:      playerName(),
		ConfirmQuit: gameCfg.Gameplay.ConfirmQuit,
		Logger:      logger,
	}

	// play runs one game and reports whether the player pressed Ctrl+C.
	play := func(deckID string) bool {
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			return true
		}
		run := cfg
		run.DeckID = deckID
		if flagSeed == 0 {
			run.Seed = time.Now().UnixNano()
		}
		exited, err := tui.Run(game, store, run, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		return exited
	}

	// next handles one menu result and reports whether to show the menu again.
	next := func(res tui.MenuResult) bool {
		switch res.Choice {
		case tui.ChoiceStats:
			stats, err := tui.RunStats(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return true
			}
			if stats.Replay != "" {
				return !play(stats.Replay)
			}
			return stats.Back
		case tui.ChoiceNewGame, tui.ChoiceDealByID:
			return !play(res.DeckID)
		}
		return false
	}

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit || !next(menuResult) {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
