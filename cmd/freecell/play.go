package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/freecell/internal/games/freecell/engine"
	"github.com/vovakirdan/freecell/internal/platform/tui"
	"github.com/vovakirdan/freecell/internal/registry"
)

const gameID = "freecell"

var playCmd = &cobra.Command{
	Use:   "play [deck-id]",
	Short: "Play a deal",
	Long: `Start playing FreeCell.

Without an argument a random deck is dealt. A 52-letter deck id deals
that exact deck; an invalid id falls back to a random deck.

Controls:
  Arrows/hjkl  - Move the cursor (Up: cells and foundations)
  Enter        - Pick up a card, then drop it
  Space        - Send the card under the cursor to the first place that takes it
  Esc          - Drop the selection
  U            - Undo
  F            - Send all safe cards to the foundations
  R            - Restart this deal
  N            - New deal
  Q/Ctrl+C     - Quit

Assist presets:
  full   - Fast auto-finish, no quit confirmation
  normal - Settings from the config file
  off    - No auto-finish

Examples:
  freecell play
  freecell play --seed 42
  freecell play ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz
  freecell play --assist off --config ./my-freecell.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := runtimeConfig()
	if len(args) == 1 {
		if err := engine.ValidateDeckID(args[0]); err != nil {
			logger.Warn("invalid deck id, dealing a random deck", "id", args[0], "error", err)
		} else {
			cfg.DeckID = args[0]
		}
	}

	gameCfg := loadConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, store, cfg, tui.PlayOptions{
		Player:      playerName(),
		ConfirmQuit: gameCfg.Gameplay.ConfirmQuit,
		Logger:      logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
