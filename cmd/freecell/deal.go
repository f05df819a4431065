package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/freecell/internal/games/freecell/engine"
)

var dealCmd = &cobra.Command{
	Use:   "deal [deck-id]",
	Short: "Print a deal as text",
	Long: `Print the starting layout of a deal and its deck id.

Without an argument a random deck is shuffled (reproducible with --seed).

Examples:
  freecell deal
  freecell deal --seed 7
  freecell deal ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDeal,
}

func runDeal(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	var deck engine.Deck
	if len(args) == 1 {
		d, err := engine.ParseDeck(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		deck = d
	} else {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		deck = engine.NewDeck(rand.New(rand.NewSource(seed)))
	}

	fmt.Print(formatDeal(deck, cfg.Display.UnicodeSuits))
}

// formatDeal renders the dealt cascades as columns, one card row per line.
func formatDeal(deck engine.Deck, unicode bool) string {
	id := deck.ID()
	board := engine.Deal(deck)

	label := engine.Card.Short
	if unicode {
		label = engine.Card.String
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Deck %s\n\n", id)

	rows := 0
	for i := range engine.NumCascades {
		rows = max(rows, board.CascadeLen(i))
	}
	for r := range rows {
		var line strings.Builder
		for i := range engine.NumCascades {
			pile := board.Cascade(i)
			if r < len(pile) {
				fmt.Fprintf(&line, "%4s", label(pile[r]))
			} else {
				line.WriteString("    ")
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
