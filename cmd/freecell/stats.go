package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/freecell/internal/games/freecell/engine"
	"github.com/vovakirdan/freecell/internal/storage"
)

var (
	flagStatsBest  bool
	flagStatsLimit int
	flagStatsDeck  string
	flagStatsID    string
	flagStatsClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics of recorded games",
	Long: `Display the win record and a list of recorded games.

A game is recorded when it is won, or when a deal with at least one
move is abandoned for another deal or by quitting.

Examples:
  freecell stats
  freecell stats --best --limit 5
  freecell stats --deck ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz
  freecell stats --id 3f0c2a9e-...
  freecell stats --clear`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsBest, "best", false, "List won games with the fewest moves instead of recent games")
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of games to list")
	statsCmd.Flags().StringVar(&flagStatsDeck, "deck", "", "List every recorded game of one deck")
	statsCmd.Flags().StringVar(&flagStatsID, "id", "", "Show one recorded game")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete all recorded games")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening games database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := printStats(store); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printStats(store *storage.Store) error {
	switch {
	case flagStatsClear:
		if err := store.ClearGames(); err != nil {
			return err
		}
		fmt.Println("All recorded games deleted.")
		return nil

	case flagStatsID != "":
		game, err := store.GameByID(flagStatsID)
		if err != nil {
			return err
		}
		if game == nil {
			return fmt.Errorf("no game with id %q", flagStatsID)
		}
		printGame(*game)
		return nil

	case flagStatsDeck != "":
		if err := engine.ValidateDeckID(flagStatsDeck); err != nil {
			return err
		}
		games, err := store.GamesForDeck(flagStatsDeck)
		if err != nil {
			return err
		}
		fmt.Printf("Games of deck %s\n\n", flagStatsDeck)
		printGames(games)
		return nil
	}

	st, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Println("FreeCell statistics")
	fmt.Println()
	if st.Played == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'freecell play' to start one.")
		return nil
	}

	fmt.Printf("  Played      %d\n", st.Played)
	fmt.Printf("  Won         %d (%.0f%%)\n", st.Won, st.WinRate*100)
	if st.Won > 0 {
		fmt.Printf("  Best        %d moves\n", st.BestMoves)
		fmt.Printf("  Average     %.1f moves\n", st.AvgMoves)
		fmt.Printf("  Win streak  %d\n", st.LongestWin)
	}
	fmt.Printf("  Last played %s\n", st.LastPlayed.Format("2006-01-02 15:04"))
	fmt.Println()

	var games []storage.GameRecord
	if flagStatsBest {
		fmt.Println("Best wins")
		games, err = store.BestGames(flagStatsLimit)
	} else {
		fmt.Println("Recent games")
		games, err = store.RecentGames(flagStatsLimit)
	}
	if err != nil {
		return err
	}
	fmt.Println()
	printGames(games)
	return nil
}

func printGames(games []storage.GameRecord) {
	if len(games) == 0 {
		fmt.Println("  (none)")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %5s  %5s  %8s  %s\n", "#", "ID", "Result", "Moves", "Undos", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %5s  %5s  %8s  %s\n", "-", "--", "------", "-----", "-----", "----", "----")
	for i, g := range games {
		fmt.Printf("  %-4d  %-8s  %-7s  %5d  %5d  %8s  %s\n",
			i+1, shortID(g.ID), result(g), g.Moves, g.Undos,
			g.Duration.Round(time.Second), g.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printGame(g storage.GameRecord) {
	fmt.Printf("Game %s\n\n", g.ID)
	fmt.Printf("  Deck     %s\n", g.DeckID)
	if g.Player != "" {
		fmt.Printf("  Player   %s\n", g.Player)
	}
	fmt.Printf("  Result   %s\n", result(g))
	fmt.Printf("  Moves    %d\n", g.Moves)
	fmt.Printf("  Undos    %d\n", g.Undos)
	fmt.Printf("  Time     %s\n", g.Duration.Round(time.Second))
	fmt.Printf("  Date     %s\n", g.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println()
	fmt.Printf("Replay with: freecell play %s\n", g.DeckID)
}

func result(g storage.GameRecord) string {
	if g.Won {
		return "won"
	}
	return fmt.Sprintf("%d/%d", g.Foundation, engine.DeckSize)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
