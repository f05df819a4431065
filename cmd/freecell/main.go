// freecell is a FreeCell solitaire for the terminal.
//
// Usage:
//
//	freecell play [deck-id]   - Play a deal, random unless a deck id is given
//	freecell menu             - Start the interactive menu
//	freecell serve            - Start SSH server for remote play
//	freecell stats            - Show statistics of recorded games
//	freecell deal [deck-id]   - Print a deal as text
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 30)
//	--seed <value>    - Set RNG seed for reproducible shuffles
//	--db <path>       - Set database path (default: ~/.freecell/games.db)
//	--config <path>   - Use a custom config YAML
//	--assist <preset> - Assistance preset: full, normal, off
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/freecell/internal/config"
	"github.com/vovakirdan/freecell/internal/core"
	"github.com/vovakirdan/freecell/internal/games/freecell"
	"github.com/vovakirdan/freecell/internal/storage"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagAssist  string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "freecell",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "freecell",
	Short: "FreeCell - solitaire in your terminal",
	Long: `FreeCell is the classic solitaire, played in the terminal.

Every deal has a 52-letter deck id. Share it to let someone else
play exactly the same deal.

Available commands:
  play     - Play a deal directly
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  stats    - View statistics of recorded games
  deal     - Print a deal as text

Examples:
  freecell play
  freecell play ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz
  freecell menu --assist full
  freecell serve --ssh :2222
  freecell stats --best`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.freecell/games.db", "Path to games database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssist, "assist", "", "Assistance preset: full, normal, off")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dealCmd)
}

// loadConfig loads the game configuration, applies --assist and hands the
// result to the game package. Config problems are logged and defaults used.
func loadConfig() config.FreecellConfig {
	cfg, err := config.LoadFreecell(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
	}

	preset, err := config.ParseAssistPreset(flagAssist)
	if err != nil {
		logger.Warn("ignoring --assist", "error", err)
		preset = config.AssistNormal
	}
	config.ApplyAssistPreset(&cfg, preset)

	freecell.SetConfig(cfg)
	logger.Debug("config loaded",
		"auto_finish", cfg.Gameplay.AutoFinish,
		"finish_interval", cfg.Gameplay.FinishInterval,
		"assist", preset)
	return cfg
}

// runtimeConfig builds the runtime settings from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the games database. The game still works without it, so a
// failure is only logged.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open games database, results will not be saved", "error", err)
		return nil
	}
	return store
}

// playerName is the local account name recorded with each game.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
