// arcade is a terminal arcade of fixed-step shooter games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show the best runs of a game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--highscore <dir>     - Directory of high-score files (default: ~/.arcade/high_score)
//	--config <path>       - Custom game config YAML
//	--difficulty <level>  - Starting difficulty: easy, medium, hard
//	--mute                - Start with sound effects muted
//	--verbose             - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/core"
	"github.com/vovakirdan/shooter-arcade/internal/highscore"

	// Import games to register them
	_ "github.com/vovakirdan/shooter-arcade/internal/games/shooter"
)

var (
	// Global flags
	flagFPS          int
	flagSeed         int64
	flagDBPath       string
	flagHighScoreDir string
	flagConfig       string
	flagDifficulty   string
	flagMute         bool
	flagVerbose      bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "arcade",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Shooter Arcade - classic shooters in your terminal",
	Long: `Shooter Arcade plays four fixed-step shooter games in the terminal:
Alien Invasion, Hungry Fox, Sideways Shooter and Sliding Penguin.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View the best runs

Examples:
  arcade list
  arcade play invasion
  arcade play sideways --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores penguin`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		if flagDifficulty != "" {
			if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagHighScoreDir, "highscore", highscore.DefaultDir, "Directory of per-game high-score files")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, medium, hard")
	pf.BoolVar(&flagMute, "mute", false, "Start with sound effects muted")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// runtimeConfig builds the config shared by play and menu from the flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if flagDifficulty != "" {
		level, _ := config.ParseDifficulty(flagDifficulty)
		cfg.Difficulty = string(level)
	}
	return cfg
}
