package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shooter-arcade/internal/audio"
	"github.com/vovakirdan/shooter-arcade/internal/platform/tui"
	"github.com/vovakirdan/shooter-arcade/internal/registry"
	"github.com/vovakirdan/shooter-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  Enter        - Play
  P            - Pause / resume
  M/Esc        - Menu, then 1/2/3 to pick a difficulty
  R            - Restart with the picked difficulty
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  arcade play invasion
  arcade play hungryfox --difficulty easy
  arcade play sideways --mute
  arcade play penguin --config ./my-penguin.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	game, err := newGame(gameID)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	svc, cleanup := openServices()
	defer cleanup()

	return tui.Run(game, svc, runtimeConfig(width, height))
}

// newGame creates a game and applies the --config flag to it.
func newGame(gameID string) (registry.Game, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	if flagConfig != "" {
		c, ok := game.(registry.Configurable)
		if !ok {
			return nil, fmt.Errorf("game %q does not take a config file", gameID)
		}
		if err := c.LoadConfig(flagConfig); err != nil {
			return nil, err
		}
	}
	return game, nil
}

// openServices opens the run history and the sound device. Both are
// optional: a failure is logged and the game runs without them.
func openServices() (tui.Services, func()) {
	svc := tui.Services{
		HighScoreDir: flagHighScoreDir,
		Logger:       logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
	} else {
		svc.Store = store
	}

	player := audio.NewPlayer(audio.DefaultGain)
	player.SetMuted(flagMute)
	if err := player.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	svc.Listener = player

	return svc, func() {
		player.Close()
		if store != nil {
			store.Close()
		}
	}
}
