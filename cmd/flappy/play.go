package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/platform/tui"
	"github.com/vovakirdan/flappy/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game variant (default: flappy).

Controls:
  Space/Up/W/Enter  - Flap, start, retry
  P                 - Pause
  Esc               - Pause, then back
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Examples:
  flappy play
  flappy play flappy_windowed
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID, registry.Options{ConfigPath: flagConfig})
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sound, closeSound := openSound(logger)
	defer closeSound()

	opts, err := tuiOptions(logger, store, sound)
	if err != nil {
		return err
	}

	if err := tui.Run(game, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
