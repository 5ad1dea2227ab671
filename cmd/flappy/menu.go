package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Esc in a finished game returns to the menu; Tab opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q/Esc        - Quit

Examples:
  flappy menu
  flappy menu --fps 30
  flappy menu --theme mono`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

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

	if err := tui.RunSession(opts); err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}
	return nil
}
