package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/platform/gui"
	"github.com/vovakirdan/flappy/internal/registry"
)

var (
	flagWidth      int
	flagHeight     int
	flagFullscreen bool
)

var guiCmd = &cobra.Command{
	Use:   "gui [game]",
	Short: "Play in a desktop window",
	Long: `Open the game in an 800x800 window.

Controls:
  Space/Up/W/Click  - Flap, start, retry
  P                 - Pause
  Esc/Q             - Quit

Examples:
  flappy gui
  flappy gui flappy_windowed --fullscreen`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGUI,
}

func init() {
	guiCmd.Flags().IntVar(&flagWidth, "width", gui.WindowWidth, "Window width in pixels")
	guiCmd.Flags().IntVar(&flagHeight, "height", gui.WindowHeight, "Window height in pixels")
	guiCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
}

func runGUI(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID, registry.Options{ConfigPath: flagConfig})
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}
	src, ok := game.(gui.Source)
	if !ok {
		return fmt.Errorf("game %q cannot be drawn in a window", gameID)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sound, closeSound := openSound(logger)
	defer closeSound()

	return gui.Run(src, gui.Options{
		Store:      store,
		Logger:     logger.WithPrefix("gui"),
		Sound:      sound,
		Player:     currentUser(),
		Seed:       flagSeed,
		Width:      flagWidth,
		Height:     flagHeight,
		Fullscreen: flagFullscreen,
	})
}
