// flappy is a side-scrolling flappy game for the terminal, SSH and a desktop window.
//
// Usage:
//
//	flappy list              - List available game variants
//	flappy play [game]       - Play a game in the terminal
//	flappy menu              - Pick games interactively
//	flappy gui [game]        - Play in a desktop window
//	flappy serve             - Start SSH server for remote play
//	flappy scores [game]     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible pipe layouts
//	--db <path>         - Set database path (default: ~/.arcade/flappy.db)
//	--config <path>     - Use a custom game config YAML
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy/internal/audio"
	"github.com/vovakirdan/flappy/internal/core"
	_ "github.com/vovakirdan/flappy/internal/games/flappy" // registers the game variants
	"github.com/vovakirdan/flappy/internal/platform/tui"
	"github.com/vovakirdan/flappy/internal/registry"
	"github.com/vovakirdan/flappy/internal/storage"
)

const defaultGame = "flappy"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagTheme    string
	flagMute     bool
	flagVolume   float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly through the pipes in your terminal",
	Long: `Flappy is a side-scrolling game: tap to flap, pass through the gaps,
and don't touch the pipes, the sky or the ground.

Available commands:
  list     - Show all game variants
  play     - Play a variant in the terminal
  menu     - Interactive game picker menu
  gui      - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  flappy play
  flappy play flappy_windowed --seed 42
  flappy gui
  flappy serve --ssh :2222
  flappy scores flappy`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal games log nowhere otherwise)")
	pf.StringVar(&flagTheme, "theme", "default", "Terminal color theme: default, mono")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound effects")
	pf.Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the root logger. Without --log-file, interactive
// commands pass io.Discard since stderr is drawn over by the UI.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "flappy",
	})
	return logger, closeFn, nil
}

// openStore opens the leaderboard. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openSound starts the audio device unless muted. Returns a nil sink and a
// no-op cleanup when sound is unavailable.
func openSound(logger *log.Logger) (tui.EventSink, func()) {
	if flagMute {
		return nil, func() {}
	}
	sm := audio.NewSoundManager(flagVolume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil, func() {}
	}
	return sm, sm.Cleanup
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	w, h := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// selectTheme resolves --theme.
func selectTheme() (*tui.Theme, error) {
	theme, ok := tui.ThemeByName(flagTheme)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (want default or mono)", flagTheme)
	}
	return &theme, nil
}

// gameArg returns the requested game ID, defaulting to the batch variant.
func gameArg(args []string) (string, error) {
	id := defaultGame
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		ids := make([]string, 0)
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
		return "", fmt.Errorf("unknown game %q (available: %s)", id, strings.Join(ids, ", "))
	}
	return id, nil
}

// currentUser names the local player for the leaderboard.
func currentUser() string {
	for _, k := range []string{"USER", "USERNAME", "LOGNAME"} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// tuiOptions assembles the options shared by play and menu.
func tuiOptions(logger *log.Logger, store *storage.Store, sound tui.EventSink) (tui.Options, error) {
	theme, err := selectTheme()
	if err != nil {
		return tui.Options{}, err
	}
	return tui.Options{
		Store:    store,
		Logger:   logger.WithPrefix("tui"),
		Sound:    sound,
		Player:   currentUser(),
		Theme:    theme,
		GameOpts: registry.Options{ConfigPath: flagConfig},
		Runtime:  runtimeConfig(),
	}, nil
}
