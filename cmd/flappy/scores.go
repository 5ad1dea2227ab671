package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/registry"
	"github.com/vovakirdan/flappy/internal/storage"
)

var (
	flagLimit int
	flagStats bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game variant.

Examples:
  flappy scores
  flappy scores flappy_windowed --limit 20
  flappy scores --stats
  flappy scores flappy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-game statistics instead")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the game")
}

func runScores(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if flagStats {
		return printStats(ctx, store)
	}

	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	if flagClear {
		if err := store.ClearScores(ctx, gameID); err != nil {
			return fmt.Errorf("error clearing scores: %w", err)
		}
		logger.Info("scores cleared", "game", gameID)
		return nil
	}

	scores, err := store.TopScores(ctx, gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'flappy play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-16s  %-10s  %s\n", "Rank", "Score", "Player", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-16s  %-10s  %s\n", "----", "-----", "------", "----", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-16s  %-10d  %s\n",
			i+1, entry.Score, player, entry.Seed, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)
	return nil
}

// printStats prints aggregate statistics for every game with stored runs.
func printStats(ctx context.Context, store *storage.Store) error {
	stats, err := store.GetAllGamesStats(ctx)
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-18s  %-6s  %-6s  %-8s  %s\n", "Game", "Runs", "Best", "Average", "Last played")
	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-18s  %-6d  %-6d  %-8.1f  %s\n",
			g.Title, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
