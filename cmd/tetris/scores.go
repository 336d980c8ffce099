package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores and totals for the given mode.
Defaults to marathon ("tetris").

Examples:
  tetris scores
  tetris scores tetris_classic --limit 20
  tetris scores tetris --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := tetris.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown mode %q (run 'tetris list' to see modes)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", info.Title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", info.Title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'tetris play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Lines", "Level", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-12s  %-8d  %-5d  %-5d  %s\n",
			i+1, e.Player, e.Score, e.Lines, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.0f  Lines: %d\n",
		stats.BestScore, stats.Games, stats.AvgScore, stats.TotalLines)
	return nil
}
