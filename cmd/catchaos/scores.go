package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cat-chaos/internal/platform/tui"
	"github.com/vovakirdan/cat-chaos/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs: final score, round reached and
difficulty.

Examples:
  catchaos scores
  catchaos scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse the run history in a scrollable table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Cat Chaos - Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'catchaos play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %-12s  %s\n", "Rank", "Score", "Round", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %-12s  %s\n", "----", "-----", "-----", "----------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-7d  %-12s  %s\n", i+1, entry.Score, entry.RoundReached, entry.Difficulty, dateStr)
	}

	stats, err := store.GetStats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d (round %d), %d runs total\n", stats.HighScore, stats.BestRound, stats.RunsCount)
	}
}
