package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/handplay/fingersnake/internal/platform/tui"
	"github.com/handplay/fingersnake/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the top 10 recorded runs.

Examples:
  fingersnake scores
  fingersnake scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse runs in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
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

	fmt.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'fingersnake play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "Rank", "Score", "Length", "Duration", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "----", "-----", "------", "--------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		duration := fmt.Sprintf("%d:%02d", entry.DurationSecs/60, entry.DurationSecs%60)
		fmt.Printf("  %-4d  %-8d  %-8d  %-10s  %s\n", i+1, entry.Score, entry.SnakeLen, duration, dateStr)
	}

	stats, err := store.GetStats()
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  (%d runs, avg %.1f)\n", stats.HighScore, stats.RunsCount, stats.AvgScore)
	}
}
