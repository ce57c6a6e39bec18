package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/RainerBlessing/fuel-drift/internal/platform/tui"
	"github.com/RainerBlessing/fuel-drift/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the longest recorded runs.

By default prints a plain table; --tui opens the interactive browser
with best and recent views.

Examples:
  fueldrift scores
  fueldrift scores --tui`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive run history browser")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing run history: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Fuel Drift")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'fueldrift play' to set the first distance record!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "Rank", "Distance", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "----", "--------", "-----", "----", "----")

	for i, entry := range runs {
		total := int(entry.Duration)
		fmt.Printf("  %-4d  %-10s  %-6d  %-8s  %s\n",
			i+1,
			fmt.Sprintf("%dm", entry.Distance),
			entry.Level,
			fmt.Sprintf("%d:%02d", total/60, total%60),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats()
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d   Best: %dm   Average: %.0fm\n",
			stats.RunsCount, stats.BestDistance, stats.AvgDistance)
	}
}
