package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dino/internal/highscore"
	"github.com/vovakirdan/tui-dino/internal/platform/tui"
	"github.com/vovakirdan/tui-dino/internal/storage"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs recorded in the run history.

On a terminal an interactive scoreboard is shown; otherwise the top runs
are printed as plain text.

Examples:
  dino scores
  dino scores --limit 25 | less
  dino scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing run history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	best := persistedHighScore()

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, best, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Runs - Dino Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dino play' to set the first score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-7s  %-12s  %-6s  %s\n", "Rank", "Score", "Player", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-12s  %-6s  %s\n", "----", "-----", "------", "----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		secs := int(r.Duration.Seconds())
		fmt.Printf("  %-4d  %-7d  %-12s  %2d:%02d   %s\n", i+1, r.Score, r.Player, secs/60, secs%60, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", best)
}

// persistedHighScore reads the saved high score, 0 when unavailable.
func persistedHighScore() int {
	scores, err := openHighScores()
	if err != nil {
		return 0
	}
	v, err := scores.Load(highscore.DefaultKey)
	if err != nil {
		return 0
	}
	return v
}
