package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/highscore"
)

var flagReset bool

var highscoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "Show or reset the persisted high score",
	Long: `Print the high score kept in the save record.

Examples:
  dino highscore
  dino highscore --save-dir ./saves
  dino highscore --reset`,
	Args: cobra.NoArgs,
	Run:  runHighScore,
}

func init() {
	highscoreCmd.Flags().BoolVar(&flagReset, "reset", false, "Reset the high score to 0")
}

func runHighScore(_ *cobra.Command, _ []string) {
	scores, err := openHighScores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save record: %v\n", err)
		os.Exit(1)
	}

	if flagReset {
		if err := scores.Save(highscore.DefaultKey, 0); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting high score: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("High score reset.")
		return
	}

	v, err := scores.Load(highscore.DefaultKey)
	if err != nil {
		// A corrupt record still reads as 0
		newLogger(os.Stderr).Warn("save record is unreadable", "error", err)
	}
	fmt.Println(v)
}
