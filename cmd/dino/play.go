package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/highscore"
	"github.com/vovakirdan/tui-dino/internal/platform/tui"
	"github.com/vovakirdan/tui-dino/internal/storage"
)

var (
	flagPlayer    string
	flagFixedStep bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Dino Runner",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W, left click    - Jump / start a run
  Down/S, right click       - Duck while held
  P/Esc                     - Pause
  Ctrl+S                    - Save a screenshot
  ?                         - Toggle help
  Q/Ctrl+C                  - Quit

Examples:
  dino play
  dino play --fps 30
  dino play --seed 42 --fixed-step
  dino play --config ./my-dino.yaml`,
	Run: runPlay,
}

func init() {
	// The root command plays too, so it takes the same flags.
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().StringVar(&flagPlayer, "player", storage.LocalPlayer, "Name recorded in the run history")
		cmd.Flags().BoolVar(&flagFixedStep, "fixed-step", false, "Advance game time one frame per tick (reproducible with --seed)")
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	gameCfg := loadConfig()

	stderr := newLogger(os.Stderr)

	logger, closeLog, err := gameLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// The game starts from 0 when the save location is unusable
	var scores highscore.Persister
	if s, scoreErr := openHighScores(); scoreErr != nil {
		stderr.Warn("high score will not be saved", "error", scoreErr)
	} else {
		scores = s
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		stderr.Warn("could not open run history", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Runtime:    rt,
		Config:     gameCfg,
		HighScores: scores,
		Runs:       store,
		Player:     flagPlayer,
		Logger:     logger,
		FixedStep:  flagFixedStep,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
