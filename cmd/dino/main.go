// dino is an endless runner played in the terminal.
//
// Usage:
//
//	dino                     - Play the game
//	dino play                - Play the game
//	dino serve               - Start SSH server for remote play
//	dino scores              - Show the run history
//	dino highscore           - Show or reset the persisted high score
//	dino config              - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate, 20-240 (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.dino/runs.db)
//	--config <path>    - Use a custom configuration YAML
//	--save-dir <dir>   - Keep the high score in dir instead of the app-data directory
//	--log-file <path>  - Write logs there while the game owns the terminal
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/highscore"
)

// appName names the application-data directory holding the save record.
const appName = "tui-dino"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagSaveDir string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino Runner - jump and duck through an endless desert",
	Long: `Dino Runner is an endless runner for the terminal. Jump over cacti,
duck under birds and beat your best time.

Available commands:
  play       - Play the game (default)
  serve      - Start SSH server for remote play
  scores     - View the run history
  highscore  - Show or reset the persisted high score
  config     - Print the effective configuration

Examples:
  dino
  dino play --fps 30
  dino serve --ssh :2222
  dino scores
  dino highscore --reset`,
	PersistentPreRun: checkFPS,
	Run:              runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second, 20-240)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dino/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSaveDir, "save-dir", "", "Directory for the high score record (default: app-data directory)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while the game is running")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(highscoreCmd)
	rootCmd.AddCommand(configCmd)
}

// checkFPS clamps --fps to the supported range.
func checkFPS(_ *cobra.Command, _ []string) {
	if rate := core.ClampTickRate(flagFPS); rate != flagFPS {
		newLogger(os.Stderr).Warn("unsupported tick rate, clamped",
			"fps", flagFPS, "using", rate,
			"min", core.MinTickRate, "max", core.MaxTickRate)
		flagFPS = rate
	}
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dino",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// gameLogger returns the logger used while a TUI owns the terminal, and a
// function closing its file. Without --log-file logs are discarded.
func gameLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}

// openHighScores opens the high score record selected by --save-dir.
func openHighScores() (*highscore.Store, error) {
	if flagSaveDir != "" {
		return highscore.OpenDir(flagSaveDir)
	}
	return highscore.OpenAppData(appName)
}

// loadConfig resolves the game configuration. An unusable --config file is
// fatal.
func loadConfig() config.DinoConfig {
	cfg, err := config.LoadDino(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
