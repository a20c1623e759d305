package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
	"github.com/vovakirdan/tui-dino/internal/highscore"
	"github.com/vovakirdan/tui-dino/internal/storage"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Options configures a game session.
type Options struct {
	Runtime    core.RuntimeConfig
	Config     config.DinoConfig
	HighScores highscore.Persister // Persisted best score, may be nil
	Runs       *storage.Store      // Run history, may be nil
	Player     string              // Name recorded with each run
	Logger     *log.Logger
	Clock      core.Clock // Defaults to a wall clock, or a frame clock with FixedStep

	// FixedStep advances game time by exactly one frame per tick instead of
	// following the wall clock, so a run replays identically for a seed.
	FixedStep bool
}

// Model is the Bubble Tea model for one Dino Runner session.
type Model struct {
	game   *dino.Game
	screen *core.Screen
	runs   *storage.Store
	player string
	config core.RuntimeConfig
	clock  core.Clock
	hold   *core.HoldTracker
	mouse  map[core.Action]bool
	cues   *FlashCues
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	granularity time.Duration
	fixedStep   bool
	quitting    bool
}

// NewModel creates the game and the Bubble Tea model driving it.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	cfg.TickRate = core.ClampTickRate(cfg.TickRate)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 1)

	if err := opts.Config.Validate(); err != nil {
		opts.Config = config.DefaultDinoConfig()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		if opts.FixedStep {
			clock = core.NewFrameClock(cfg.TickRate)
		} else {
			clock = core.NewWallClock()
		}
	}
	cues := NewFlashCues(clock)

	game := dino.New(
		dino.WithConfig(opts.Config),
		dino.WithHighScores(opts.HighScores),
		dino.WithCues(cues),
		dino.WithClock(clock),
		dino.WithLogger(logger),
	)
	game.Reset(cfg)

	player := opts.Player
	if player == "" {
		player = storage.LocalPlayer
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		runs:   opts.Runs,
		player: player,
		config: cfg,
		clock:  clock,
		hold: core.NewHoldTracker(map[core.Action]time.Duration{
			core.ActionJump: opts.Config.JumpHold(),
			core.ActionDuck: opts.Config.DuckHold(),
		}),
		mouse:       make(map[core.Action]bool),
		cues:        cues,
		keys:        DefaultKeyMap(),
		help:        h,
		logger:      logger,
		granularity: opts.Config.Granularity(),
		fixedStep:   opts.FixedStep,
	}
}

// Game returns the simulated game.
func (m Model) Game() *dino.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Keys are recorded in the hold
// tracker and reach the game on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.hold.Press(action, m.clock.Now())
	}

	return m, nil
}

// handleMouse holds the action of a pressed button until it is released.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action := MouseAction(msg.Button)
	if action == core.ActionNone {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.mouse[action] = true
		m.hold.Press(action, m.clock.Now())
	case tea.MouseActionRelease:
		delete(m.mouse, action)
		m.hold.Release(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := msg.Width, max(msg.Height-helpHeight, 1)
	m.help.Width = msg.Width
	if w == m.config.ScreenW && h == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)

	// The layout depends on the screen size, so an active run is abandoned.
	if m.game.State().Phase == core.PhaseActive {
		m.logger.Debug("run abandoned on resize", "score", m.game.State().Score)
	}
	m.game.Reset(m.config)

	return m, nil
}

// handleTick samples input and runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.clock.Now()

	in := m.hold.Sample(now)
	for a := range m.mouse {
		in.Set(a)
	}

	var ended bool
	if m.fixedStep {
		ended = m.game.Step(in).RunEnded
	} else {
		ended = m.game.Tick(now, in).Collided
	}
	if ended {
		m.recordRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the run that just ended in the history.
func (m Model) recordRun() {
	score := m.game.Score()
	jumps := m.cues.Jumps()
	m.logger.Info("run finished",
		"player", m.player,
		"score", score.Score,
		"high", score.HighScore,
		"jumps", jumps,
	)

	if m.runs == nil {
		return
	}
	_, err := m.runs.SaveRun(storage.RunRecord{
		Player:   m.player,
		Score:    score.Score,
		Duration: time.Duration(score.CurrentTime) * m.granularity,
		NewBest:  score.Beaten,
	})
	if err != nil {
		m.logger.Warn("could not record run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".dino", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.cues.Draw(m.screen, 2)

	helpView := m.help.View(m.keys)
	if m.help.ShowAll {
		// The full help is taller than the reserved row; keep it on one line.
		helpView = m.help.ShortHelpView(m.keys.FullHelp()[0]) + "  " + m.help.ShortHelpView(m.keys.FullHelp()[1])
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(helpView)
}

// Run starts the Bubble Tea program and persists the high score when it
// ends, whatever the reason.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, runErr := p.Run()
	closeErr := model.Game().Close()
	return errors.Join(runErr, closeErr)
}
