// Package dino implements the Dino Runner: an endless side-scroller where
// the player jumps over cacti and ducks under birds while the score counts
// survival time.
package dino

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/highscore"
)

// TickKind identifies a periodic timer event.
type TickKind int

const (
	TickSpawn     TickKind = iota // Spawn a random obstacle
	TickAnimation                 // Reserved animation timer, currently unused
)

// FrameOutcome reports what happened during one Tick.
type FrameOutcome struct {
	State           core.GameState
	Started         bool // A run began this frame
	Collided        bool // The run ended this frame
	HighScoreBeaten bool // The high-score cue fired this frame
	Spawned         int  // Obstacles spawned this frame
}

// Game implements the Dino Runner game logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.DinoConfig
	scale   float64
	groundY int

	phase    core.Phase
	paused   bool
	pausedAt time.Duration
	runs     int
	jumpHeld bool // Jump was present in the previous frame

	player    *Player
	obstacles []Obstacle
	ground    [2]GroundSegment
	score     *ScoreTracker
	spawn     *core.Interval
	rng       *rand.Rand

	clock  core.Clock
	cues   Cues
	store  highscore.Persister
	logger *log.Logger
	hasCfg bool
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the game configuration. Without it the configuration is
// loaded through config.LoadDino on the first Reset.
func WithConfig(cfg config.DinoConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.hasCfg = true
	}
}

// WithHighScores sets where the high score is loaded from and saved to.
func WithHighScores(p highscore.Persister) Option {
	return func(g *Game) { g.store = p }
}

// WithCues sets the receiver of jump, death and high-score cues.
func WithCues(c Cues) Option {
	return func(g *Game) {
		if c != nil {
			g.cues = c
		}
	}
}

// WithClock replaces the frame clock used by Step.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a new Dino Runner game instance. Call Reset before use.
func New(opts ...Option) *Game {
	g := &Game{
		cues:   NopCues{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dino"
}

// Reset lays out the world for a screen and returns to the idle phase.
// The high score survives resets; it is read from storage only once.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	runtime.TickRate = core.ClampTickRate(runtime.TickRate)
	g.runtime = runtime
	g.scale = runtime.StepScale()

	if !g.hasCfg {
		cfg, err := config.LoadDino("")
		if err != nil {
			g.logger.Warn("falling back to default config", "err", err)
			cfg = config.DefaultDinoConfig()
		}
		g.cfg = cfg
		g.hasCfg = true
	}

	if g.clock == nil {
		g.clock = core.NewFrameClock(runtime.TickRate)
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.groundY = runtime.ScreenH - g.cfg.Player.GroundOffset
	g.player = NewPlayer(g.cfg, g.groundY)
	g.ground = newGroundPair(groundWidth(g.cfg.Ground.TileWidth, runtime.ScreenW), g.groundY, g.cfg.Physics.ScrollSpeed)
	g.obstacles = g.obstacles[:0]
	g.spawn = core.NewInterval(g.cfg.SpawnInterval(), g.clock.Now())

	if g.score == nil {
		g.score = NewScoreTracker(g.cfg.Granularity(), g.store)
	}
	if err := g.score.Load(); err != nil {
		g.logger.Warn("high score unreadable, starting from 0", "err", err)
	}

	g.phase = core.PhaseIdle
	g.paused = false
	g.jumpHeld = false
}

// StartSession begins a run at time now: the player, obstacles, ground,
// score and spawn timer are reset.
func (g *Game) StartSession(now time.Duration) {
	g.player.Reset()
	g.obstacles = g.obstacles[:0]
	g.ground = newGroundPair(g.ground[0].frame.Width(), g.groundY, g.cfg.Physics.ScrollSpeed)
	g.score.Begin(now)
	g.spawn.Restart(now)

	g.phase = core.PhaseActive
	g.paused = false
	g.runs++

	g.logger.Debug("run started", "run", g.runs, "high", g.score.State().HighScore)
}

// OnTickEvent handles a periodic timer event. Spawn events outside an
// active run are ignored.
func (g *Game) OnTickEvent(kind TickKind, now time.Duration) {
	switch kind {
	case TickSpawn:
		if g.phase != core.PhaseActive || g.paused {
			return
		}
		g.spawnObstacle()
	case TickAnimation:
		// Animation advances per frame in Entity.Update.
	}
}

func (g *Game) spawnObstacle() {
	kind := ObstacleKind(g.rng.Intn(obstacleKinds))
	x := float64(g.runtime.ScreenW + g.rng.Intn(g.cfg.Obstacles.SpawnJitter+1))
	g.obstacles = append(g.obstacles, NewObstacle(kind, x, g.groundY, g.cfg))
}

// Step advances the frame clock by one frame and runs Tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var now time.Duration
	if fc, ok := g.clock.(*core.FrameClock); ok {
		now = fc.Advance()
	} else {
		now = g.clock.Now()
	}

	out := g.Tick(now, in)
	return core.StepResult{State: out.State, RunEnded: out.Collided}
}

// Tick runs one frame at time now.
//
// Idle: a fresh jump starts a run; a jump held since the previous frame,
// such as one still held through a crash, does not. Active: spawn timers fire, then ground,
// obstacles and player update in that order, then collisions are checked
// and finally the score is recomputed.
func (g *Game) Tick(now time.Duration, in core.InputFrame) FrameOutcome {
	var out FrameOutcome

	jump := in.Has(core.ActionJump)
	pressed := jump && !g.jumpHeld
	g.jumpHeld = jump

	if g.phase == core.PhaseIdle {
		if pressed {
			g.StartSession(now)
			out.Started = true
		}
		out.State = g.State()
		return out
	}

	if in.Has(core.ActionPause) {
		g.togglePause(now)
	}
	if g.paused {
		out.State = g.State()
		return out
	}

	for n := g.spawn.Poll(now); n > 0; n-- {
		g.OnTickEvent(TickSpawn, now)
		out.Spawned++
	}

	fc := FrameContext{Input: in, Scale: g.scale, Cues: g.cues}

	for i := range g.ground {
		g.ground[i].Update(fc)
	}

	for i := range g.obstacles {
		g.obstacles[i].Update(fc)
	}
	g.removeGone()

	g.player.Update(fc)

	out.Collided = g.collides()

	if g.score.Update(now) {
		g.cues.HighScore()
		out.HighScoreBeaten = true
	}

	if out.Collided {
		g.cues.Death()
		g.phase = core.PhaseIdle
		g.logger.Debug("run ended", "run", g.runs, "score", g.score.State().Score)
	}

	out.State = g.State()
	return out
}

// togglePause freezes or resumes the run. Paused time is removed from the
// score and the spawn timer.
func (g *Game) togglePause(now time.Duration) {
	if !g.paused {
		g.paused = true
		g.pausedAt = now
		return
	}
	d := now - g.pausedAt
	g.score.Shift(d)
	g.spawn.Shift(d)
	g.paused = false
}

// removeGone drops obstacles that have scrolled past the left edge.
func (g *Game) removeGone() {
	live := g.obstacles[:0]
	for _, o := range g.obstacles {
		if !o.Gone() {
			live = append(live, o)
		}
	}
	g.obstacles = live
}

func (g *Game) collides() bool {
	for i := range g.obstacles {
		if Collide(g.player, &g.obstacles[i]) {
			return true
		}
	}
	return false
}

// Close persists the high score. It is safe to call more than once.
func (g *Game) Close() error {
	if g.score == nil {
		return nil
	}
	if err := g.score.Persist(); err != nil {
		g.logger.Error("failed to save high score", "err", err)
		return err
	}
	g.logger.Debug("high score saved", "high", g.score.State().HighScore)
	return nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{
		Phase:  g.phase,
		Runs:   g.runs,
		Paused: g.paused,
	}
	if g.score != nil {
		st := g.score.State()
		s.Score = st.Score
		s.HighScore = st.HighScore
	}
	return s
}

// Score returns the detailed score bookkeeping.
func (g *Game) Score() ScoreState {
	return g.score.State()
}

// Player returns the player entity.
func (g *Game) Player() *Player {
	return g.player
}

// Obstacles returns a copy of the live obstacles.
func (g *Game) Obstacles() []Obstacle {
	return append([]Obstacle(nil), g.obstacles...)
}

// Ground returns a copy of the two ground segments.
func (g *Game) Ground() [2]GroundSegment {
	return g.ground
}

// GroundY returns the ground line row.
func (g *Game) GroundY() int {
	return g.groundY
}

// Config returns the active configuration.
func (g *Game) Config() config.DinoConfig {
	return g.cfg
}
