package dino

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// memStore is an in-memory high score store.
type memStore struct {
	values  map[string]int
	saves   int
	loadErr error
	saveErr error
}

func newMemStore(high int) *memStore {
	return &memStore{values: map[string]int{"highscore": high}}
}

func (m *memStore) Load(key string) (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.values[key], nil
}

func (m *memStore) Save(key string, v int) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.values[key] = v
	return nil
}

var errDiskFull = errors.New("disk full")

// recordingCues counts the cues it receives.
type recordingCues struct {
	jumps, deaths, highs int
}

func (c *recordingCues) Jump()      { c.jumps++ }
func (c *recordingCues) Death()     { c.deaths++ }
func (c *recordingCues) HighScore() { c.highs++ }

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

// quietConfig is the default configuration with spawning pushed far out,
// so physics tests never meet an obstacle.
func quietConfig() config.DinoConfig {
	cfg := config.DefaultDinoConfig()
	cfg.Obstacles.SpawnIntervalMS = int(time.Hour / time.Millisecond)
	return cfg
}

func newTestGame(cfg config.DinoConfig, opts ...Option) *Game {
	opts = append([]Option{WithConfig(cfg)}, opts...)
	g := New(opts...)
	g.Reset(testRuntime())
	return g
}

// ms converts milliseconds to a tick timestamp.
func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

var (
	noInput   = core.NewInputFrame()
	jumpInput = core.InputOf(core.ActionJump)
	duckInput = core.InputOf(core.ActionDuck)
)
