package dino

import (
	"time"

	"github.com/vovakirdan/tui-dino/internal/highscore"
)

// ScoreState is a snapshot of the score bookkeeping.
type ScoreState struct {
	CurrentTime int  // Elapsed run time in granularity units
	Score       int  // Equal to CurrentTime
	HighScore   int  // Best score, persisted on Close
	Beaten      bool // Whether this run already passed the high score
}

// ScoreTracker derives the score from elapsed time and maintains the high
// score. It only touches storage in Load and Persist.
type ScoreTracker struct {
	granularity time.Duration
	start       time.Duration
	state       ScoreState

	store  highscore.Persister
	key    string
	loaded bool
}

// NewScoreTracker creates a tracker backed by store. A nil store keeps the
// high score in memory only.
func NewScoreTracker(granularity time.Duration, store highscore.Persister) *ScoreTracker {
	if granularity <= 0 {
		granularity = 100 * time.Millisecond
	}
	return &ScoreTracker{
		granularity: granularity,
		store:       store,
		key:         highscore.DefaultKey,
	}
}

// Load reads the persisted high score once. Later calls are no-ops so the
// in-memory value is never replaced by a stale one. On error the high
// score starts at the value the store returned (0 for missing or corrupt
// records) and the error is reported to the caller for logging.
func (t *ScoreTracker) Load() error {
	if t.loaded || t.store == nil {
		t.loaded = true
		return nil
	}
	t.loaded = true

	v, err := t.store.Load(t.key)
	if v > t.state.HighScore {
		t.state.HighScore = v
	}
	return err
}

// Begin starts scoring a new run at time now.
func (t *ScoreTracker) Begin(now time.Duration) {
	t.start = now
	t.state.CurrentTime = 0
	t.state.Score = 0
	t.state.Beaten = false
}

// Shift moves the run start forward by d, removing paused time from the
// score.
func (t *ScoreTracker) Shift(d time.Duration) {
	t.start += d
}

// Update recomputes the score for time now and raises the high score when
// it is passed. It returns true on the one frame per run where the
// high-score cue should play: the first time the score passes the high
// score in this run, and only once the score is above 1.
func (t *ScoreTracker) Update(now time.Duration) bool {
	elapsed := now - t.start
	if elapsed < 0 {
		elapsed = 0
	}
	t.state.CurrentTime = int(elapsed / t.granularity)
	t.state.Score = t.state.CurrentTime

	if t.state.Score <= t.state.HighScore {
		return false
	}

	cue := !t.state.Beaten && t.state.Score > 1
	t.state.HighScore = t.state.Score
	t.state.Beaten = true
	return cue
}

// Persist writes the high score unconditionally.
func (t *ScoreTracker) Persist() error {
	if t.store == nil {
		return nil
	}
	return t.store.Save(t.key, t.state.HighScore)
}

// State returns a snapshot of the score bookkeeping.
func (t *ScoreTracker) State() ScoreState {
	return t.state
}
