package dino

import (
	"errors"
	"testing"
	"time"
)

func TestScoreTrackerUpdate(t *testing.T) {
	tests := []struct {
		name        string
		granularity time.Duration
		start, now  time.Duration
		want        int
	}{
		{"before first unit", 100 * time.Millisecond, 0, ms(50), 0},
		{"exact unit", 100 * time.Millisecond, 0, ms(100), 1},
		{"late start", 100 * time.Millisecond, ms(1000), ms(1999), 9},
		{"fine granularity", 10 * time.Millisecond, 0, ms(50), 5},
		{"clock behind start", 100 * time.Millisecond, ms(500), ms(100), 0},
		{"zero granularity uses default", 0, 0, ms(250), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewScoreTracker(tt.granularity, nil)
			st.Begin(tt.start)
			st.Update(tt.now)
			if got := st.State().Score; got != tt.want {
				t.Errorf("score = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestScoreTrackerShift(t *testing.T) {
	st := NewScoreTracker(100*time.Millisecond, nil)
	st.Begin(0)
	st.Shift(ms(2000))
	st.Update(ms(2300))
	if got := st.State().Score; got != 3 {
		t.Errorf("score = %d, expected 3 after a 2s shift", got)
	}
}

func TestScoreTrackerLoadsOnce(t *testing.T) {
	store := newMemStore(30)
	st := NewScoreTracker(100*time.Millisecond, store)

	if err := st.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	store.values["highscore"] = 99
	if err := st.Load(); err != nil {
		t.Fatalf("second Load() failed: %v", err)
	}
	if got := st.State().HighScore; got != 30 {
		t.Errorf("high score = %d, expected the first loaded 30", got)
	}
}

func TestScoreTrackerLoadError(t *testing.T) {
	store := newMemStore(0)
	store.loadErr = errors.New("unreadable")
	st := NewScoreTracker(100*time.Millisecond, store)

	if err := st.Load(); err == nil {
		t.Error("expected the load error to be reported")
	}
	if got := st.State().HighScore; got != 0 {
		t.Errorf("high score = %d, expected 0", got)
	}
}

func TestScoreTrackerWithoutStore(t *testing.T) {
	st := NewScoreTracker(100*time.Millisecond, nil)
	if err := st.Load(); err != nil {
		t.Errorf("Load() without store = %v", err)
	}
	st.Begin(0)
	st.Update(ms(400))
	if err := st.Persist(); err != nil {
		t.Errorf("Persist() without store = %v", err)
	}
	if got := st.State().HighScore; got != 4 {
		t.Errorf("high score = %d, expected 4", got)
	}
}
