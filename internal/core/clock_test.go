package core

import (
	"testing"
	"time"
)

func TestFrameClockAdvance(t *testing.T) {
	c := NewFrameClock(50)

	if c.Now() != 0 {
		t.Fatalf("new clock should start at 0, got %v", c.Now())
	}
	for i := 0; i < 25; i++ {
		c.Advance()
	}
	if c.Now() != 500*time.Millisecond {
		t.Errorf("after 25 frames at 50 Hz, Now() = %v, expected 500ms", c.Now())
	}
	if c.Frames() != 25 {
		t.Errorf("Frames() = %d, expected 25", c.Frames())
	}
}

func TestFrameClockDefaultRate(t *testing.T) {
	c := NewFrameClock(0)
	c.Advance()
	if c.Now() != time.Second/60 {
		t.Errorf("default step = %v, expected 1/60s", c.Now())
	}
}

func TestIntervalPoll(t *testing.T) {
	iv := NewInterval(time.Second, 0)

	if n := iv.Poll(999 * time.Millisecond); n != 0 {
		t.Errorf("Poll before period = %d, expected 0", n)
	}
	if n := iv.Poll(time.Second); n != 1 {
		t.Errorf("Poll at period = %d, expected 1", n)
	}
	if n := iv.Poll(1500 * time.Millisecond); n != 0 {
		t.Errorf("Poll mid second period = %d, expected 0", n)
	}
	// A long stall reports every missed firing.
	if n := iv.Poll(4 * time.Second); n != 3 {
		t.Errorf("Poll after stall = %d, expected 3", n)
	}
}

func TestIntervalRestartAndShift(t *testing.T) {
	iv := NewInterval(time.Second, 0)
	iv.Restart(10 * time.Second)

	if n := iv.Poll(10*time.Second + 500*time.Millisecond); n != 0 {
		t.Errorf("restarted interval fired early: %d", n)
	}

	iv.Shift(2 * time.Second)
	if n := iv.Poll(12 * time.Second); n != 0 {
		t.Errorf("shifted interval fired early: %d", n)
	}
	if n := iv.Poll(13 * time.Second); n != 1 {
		t.Errorf("shifted interval should fire at 13s, got %d", n)
	}
}

func TestIntervalZeroPeriod(t *testing.T) {
	iv := NewInterval(0, 0)
	if n := iv.Poll(time.Hour); n != 0 {
		t.Errorf("zero-period interval should never fire, got %d", n)
	}
}
