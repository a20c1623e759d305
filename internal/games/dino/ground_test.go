package dino

import (
	"math"
	"testing"
)

func TestGroundCoversScreen(t *testing.T) {
	g := newTestGame(quietConfig())
	g.Step(jumpInput)

	screenW := testRuntime().ScreenW
	wraps := 0
	prev := g.Ground()
	for i := 0; i < 3000; i++ {
		g.Step(noInput)
		segs := g.Ground()

		left, right := segs[0].Bounds(), segs[1].Bounds()
		if left.X > right.X {
			left, right = right, left
		}
		if left.X > 0 {
			t.Fatalf("frame %d: gap at the left edge, first segment starts at %d", i, left.X)
		}
		if left.Right() < right.X {
			t.Fatalf("frame %d: gap between segments: %d..%d", i, left.Right(), right.X)
		}
		if right.Right() < screenW {
			t.Fatalf("frame %d: ground ends at %d, screen is %d wide", i, right.Right(), screenW)
		}

		for s := range segs {
			if segs[s].X() > prev[s].X() {
				wraps++
				other := segs[1-s]
				want := other.X() + float64(other.Frame().Width())
				if math.Abs(segs[s].X()-want) > 1e-6 {
					t.Errorf("frame %d: wrapped to %.3f, expected partner's right edge %.3f", i, segs[s].X(), want)
				}
			}
		}
		prev = segs
	}
	if wraps == 0 {
		t.Error("ground never wrapped")
	}
}

func TestGroundWidth(t *testing.T) {
	tests := []struct {
		tile, screen, want int
	}{
		{120, 80, 120},
		{120, 200, 204},
		{10, 10, 14},
	}

	for _, tt := range tests {
		if got := groundWidth(tt.tile, tt.screen); got != tt.want {
			t.Errorf("groundWidth(%d, %d) = %d, expected %d", tt.tile, tt.screen, got, tt.want)
		}
	}
}
