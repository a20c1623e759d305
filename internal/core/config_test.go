package core

import "testing"

func TestClampTickRate(t *testing.T) {
	tests := []struct {
		rate     int
		expected int
	}{
		{0, ReferenceTickRate},
		{-5, ReferenceTickRate},
		{3, MinTickRate},
		{MinTickRate, MinTickRate},
		{60, 60},
		{144, 144},
		{MaxTickRate, MaxTickRate},
		{1000, MaxTickRate},
	}

	for _, tc := range tests {
		if got := ClampTickRate(tc.rate); got != tc.expected {
			t.Errorf("ClampTickRate(%d) = %d, expected %d", tc.rate, got, tc.expected)
		}
	}
}

func TestStepScale(t *testing.T) {
	tests := []struct {
		rate     int
		expected float64
	}{
		{60, 1},
		{30, 2},
		{120, 0.5},
		{0, 1},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.StepScale(); got != tc.expected {
			t.Errorf("StepScale() at %d Hz = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}
