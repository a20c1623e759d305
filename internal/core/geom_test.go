package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectAtFloorsPosition(t *testing.T) {
	r := RectAt(3.7, 20.9, 4, 3)
	want := NewRect(3, 17, 4, 3)
	if r != want {
		t.Errorf("RectAt() = %+v, expected %+v", r, want)
	}

	// Negative positions floor away from zero so a sprite half off the
	// left edge keeps its full width.
	r = RectAt(-0.5, 10, 4, 2)
	if r.X != -1 {
		t.Errorf("RectAt(-0.5).X = %d, expected -1", r.X)
	}
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(6, 4, 10, 10)

	got := a.Intersection(b)
	want := NewRect(6, 4, 4, 6)
	if got != want {
		t.Errorf("Intersection() = %+v, expected %+v", got, want)
	}

	if !a.Intersection(NewRect(10, 0, 5, 5)).Empty() {
		t.Error("adjacent rects should have an empty intersection")
	}
}

func TestEmptyRectNeverIntersects(t *testing.T) {
	if NewRect(0, 0, 0, 5).Intersects(NewRect(0, 0, 10, 10)) {
		t.Error("zero-width rect should not intersect")
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v        float64
		n        int
		expected float64
	}{
		{0.5, 2, 0.5},
		{2.25, 2, 0.25},
		{-0.5, 2, 1.5},
		{3, 0, 0},
	}

	for _, tc := range tests {
		if got := Wrap(tc.v, tc.n); got != tc.expected {
			t.Errorf("Wrap(%v, %d) = %v, expected %v", tc.v, tc.n, got, tc.expected)
		}
	}
}
