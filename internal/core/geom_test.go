package core

import (
	"math"
	"testing"
)

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
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	if !r.Contains(10, 10) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(15, 10) {
		t.Error("right edge is exclusive")
	}
	if !r.Contains(12, 12) {
		t.Error("interior point should be contained")
	}
}

func TestVec2Normalized(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	n := v.Normalized()
	if math.Abs(n.Len()-1.0) > 1e-9 {
		t.Errorf("Normalized().Len() = %f, expected 1.0", n.Len())
	}

	zero := Vec2{}.Normalized()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("zero vector should normalize to zero, got %+v", zero)
	}
}

func TestDist(t *testing.T) {
	d := Dist(Vec2{X: 0, Y: 0}, Vec2{X: 3, Y: 4})
	if math.Abs(d-5.0) > 1e-9 {
		t.Errorf("Dist() = %f, expected 5.0", d)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{0, 0, 100, 0},
		{100, 0, 100, 100},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should pass through in-range values")
	}
	if Clamp(-1, 0, 10) != 0 {
		t.Error("Clamp should raise values below min")
	}
	if Clamp(11, 0, 10) != 10 {
		t.Error("Clamp should lower values above max")
	}
}
