package geometry

import (
	"math"
	"testing"

	"conduit/core"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"below range", -5, 0, 10, 0},
		{"in range", 5, 0, 10, 5},
		{"above range", 15, 0, 10, 10},
		{"at lower bound", 0, 0, 10, 0},
		{"at upper bound", 10, 0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestDistances(t *testing.T) {
	a := core.Point{X: 0, Y: 0}
	b := core.Point{X: 3, Y: 4}

	if got := ManhattanDistance(a, b); got != 7 {
		t.Errorf("ManhattanDistance = %v, want 7", got)
	}
	if got := SegmentLength(a, b); got != 5 {
		t.Errorf("SegmentLength = %v, want 5", got)
	}
}

func TestAxisClassification(t *testing.T) {
	a := core.Point{X: 0, Y: 5}
	b := core.Point{X: 10, Y: 5}
	c := core.Point{X: 0, Y: 9}

	if !IsHorizontal(a, b) {
		t.Error("a-b should be horizontal")
	}
	if IsVertical(a, b) {
		t.Error("a-b should not be vertical")
	}
	if !IsVertical(a, c) {
		t.Error("a-c should be vertical")
	}
}

func TestLerp(t *testing.T) {
	a := core.Point{X: 0, Y: 0}
	b := core.Point{X: 10, Y: 20}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(a, b, 0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(a, b, 1) = %v, want %v", got, b)
	}
	mid := Midpoint(a, b)
	if mid.X != 5 || mid.Y != 10 {
		t.Errorf("Midpoint = %v, want {5 10}", mid)
	}
}

func TestIsFinitePoint(t *testing.T) {
	if !IsFinitePoint(core.Point{X: 1, Y: 2}) {
		t.Error("finite point misreported")
	}
	if IsFinitePoint(core.Point{X: math.NaN(), Y: 2}) {
		t.Error("NaN coordinate should not be finite")
	}
	if IsFinitePoint(core.Point{X: 1, Y: math.Inf(1)}) {
		t.Error("infinite coordinate should not be finite")
	}
}
