// Package geometry provides the scalar and segment math shared by the
// routing pipeline.
package geometry

import (
	"math"

	"conduit/core"
)

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two values.
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two values.
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ManhattanDistance calculates the Manhattan distance between two points.
func ManhattanDistance(a, b core.Point) float64 {
	return Abs(b.X-a.X) + Abs(b.Y-a.Y)
}

// SegmentLength calculates the Euclidean length of the segment from a to b.
func SegmentLength(a, b core.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// IsHorizontal reports whether the segment from a to b runs along the x axis.
func IsHorizontal(a, b core.Point) bool {
	return a.Y == b.Y
}

// IsVertical reports whether the segment from a to b runs along the y axis.
func IsVertical(a, b core.Point) bool {
	return a.X == b.X
}

// Lerp linearly interpolates between a and b by t, where t=0 yields a and
// t=1 yields b.
func Lerp(a, b core.Point, t float64) core.Point {
	return core.Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b core.Point) core.Point {
	return Lerp(a, b, 0.5)
}

// IsFinitePoint reports whether both coordinates of p are finite numbers.
func IsFinitePoint(p core.Point) bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
