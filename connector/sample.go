package connector

import (
	"conduit/core"
	"conduit/geometry"
)

// PointAlong samples the point at the given arc-length percentage along a
// flat connector path. percent is clamped to [0, 100]. Degenerate paths
// (one point, or zero total length) return the single available point
// rather than dividing by zero, and an empty path returns the origin.
func PointAlong(flat []float64, percent float64) core.Point {
	points := PairPoints(flat)
	if len(points) == 0 {
		return core.Point{}
	}
	if len(points) == 1 {
		return points[0]
	}

	total := 0.0
	for i := 0; i < len(points)-1; i++ {
		total += geometry.SegmentLength(points[i], points[i+1])
	}
	if total == 0 {
		return points[0]
	}

	percent = geometry.Clamp(percent, 0, 100)
	target := total * percent / 100

	walked := 0.0
	for i := 0; i < len(points)-1; i++ {
		length := geometry.SegmentLength(points[i], points[i+1])
		if walked+length >= target && length > 0 {
			t := (target - walked) / length
			return geometry.Lerp(points[i], points[i+1], t)
		}
		walked += length
	}
	return points[len(points)-1]
}
