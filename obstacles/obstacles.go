// Package obstacles normalizes, inflates and queries the axis-aligned
// bounding boxes a connector must route around.
package obstacles

import (
	"conduit/core"
	"conduit/geometry"
)

// Normalize clamps negative width and height to zero, returning a canonical
// box. Degenerate obstacles are kept rather than rejected.
func Normalize(o core.Obstacle) core.Obstacle {
	if o.Width < 0 {
		o.Width = 0
	}
	if o.Height < 0 {
		o.Height = 0
	}
	return o
}

// Inflate expands the box by clearance on all four sides. Corners stay
// rectangular. Clearance is the single knob controlling how far routes keep
// from shapes.
func Inflate(o core.Obstacle, clearance float64) core.Obstacle {
	return core.Obstacle{
		X:      o.X - clearance,
		Y:      o.Y - clearance,
		Width:  o.Width + 2*clearance,
		Height: o.Height + 2*clearance,
	}
}

// InflateAll normalizes and inflates every obstacle in obs.
func InflateAll(obs []core.Obstacle, clearance float64) []core.Obstacle {
	inflated := make([]core.Obstacle, len(obs))
	for i, o := range obs {
		inflated[i] = Inflate(Normalize(o), clearance)
	}
	return inflated
}

// ContainsStrict reports whether p lies in the open interior of o. Boundary
// points are not inside, so a path may run flush along an obstacle's edge.
func ContainsStrict(o core.Obstacle, p core.Point) bool {
	return p.X > o.Left() && p.X < o.Right() &&
		p.Y > o.Top() && p.Y < o.Bottom()
}

// SegmentCrosses reports whether the axis-aligned segment from a to b
// overlaps the open interior of o. Diagonal segments never cross by this
// test; the visibility grid only ever produces horizontal and vertical
// candidate edges.
func SegmentCrosses(o core.Obstacle, a, b core.Point) bool {
	if geometry.IsHorizontal(a, b) && a.X != b.X {
		y := a.Y
		if y <= o.Top() || y >= o.Bottom() {
			return false
		}
		lo := geometry.Min(a.X, b.X)
		hi := geometry.Max(a.X, b.X)
		return geometry.Max(lo, o.Left()) < geometry.Min(hi, o.Right())
	}
	if geometry.IsVertical(a, b) && a.Y != b.Y {
		x := a.X
		if x <= o.Left() || x >= o.Right() {
			return false
		}
		lo := geometry.Min(a.Y, b.Y)
		hi := geometry.Max(a.Y, b.Y)
		return geometry.Max(lo, o.Top()) < geometry.Min(hi, o.Bottom())
	}
	return false
}

// SegmentBlocked reports whether any obstacle in obs crosses the segment
// from a to b.
func SegmentBlocked(obs []core.Obstacle, a, b core.Point) bool {
	for _, o := range obs {
		if SegmentCrosses(o, a, b) {
			return true
		}
	}
	return false
}

// InsideAny reports whether p lies strictly inside any obstacle in obs.
func InsideAny(obs []core.Obstacle, p core.Point) bool {
	for _, o := range obs {
		if ContainsStrict(o, p) {
			return true
		}
	}
	return false
}

// Span returns the bounding box covering all obstacles in obs, and false
// when obs is empty.
func Span(obs []core.Obstacle) (core.Obstacle, bool) {
	if len(obs) == 0 {
		return core.Obstacle{}, false
	}
	left, top := obs[0].Left(), obs[0].Top()
	right, bottom := obs[0].Right(), obs[0].Bottom()
	for _, o := range obs[1:] {
		left = geometry.Min(left, o.Left())
		top = geometry.Min(top, o.Top())
		right = geometry.Max(right, o.Right())
		bottom = geometry.Max(bottom, o.Bottom())
	}
	return core.Obstacle{X: left, Y: top, Width: right - left, Height: bottom - top}, true
}
