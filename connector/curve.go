package connector

import (
	"conduit/core"
	"conduit/geometry"
)

// Offset magnitude bounds for curved connectors without an explicit offset.
const (
	minCurveOffset = 40
	maxCurveOffset = 180
)

// curveControlPoints builds the 4-point cubic control sequence for a curved
// connector. The curve bows toward a point offset perpendicular to the
// start-end chord; the two inner control points are interpolated two thirds
// of the way from each endpoint toward that offset point, the usual
// quadratic-to-cubic elevation.
//
// A non-zero curveOffset overrides the derived magnitude, and an explicit
// control point overrides the offset construction entirely.
func curveControlPoints(start, end core.Point, curveOffset float64, control *core.Point) []core.Point {
	var apex core.Point
	if control != nil {
		apex = *control
	} else {
		chord := geometry.SegmentLength(start, end)
		if chord == 0 {
			return []core.Point{start, start, end, end}
		}
		offset := curveOffset
		if offset == 0 {
			offset = geometry.Clamp(chord/2, minCurveOffset, maxCurveOffset)
		}
		// Unit normal to the chord.
		nx := -(end.Y - start.Y) / chord
		ny := (end.X - start.X) / chord
		mid := geometry.Midpoint(start, end)
		apex = core.Point{X: mid.X + nx*offset, Y: mid.Y + ny*offset}
	}

	c1 := geometry.Lerp(start, apex, 2.0/3.0)
	c2 := geometry.Lerp(end, apex, 2.0/3.0)
	return []core.Point{start, c1, c2, end}
}
