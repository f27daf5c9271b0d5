// Package connector is the rendering-facing facade of the router. It
// dispatches by connector type, builds curve control points, and works on
// the flat coordinate arrays the rendering layer consumes.
package connector

import (
	"conduit/core"
	"conduit/geometry"
)

// PairPoints parses a flat coordinate array into points. Pairs with a
// non-finite coordinate are silently dropped, and a trailing odd value is
// ignored; malformed geometry degrades instead of failing.
func PairPoints(flat []float64) []core.Point {
	points := make([]core.Point, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		p := core.Point{X: flat[i], Y: flat[i+1]}
		if !geometry.IsFinitePoint(p) {
			continue
		}
		points = append(points, p)
	}
	return points
}

// Flatten converts points back into a flat coordinate array.
func Flatten(points []core.Point) []float64 {
	flat := make([]float64, 0, len(points)*2)
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}
	return flat
}

// Endpoints holds the first and last coordinate pair of a connector path.
type Endpoints struct {
	StartX, StartY float64
	EndX, EndY     float64
}

// PathEndpoints returns the first and last coordinate pair of a flat path.
// An empty path yields a zero value; a single point is both endpoints.
func PathEndpoints(flat []float64) Endpoints {
	points := PairPoints(flat)
	if len(points) == 0 {
		return Endpoints{}
	}
	first := points[0]
	last := points[len(points)-1]
	return Endpoints{
		StartX: first.X,
		StartY: first.Y,
		EndX:   last.X,
		EndY:   last.Y,
	}
}
