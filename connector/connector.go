package connector

import (
	"conduit/core"
	"conduit/pathfinding"
)

// Request describes one connector to build render points for.
type Request struct {
	Type      core.ConnectorType
	Start     core.Point
	End       core.Point
	Obstacles []core.Obstacle

	// Clearance and TurnPenalty fall back to the defaults when left at or
	// below zero.
	Clearance   float64
	TurnPenalty float64

	Via          *core.Point // Waypoint for bent connectors
	CurveOffset  float64     // Explicit bow magnitude for curved connectors
	ControlPoint *core.Point // Explicit curve apex, overrides CurveOffset
}

func (r Request) routeOptions() core.RouteOptions {
	// The router itself falls back to the defaults for the zero values.
	return core.RouteOptions{
		Clearance:   r.Clearance,
		TurnPenalty: r.TurnPenalty,
		Via:         r.Via,
	}
}

// RenderPoints computes the flat coordinate list used to draw a connector.
// Straight connectors are the two endpoints verbatim, bent connectors route
// through the orthogonal pipeline, and curved connectors emit a 4-point
// cubic control sequence. Unknown types are treated as straight.
func RenderPoints(req Request) []float64 {
	switch req.Type {
	case core.ConnectorCurved:
		return Flatten(curveControlPoints(req.Start, req.End, req.CurveOffset, req.ControlPoint))
	case core.ConnectorBent:
		return Flatten(pathfinding.Route(req.Start, req.End, req.Obstacles, req.routeOptions()).Points)
	default:
		return []float64{req.Start.X, req.Start.Y, req.End.X, req.End.Y}
	}
}

// Route computes an orthogonal connector path and returns it as a flat
// coordinate list. It is the flat-array form of pathfinding.Route.
func Route(start, end core.Point, obs []core.Obstacle, opts core.RouteOptions) []float64 {
	return Flatten(pathfinding.Route(start, end, obs, opts).Points)
}

// Simplify collapses duplicate and collinear points of a flat connector
// path. Non-finite pairs are dropped while parsing.
func Simplify(flat []float64) []float64 {
	return Flatten(pathfinding.Simplify(PairPoints(flat)))
}
