// Package core contains the fundamental types used throughout the conduit
// connector router.
package core

// Point represents a 2D coordinate on the board.
type Point struct {
	X, Y float64
}

// Obstacle is an axis-aligned bounding box a connector must route around,
// typically another diagram node or frame.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
}

// Left returns the obstacle's minimum x coordinate.
func (o Obstacle) Left() float64 { return o.X }

// Right returns the obstacle's maximum x coordinate.
func (o Obstacle) Right() float64 { return o.X + o.Width }

// Top returns the obstacle's minimum y coordinate.
func (o Obstacle) Top() float64 { return o.Y }

// Bottom returns the obstacle's maximum y coordinate.
func (o Obstacle) Bottom() float64 { return o.Y + o.Height }

// Center returns the center point of the obstacle.
func (o Obstacle) Center() Point {
	return Point{
		X: o.X + o.Width/2,
		Y: o.Y + o.Height/2,
	}
}

// ConnectorType selects how a connector between two points is rendered.
type ConnectorType string

const (
	// ConnectorStraight draws a single straight segment.
	ConnectorStraight ConnectorType = "straight"
	// ConnectorBent routes an orthogonal polyline around obstacles.
	ConnectorBent ConnectorType = "bent"
	// ConnectorCurved draws a cubic curve between the endpoints.
	ConnectorCurved ConnectorType = "curved"
)

// Path represents a route through the board.
type Path struct {
	Points []Point
	Cost   float64 // Accumulated cost reported by the search
}

// Length returns the number of points in the path.
func (p Path) Length() int {
	return len(p.Points)
}

// IsEmpty returns true if the path has no points.
func (p Path) IsEmpty() bool {
	return len(p.Points) == 0
}

// RouteOptions tunes how an orthogonal route is computed.
type RouteOptions struct {
	Clearance   float64 // Padding added around every obstacle before routing
	TurnPenalty float64 // Search cost charged per direction change
	Via         *Point  // Optional waypoint the path must pass through
}

// DefaultClearance is the padding kept around obstacles when none is given.
const DefaultClearance = 10

// DefaultTurnPenalty is the cost of a direction change when none is given.
const DefaultTurnPenalty = 16

// DefaultRouteOptions returns the standard routing parameters.
func DefaultRouteOptions() RouteOptions {
	return RouteOptions{
		Clearance:   DefaultClearance,
		TurnPenalty: DefaultTurnPenalty,
	}
}
