package pathfinding

import (
	"conduit/core"
	"conduit/geometry"
	"conduit/obstacles"
)

// blockedSegmentWeight dominates the fallback score so that minimizing
// collisions always beats path simplicity.
const blockedSegmentWeight = 10000

// fallbackRoute produces a best-effort path when the grid cannot resolve
// the endpoints or the search exhausts its budget. It scores a small fixed
// set of hand-authored candidates: two L-shapes and two detours around the
// full obstacle span. The returned path may still cross an obstacle in
// extreme layouts; returning something usable always wins over failing.
func fallbackRoute(start, end core.Point, obs []core.Obstacle, opts core.RouteOptions) core.Path {
	candidates := [][]core.Point{
		// Horizontal then vertical.
		{start, {X: end.X, Y: start.Y}, end},
		// Vertical then horizontal.
		{start, {X: start.X, Y: end.Y}, end},
	}
	if span, ok := obstacles.Span(obs); ok {
		above := span.Top() - 2*opts.Clearance
		below := span.Bottom() + 2*opts.Clearance
		candidates = append(candidates,
			[]core.Point{start, {X: start.X, Y: above}, {X: end.X, Y: above}, end},
			[]core.Point{start, {X: start.X, Y: below}, {X: end.X, Y: below}, end},
		)
	}

	var bestPath []core.Point
	bestScore := -1
	for _, candidate := range candidates {
		simplified := Simplify(candidate)
		score := countBlockedSegments(simplified, obs)*blockedSegmentWeight + len(simplified)
		if bestScore < 0 || score < bestScore {
			bestScore = score
			bestPath = simplified
		}
	}
	return core.Path{Points: bestPath, Cost: pathCost(bestPath, opts.TurnPenalty)}
}

func countBlockedSegments(points []core.Point, obs []core.Obstacle) int {
	blocked := 0
	for i := 0; i < len(points)-1; i++ {
		if obstacles.SegmentBlocked(obs, points[i], points[i+1]) {
			blocked++
		}
	}
	return blocked
}

// pathCost prices a hand-authored path with the search's cost model:
// Euclidean segment lengths plus a penalty at every direction change.
func pathCost(points []core.Point, turnPenalty float64) float64 {
	var cost float64
	for i := 0; i < len(points)-1; i++ {
		cost += geometry.SegmentLength(points[i], points[i+1])
		if i > 0 && stepDirection(points[i-1], points[i]) != stepDirection(points[i], points[i+1]) {
			cost += turnPenalty
		}
	}
	return cost
}
