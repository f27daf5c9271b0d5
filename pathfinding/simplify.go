package pathfinding

import "conduit/core"

// Simplify removes consecutive duplicate points and collapses runs of three
// or more points that continue in the same direction into their two
// endpoints. Genuine turn vertices are kept. It operates on any polyline,
// regardless of whether the grid search or the fallback produced it, and is
// idempotent.
func Simplify(points []core.Point) []core.Point {
	if len(points) < 2 {
		return points
	}

	deduped := make([]core.Point, 0, len(points))
	for _, p := range points {
		if len(deduped) > 0 && deduped[len(deduped)-1] == p {
			continue
		}
		deduped = append(deduped, p)
	}
	if len(deduped) < 3 {
		return deduped
	}

	out := make([]core.Point, 0, len(deduped))
	out = append(out, deduped[0])
	for i := 1; i < len(deduped)-1; i++ {
		if continuesStraight(out[len(out)-1], deduped[i], deduped[i+1]) {
			continue
		}
		out = append(out, deduped[i])
	}
	return append(out, deduped[len(deduped)-1])
}

// continuesStraight reports whether b is a redundant interior point of the
// run a -> b -> c: the two segments are collinear and head the same way.
func continuesStraight(a, b, c core.Point) bool {
	abx, aby := b.X-a.X, b.Y-a.Y
	bcx, bcy := c.X-b.X, c.Y-b.Y
	cross := abx*bcy - aby*bcx
	dot := abx*bcx + aby*bcy
	return cross == 0 && dot > 0
}
