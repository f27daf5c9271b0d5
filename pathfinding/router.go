// Package pathfinding computes orthogonal connector routes over a derived
// visibility grid, with a turn-penalized A* search and guaranteed-termination
// fallbacks.
package pathfinding

import (
	"conduit/core"
	"conduit/obstacles"
)

// Route computes an orthogonal polyline from start to end that avoids the
// given obstacles. Obstacles are normalized and inflated by the configured
// clearance before routing; options left at or below zero take the package
// defaults. The function never fails: when the grid search cannot produce
// a path, a scored fallback candidate is returned instead. The returned
// path carries the accumulated search cost.
//
// Route is a pure function of its inputs. It holds no state between calls
// and is safe to invoke concurrently.
func Route(start, end core.Point, obs []core.Obstacle, opts core.RouteOptions) core.Path {
	opts = normalizeOptions(opts)
	if opts.Via != nil {
		return routeVia(start, end, *opts.Via, obs, opts)
	}

	inflated := obstacles.InflateAll(obs, opts.Clearance)

	grid, err := buildGrid(start, end, inflated)
	if err != nil {
		return fallbackRoute(start, end, inflated, opts)
	}
	path, err := findGridPath(grid, opts.TurnPenalty)
	if err != nil {
		return fallbackRoute(start, end, inflated, opts)
	}
	path.Points = Simplify(path.Points)
	return path
}

// normalizeOptions substitutes the defaults for options left at or below
// zero, so every caller of Route gets the documented behavior without
// going through a facade.
func normalizeOptions(opts core.RouteOptions) core.RouteOptions {
	if opts.Clearance <= 0 {
		opts.Clearance = core.DefaultClearance
	}
	if opts.TurnPenalty <= 0 {
		opts.TurnPenalty = core.DefaultTurnPenalty
	}
	return opts
}

// routeVia routes the two halves around the waypoint independently and
// concatenates them, dropping the duplicated waypoint at the seam. Each
// half runs through the full grid-search-or-fallback pipeline, so the
// combined path inherits both halves' termination guarantee.
func routeVia(start, end, via core.Point, obs []core.Obstacle, opts core.RouteOptions) core.Path {
	half := opts
	half.Via = nil
	first := Route(start, via, obs, half)
	second := Route(via, end, obs, half)

	combined := make([]core.Point, 0, len(first.Points)+len(second.Points))
	combined = append(combined, first.Points...)
	tail := second.Points
	if len(tail) > 0 && len(combined) > 0 && combined[len(combined)-1] == tail[0] {
		tail = tail[1:]
	}
	combined = append(combined, tail...)
	return core.Path{Points: Simplify(combined), Cost: first.Cost + second.Cost}
}
