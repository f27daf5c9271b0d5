package pathfinding

import (
	"math"
	"reflect"
	"testing"

	"conduit/core"
	"conduit/obstacles"
)

func route(t *testing.T, start, end core.Point, obs []core.Obstacle, opts core.RouteOptions) []core.Point {
	t.Helper()
	path := Route(start, end, obs, opts)
	if path.IsEmpty() {
		t.Fatal("Route returned an empty path")
	}
	return path.Points
}

func TestRouteOpenBoard(t *testing.T) {
	start := core.Point{X: 0, Y: 0}
	end := core.Point{X: 200, Y: 200}

	points := route(t, start, end, nil, core.DefaultRouteOptions())

	if points[0] != start {
		t.Errorf("path starts at %v, want %v", points[0], start)
	}
	if points[len(points)-1] != end {
		t.Errorf("path ends at %v, want %v", points[len(points)-1], end)
	}
	// With nothing in the way the route needs at most one L-turn.
	if len(points) > 3 {
		t.Errorf("open-board route has %d points, want at most 3", len(points))
	}
}

func TestRouteEndpointFidelity(t *testing.T) {
	tests := []struct {
		name       string
		start, end core.Point
		obs        []core.Obstacle
	}{
		{
			name:  "no obstacles",
			start: core.Point{X: 10, Y: 10},
			end:   core.Point{X: 150, Y: 90},
		},
		{
			name:  "single obstacle between",
			start: core.Point{X: 0, Y: 100},
			end:   core.Point{X: 200, Y: 100},
			obs:   []core.Obstacle{{X: 80, Y: 50, Width: 40, Height: 100}},
		},
		{
			name:  "start enclosed forces fallback",
			start: core.Point{X: 50, Y: 50},
			end:   core.Point{X: 300, Y: 50},
			obs:   []core.Obstacle{{X: 0, Y: 0, Width: 100, Height: 100}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := route(t, tt.start, tt.end, tt.obs, core.DefaultRouteOptions())
			if points[0] != tt.start {
				t.Errorf("path starts at %v, want %v", points[0], tt.start)
			}
			if points[len(points)-1] != tt.end {
				t.Errorf("path ends at %v, want %v", points[len(points)-1], tt.end)
			}
		})
	}
}

func TestRouteDeterminism(t *testing.T) {
	start := core.Point{X: 0, Y: 100}
	end := core.Point{X: 300, Y: 100}
	obs := []core.Obstacle{
		{X: 60, Y: 40, Width: 50, Height: 120},
		{X: 180, Y: 80, Width: 40, Height: 90},
	}
	opts := core.DefaultRouteOptions()

	first := Route(start, end, obs, opts)
	for i := 0; i < 10; i++ {
		again := Route(start, end, obs, opts)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, first, again)
		}
	}
}

func TestRouteAvoidsInflatedObstacles(t *testing.T) {
	start := core.Point{X: 0, Y: 100}
	end := core.Point{X: 200, Y: 100}
	obs := []core.Obstacle{{X: 80, Y: 50, Width: 40, Height: 100}}
	opts := core.DefaultRouteOptions()

	points := route(t, start, end, obs, opts)

	inflated := obstacles.InflateAll(obs, opts.Clearance)
	for i := 0; i < len(points)-1; i++ {
		if obstacles.SegmentBlocked(inflated, points[i], points[i+1]) {
			t.Errorf("segment %v -> %v crosses an inflated obstacle", points[i], points[i+1])
		}
	}

	// The detour must clear the inflated box, which spans y 40..160 for
	// x 70..130.
	for _, p := range points {
		if p.X > 70 && p.X < 130 && p.Y > 40 && p.Y < 160 {
			t.Errorf("point %v lies inside the inflated obstacle", p)
		}
	}
}

func TestRouteVia(t *testing.T) {
	start := core.Point{X: 0, Y: 0}
	end := core.Point{X: 200, Y: 200}
	via := core.Point{X: 100, Y: 300}
	opts := core.DefaultRouteOptions()
	opts.Via = &via

	points := route(t, start, end, nil, opts)

	// Simplification may collapse the waypoint vertex when it is collinear
	// with both neighbors, so check geometric containment, not vertex
	// identity.
	if !pathPassesThrough(points, via) {
		t.Errorf("path %v does not pass through waypoint %v", points, via)
	}
	if points[0] != start || points[len(points)-1] != end {
		t.Errorf("path endpoints %v, %v want %v, %v",
			points[0], points[len(points)-1], start, end)
	}
}

// pathPassesThrough reports whether any segment of the polyline contains p.
func pathPassesThrough(points []core.Point, p core.Point) bool {
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross != 0 {
			continue
		}
		if p.X < math.Min(a.X, b.X) || p.X > math.Max(a.X, b.X) ||
			p.Y < math.Min(a.Y, b.Y) || p.Y > math.Max(a.Y, b.Y) {
			continue
		}
		return true
	}
	return false
}

func TestRouteViaIdenticalToEndpoint(t *testing.T) {
	start := core.Point{X: 0, Y: 0}
	end := core.Point{X: 200, Y: 0}
	via := start
	opts := core.DefaultRouteOptions()
	opts.Via = &via

	points := route(t, start, end, nil, opts)
	if points[0] != start || points[len(points)-1] != end {
		t.Errorf("degenerate via produced endpoints %v, %v", points[0], points[len(points)-1])
	}
}

func TestRouteCoincidentEndpoints(t *testing.T) {
	p := core.Point{X: 42, Y: 42}
	path := Route(p, p, nil, core.DefaultRouteOptions())
	if path.IsEmpty() {
		t.Fatal("coincident endpoints should still yield a path")
	}
	for _, got := range path.Points {
		if got != p {
			t.Errorf("unexpected point %v in zero-length path", got)
		}
	}
	if path.Cost != 0 {
		t.Errorf("zero-length path has cost %v, want 0", path.Cost)
	}
}

func TestRouteReportsCost(t *testing.T) {
	// Aligned endpoints on an open board: a single 400-unit segment.
	straight := Route(core.Point{X: 0, Y: 50}, core.Point{X: 400, Y: 50}, nil, core.DefaultRouteOptions())
	if len(straight.Points) != 2 {
		t.Fatalf("open aligned route has %d points, want 2: %v", len(straight.Points), straight.Points)
	}
	if straight.Cost != 400 {
		t.Errorf("straight route cost %v, want 400", straight.Cost)
	}

	// Diagonal endpoints force one turn: 200 + 200 plus the turn penalty.
	bent := Route(core.Point{X: 0, Y: 0}, core.Point{X: 200, Y: 200}, nil, core.DefaultRouteOptions())
	if want := 400 + float64(core.DefaultTurnPenalty); bent.Cost != want {
		t.Errorf("L-shaped route cost %v, want %v", bent.Cost, want)
	}
}

func TestRouteZeroOptionsUseDefaults(t *testing.T) {
	start := core.Point{X: 0, Y: 100}
	end := core.Point{X: 200, Y: 100}
	obs := []core.Obstacle{{X: 80, Y: 50, Width: 40, Height: 100}}

	zero := Route(start, end, obs, core.RouteOptions{})
	explicit := Route(start, end, obs, core.DefaultRouteOptions())
	if !reflect.DeepEqual(zero, explicit) {
		t.Errorf("zero-value options routed %v, explicit defaults routed %v", zero, explicit)
	}

	// The default clearance must have inflated the box to x 70..130, y 40..160.
	for _, p := range zero.Points {
		if p.X > 70 && p.X < 130 && p.Y > 40 && p.Y < 160 {
			t.Errorf("point %v ignores the default clearance", p)
		}
	}
}

func TestRouteTurnPenaltyPrefersFewerBends(t *testing.T) {
	// Between aligned endpoints the straight row is strictly cheaper than
	// any detour, so the route must be a single segment.
	start := core.Point{X: 0, Y: 50}
	end := core.Point{X: 400, Y: 50}
	obs := []core.Obstacle{
		{X: 100, Y: 100, Width: 50, Height: 50},
		{X: 250, Y: 100, Width: 50, Height: 50},
	}

	points := route(t, start, end, obs, core.DefaultRouteOptions())
	if len(points) != 2 {
		t.Errorf("aligned endpoints with clear row produced %d points, want 2: %v", len(points), points)
	}
}

func TestRouteTerminationStress(t *testing.T) {
	// A dense tiling of boxes, including boxes enclosing both endpoints.
	var obs []core.Obstacle
	for row := 0; row < 7; row++ {
		for col := 0; col < 7; col++ {
			obs = append(obs, core.Obstacle{
				X:      float64(col) * 60,
				Y:      float64(row) * 60,
				Width:  50,
				Height: 50,
			})
		}
	}
	obs = append(obs,
		core.Obstacle{X: -20, Y: -20, Width: 60, Height: 60}, // encloses start
		core.Obstacle{X: 380, Y: 380, Width: 60, Height: 60}, // encloses end
	)

	start := core.Point{X: 5, Y: 5}
	end := core.Point{X: 405, Y: 405}

	points := Route(start, end, obs, core.DefaultRouteOptions()).Points
	if len(points) == 0 {
		t.Fatal("stress layout must still yield a path")
	}
	if points[0] != start || points[len(points)-1] != end {
		t.Errorf("stress path endpoints %v, %v want %v, %v",
			points[0], points[len(points)-1], start, end)
	}
}

func TestFallbackRouteScoring(t *testing.T) {
	// Both L-shapes are blocked; the detour below the span is clear.
	start := core.Point{X: 0, Y: 50}
	end := core.Point{X: 300, Y: 50}
	obs := []core.Obstacle{{X: 100, Y: 0, Width: 100, Height: 100}}

	path := fallbackRoute(start, end, obs, core.RouteOptions{Clearance: 10, TurnPenalty: 16})
	points := path.Points
	if len(points) == 0 {
		t.Fatal("fallback returned an empty path")
	}
	if countBlockedSegments(points, obs) != 0 {
		t.Errorf("fallback picked a blocked candidate: %v", points)
	}
	if points[0] != start || points[len(points)-1] != end {
		t.Errorf("fallback endpoints %v, %v want %v, %v",
			points[0], points[len(points)-1], start, end)
	}
	// Detour at y -20: 70 + 300 + 70 long with two turns.
	if want := 440 + 2*16.0; path.Cost != want {
		t.Errorf("fallback cost %v, want %v", path.Cost, want)
	}
}

func TestFallbackRouteAlwaysReturns(t *testing.T) {
	// A box that covers everything blocks all four candidates; the least-bad
	// one is still returned.
	start := core.Point{X: 100, Y: 100}
	end := core.Point{X: 200, Y: 200}
	obs := []core.Obstacle{{X: -1000, Y: -1000, Width: 3000, Height: 3000}}

	path := fallbackRoute(start, end, obs, core.RouteOptions{Clearance: 10, TurnPenalty: 16})
	if len(path.Points) < 2 {
		t.Fatalf("fallback must return a usable path, got %v", path.Points)
	}
}
