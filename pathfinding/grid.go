package pathfinding

import (
	"fmt"
	"sort"

	"conduit/core"
	"conduit/obstacles"
)

// gridGraph is the visibility grid the search runs over. Nodes are the
// intersections of the interesting x and y coordinates (start, end and every
// inflated obstacle edge); edges connect axis-aligned adjacent nodes whose
// connecting segment is unobstructed.
type gridGraph struct {
	nodes []core.Point
	adj   [][]int
	start int
	end   int
}

// buildGrid derives the visibility grid for a route from start to end around
// the given inflated obstacles. It returns an error when start or end does
// not resolve to a usable grid node, in which case the caller falls back to
// the candidate router.
func buildGrid(start, end core.Point, obs []core.Obstacle) (*gridGraph, error) {
	xs := []float64{start.X, end.X}
	ys := []float64{start.Y, end.Y}
	for _, o := range obs {
		xs = append(xs, o.Left(), o.Right())
		ys = append(ys, o.Top(), o.Bottom())
	}
	xs = sortedUnique(xs)
	ys = sortedUnique(ys)

	g := &gridGraph{start: -1, end: -1}
	index := make(map[core.Point]int)
	addNode := func(p core.Point) {
		if _, seen := index[p]; seen {
			return
		}
		if obstacles.InsideAny(obs, p) {
			return
		}
		index[p] = len(g.nodes)
		g.nodes = append(g.nodes, p)
	}

	for _, x := range xs {
		for _, y := range ys {
			addNode(core.Point{X: x, Y: y})
		}
	}
	// Start and end are grid coordinates by construction, but add them
	// explicitly in case deduplication collapsed either away.
	addNode(start)
	addNode(end)

	if i, ok := index[start]; ok {
		g.start = i
	}
	if i, ok := index[end]; ok {
		g.end = i
	}
	if g.start < 0 {
		return nil, fmt.Errorf("start point %v is not a reachable grid node", start)
	}
	if g.end < 0 {
		return nil, fmt.Errorf("end point %v is not a reachable grid node", end)
	}

	g.adj = make([][]int, len(g.nodes))
	g.connectRuns(groupBy(g.nodes, func(p core.Point) float64 { return p.Y }, func(p core.Point) float64 { return p.X }, index), obs)
	g.connectRuns(groupBy(g.nodes, func(p core.Point) float64 { return p.X }, func(p core.Point) float64 { return p.Y }, index), obs)

	return g, nil
}

// connectRuns links consecutive nodes within each row or column, skipping
// pairs whose direct segment is blocked.
func (g *gridGraph) connectRuns(runs [][]int, obs []core.Obstacle) {
	for _, run := range runs {
		for i := 0; i < len(run)-1; i++ {
			a, b := run[i], run[i+1]
			if obstacles.SegmentBlocked(obs, g.nodes[a], g.nodes[b]) {
				continue
			}
			g.adj[a] = append(g.adj[a], b)
			g.adj[b] = append(g.adj[b], a)
		}
	}
}

// groupBy buckets node indices by one coordinate and sorts each bucket along
// the other, producing the rows (constant y) or columns (constant x) of the
// grid in a deterministic order.
func groupBy(nodes []core.Point, key, order func(core.Point) float64, index map[core.Point]int) [][]int {
	buckets := make(map[float64][]int)
	var keys []float64
	for _, p := range nodes {
		k := key(p)
		if _, seen := buckets[k]; !seen {
			keys = append(keys, k)
		}
		buckets[k] = append(buckets[k], index[p])
	}
	sort.Float64s(keys)

	runs := make([][]int, 0, len(keys))
	for _, k := range keys {
		run := buckets[k]
		sort.Slice(run, func(i, j int) bool {
			return order(nodes[run[i]]) < order(nodes[run[j]])
		})
		runs = append(runs, run)
	}
	return runs
}

func sortedUnique(vals []float64) []float64 {
	sort.Float64s(vals)
	out := vals[:0]
	for i, v := range vals {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
